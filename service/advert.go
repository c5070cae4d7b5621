package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"smarttech/config"
	"smarttech/dao"
	"smarttech/models"
	"smarttech/types"

	"gorm.io/gorm"
)

type IAdvertService interface {
	ListActive(ctx context.Context) ([]*models.Advertisement, error)
	ListAll(ctx context.Context) ([]*models.Advertisement, error)
	Create(ctx context.Context, req *types.AdvertisementCreateReq) (*models.Advertisement, error)
	Update(ctx context.Context, req *types.AdvertisementUpdateReq) error
	Remove(ctx context.Context, id int64) error
}

type AdvertService struct {
	Dao  *dao.Advertisement
	Conf *config.Config
}

var _ IAdvertService = (*AdvertService)(nil)

func NewAdvertService(d *dao.Advertisement, conf *config.Config) *AdvertService {
	return &AdvertService{Dao: d, Conf: conf}
}

func (s *AdvertService) ListActive(ctx context.Context) ([]*models.Advertisement, error) {
	return s.Dao.ListActive(ctx)
}

func (s *AdvertService) ListAll(ctx context.Context) ([]*models.Advertisement, error) {
	return s.Dao.ListAll(ctx)
}

func (s *AdvertService) Create(ctx context.Context, req *types.AdvertisementCreateReq) (*models.Advertisement, error) {
	item := &models.Advertisement{
		Title:     req.Title,
		ImagePath: req.ImagePath,
		TargetURL: req.TargetURL,
		Active:    true,
		SortOrder: req.SortOrder,
	}
	if err := s.Dao.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *AdvertService) Update(ctx context.Context, req *types.AdvertisementUpdateReq) error {
	updates := map[string]any{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.ImagePath != "" {
		updates["image_path"] = req.ImagePath
	}
	if req.TargetURL != "" {
		updates["target_url"] = req.TargetURL
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if len(updates) == 0 {
		return nil
	}

	rows, err := s.Dao.UpdateByWhere(ctx, updates, "id = ?", req.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AdvertService) Remove(ctx context.Context, id int64) error {
	item, err := s.Dao.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.Dao.DeleteById(ctx, id); err != nil {
		return err
	}

	// 尽力删除磁盘上的图片，失败不影响删除结果
	if s.Conf != nil && s.Conf.Upload != nil && strings.HasPrefix(item.ImagePath, "/uploads/") {
		_ = os.Remove(filepath.Join(s.Conf.Upload.Dir, filepath.Base(item.ImagePath)))
	}
	return nil
}
