package service

import (
	"context"
	"errors"

	"smarttech/dao"
	"smarttech/models"
	"smarttech/pkg/log"
	"smarttech/pkg/mail"
	"smarttech/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IServiceRequestService interface {
	Create(ctx context.Context, email string, req *types.ServiceRequestCreateReq) (*models.ServiceRequest, error)
	ListByEmail(ctx context.Context, email string) ([]*models.ServiceRequest, error)
	ListAll(ctx context.Context) ([]*models.ServiceRequest, error)
	UpdateStatus(ctx context.Context, req *types.ServiceStatusUpdateReq) error
	// SendMessage 后台给报修用户发邮件，尽力而为
	SendMessage(ctx context.Context, req *types.ServiceMessageReq) error
	Remove(ctx context.Context, id int64) error
}

type ServiceRequestService struct {
	Dao    *dao.ServiceRequest
	Mailer mail.Mailer
}

var _ IServiceRequestService = (*ServiceRequestService)(nil)

func NewServiceRequestService(d *dao.ServiceRequest, mailer mail.Mailer) *ServiceRequestService {
	return &ServiceRequestService{Dao: d, Mailer: mailer}
}

func (s *ServiceRequestService) Create(ctx context.Context, email string, req *types.ServiceRequestCreateReq) (*models.ServiceRequest, error) {
	item := &models.ServiceRequest{
		Name:        req.Name,
		Email:       email,
		Phone:       req.Phone,
		DeviceType:  req.DeviceType,
		Description: req.Description,
		Status:      models.ServiceStatusPending,
	}
	if err := s.Dao.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ServiceRequestService) ListByEmail(ctx context.Context, email string) ([]*models.ServiceRequest, error) {
	return s.Dao.ListByEmail(ctx, email)
}

func (s *ServiceRequestService) ListAll(ctx context.Context) ([]*models.ServiceRequest, error) {
	return s.Dao.ListAll(ctx)
}

func (s *ServiceRequestService) UpdateStatus(ctx context.Context, req *types.ServiceStatusUpdateReq) error {
	rows, err := s.Dao.UpdateByWhere(ctx,
		map[string]any{"status": req.Status},
		"id = ?", req.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ServiceRequestService) SendMessage(ctx context.Context, req *types.ServiceMessageReq) error {
	item, err := s.Dao.FindById(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	subject := req.Subject
	if subject == "" {
		subject = "维修工单进展"
	}
	if err := s.Mailer.Send(item.Email, subject, req.Message); err != nil {
		log.L.Error("send service message failed",
			zap.Int64("request_id", item.ID),
			zap.Error(err))
	}
	return nil
}

func (s *ServiceRequestService) Remove(ctx context.Context, id int64) error {
	if _, err := s.Dao.FindById(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Dao.DeleteById(ctx, id)
}
