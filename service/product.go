package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"smarttech/dao"
	"smarttech/dao/cache"
	"smarttech/models"
	"smarttech/types"

	"gorm.io/gorm"
)

type IProductService interface {
	List(ctx context.Context, req *types.ProductListReq) ([]*models.Product, error)
	Detail(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, req *types.ProductCreateReq) (*models.Product, error)
	Update(ctx context.Context, req *types.ProductUpdateReq) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
	UpdateRating(ctx context.Context, id int64, rating float64) error
}

type ProductService struct {
	ProductDao *dao.Product
	Cache      *cache.Catalog
}

var _ IProductService = (*ProductService)(nil)

func NewProductService(productDao *dao.Product, catalog *cache.Catalog) *ProductService {
	return &ProductService{ProductDao: productDao, Cache: catalog}
}

func (s *ProductService) List(ctx context.Context, req *types.ProductListReq) ([]*models.Product, error) {
	// 搜索不走缓存
	if req.Keyword != "" {
		return s.ProductDao.Search(ctx, req.Keyword)
	}

	if s.Cache != nil {
		if items, ok := s.Cache.GetList(ctx, req.Category); ok {
			return items, nil
		}
	}

	items, err := s.ProductDao.ListByCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		s.Cache.SetList(ctx, req.Category, items)
	}
	return items, nil
}

func (s *ProductService) Detail(ctx context.Context, id int64) (*models.Product, error) {
	if s.Cache != nil {
		if item, ok := s.Cache.GetDetail(ctx, id); ok {
			return item, nil
		}
	}

	item, err := s.ProductDao.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if s.Cache != nil {
		s.Cache.SetDetail(ctx, item)
	}
	return item, nil
}

func (s *ProductService) Create(ctx context.Context, req *types.ProductCreateReq) (*models.Product, error) {
	product := &models.Product{
		Title:       req.Title,
		Category:    req.Category,
		Brand:       req.Brand,
		Description: req.Description,
		Price:       req.Price,
		MrpPrice:    req.MrpPrice,
		Stock:       req.Stock,
		Variants:    req.Variants,
		Images:      req.Images,
	}
	if req.DiscountEndDate != "" {
		if t, err := time.Parse(time.RFC3339, req.DiscountEndDate); err == nil {
			product.DiscountEndDate = &t
		}
	}
	if req.Specs != nil {
		raw, err := json.Marshal(req.Specs)
		if err != nil {
			return nil, err
		}
		product.Specs = raw
	}

	// 规格商品聚合库存与最低价由规格推导
	if product.HasVariants() {
		product.Stock = product.AggregateStock()
		product.Price = minVariantPrice(product.Variants)
	}

	if err := s.ProductDao.Create(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx, product)
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, req *types.ProductUpdateReq) (*models.Product, error) {
	product, err := s.ProductDao.FindById(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != "" {
		product.Title = req.Title
	}
	if req.Brand != "" {
		product.Brand = req.Brand
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.MrpPrice > 0 {
		product.MrpPrice = req.MrpPrice
	}
	if req.DiscountEndDate != "" {
		if t, err := time.Parse(time.RFC3339, req.DiscountEndDate); err == nil {
			product.DiscountEndDate = &t
		}
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Specs != nil {
		raw, err := json.Marshal(req.Specs)
		if err != nil {
			return nil, err
		}
		product.Specs = raw
	}
	if req.Variants != nil {
		product.Variants = req.Variants
	}

	if product.HasVariants() {
		product.Stock = product.AggregateStock()
		product.Price = minVariantPrice(product.Variants)
	} else if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.ProductDao.Db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	s.invalidate(ctx, product)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	product, err := s.ProductDao.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.ProductDao.DeleteById(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, product)
	return nil
}

func (s *ProductService) UpdateRating(ctx context.Context, id int64, rating float64) error {
	if rating < 0 || rating > 5 {
		return errors.New("评分超出范围")
	}

	rows, err := s.ProductDao.UpdateByWhere(ctx,
		map[string]any{"rating": rating},
		"id = ?", id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	if s.Cache != nil {
		product, err := s.ProductDao.FindById(ctx, id)
		if err == nil {
			s.Cache.Invalidate(ctx, product.ID, product.Category)
		}
	}
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, product *models.Product) {
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, product.ID, product.Category)
	}
}

// minVariantPrice 列表展示价取各规格折后价的最低值
func minVariantPrice(variants []models.Variant) int64 {
	if len(variants) == 0 {
		return 0
	}
	lowest := variants[0].EffectivePrice()
	for i := 1; i < len(variants); i++ {
		if p := variants[i].EffectivePrice(); p < lowest {
			lowest = p
		}
	}
	return lowest
}
