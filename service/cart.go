package service

import (
	"context"
	"errors"

	"smarttech/dao"
	"smarttech/models"
	"smarttech/types"

	"gorm.io/gorm"
)

type ICartService interface {
	// Add 加购，价格按服务端当前价固化到行上
	Add(ctx context.Context, email string, req *types.CartAddReq) error
	Update(ctx context.Context, email string, req *types.CartUpdateReq) error
	Remove(ctx context.Context, email string, req *types.CartRemoveReq) error
	Get(ctx context.Context, email string) (*types.CartResp, error)
	Clear(ctx context.Context, email string) error
	// Merge 登录后把匿名购物车并入账号，相同选择数量累加
	Merge(ctx context.Context, anonKey, email string) error
}

type CartService struct {
	CartDao    *dao.Cart
	ProductDao *dao.Product
}

var _ ICartService = (*CartService)(nil)

func NewCartService(cartDao *dao.Cart, productDao *dao.Product) *CartService {
	return &CartService{CartDao: cartDao, ProductDao: productDao}
}

func (s *CartService) Add(ctx context.Context, email string, req *types.CartAddReq) error {
	qty := req.Qty
	if qty <= 0 {
		qty = 1
	}

	product, err := s.ProductDao.FindById(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if product.HasVariants() && req.SpecName == "" {
		return ErrMissingVariantSelector
	}
	price, ok := product.EffectivePrice(req.SpecName)
	if !ok {
		return ErrUnknownVariant
	}

	available := product.Stock
	if product.HasVariants() {
		available = product.Variants[product.FindVariant(req.SpecName)].Stock
	}

	existing, err := s.CartDao.FindLine(ctx, email, req.ProductID, req.SpecName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	newQty := qty
	if existing != nil {
		newQty += existing.Qty
	}
	if available < newQty {
		return ErrOutOfStock
	}

	if existing != nil {
		_, err = s.CartDao.UpdateByWhere(ctx,
			map[string]any{"qty": newQty, "unit_price": price},
			"id = ?", existing.ID)
		return err
	}

	item := &models.CartItem{
		OwnerKey:  email,
		ProductID: product.ID,
		SpecName:  req.SpecName,
		Title:     product.Title,
		Category:  product.Category,
		UnitPrice: price,
		Qty:       qty,
	}
	if len(product.Images) > 0 {
		item.Image = product.Images[0]
	}
	return s.CartDao.Create(ctx, item)
}

func (s *CartService) Update(ctx context.Context, email string, req *types.CartUpdateReq) error {
	if req.Qty <= 0 {
		return s.CartDao.DeleteLine(ctx, email, req.ProductID, req.SpecName)
	}

	product, err := s.ProductDao.FindById(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	available := product.Stock
	if product.HasVariants() {
		idx := product.FindVariant(req.SpecName)
		if idx < 0 {
			return ErrUnknownVariant
		}
		available = product.Variants[idx].Stock
	}
	if available < req.Qty {
		return ErrOutOfStock
	}

	rows, err := s.CartDao.UpdateByWhere(ctx,
		map[string]any{"qty": req.Qty},
		"owner_key = ? AND product_id = ? AND spec_name = ?", email, req.ProductID, req.SpecName)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CartService) Remove(ctx context.Context, email string, req *types.CartRemoveReq) error {
	return s.CartDao.DeleteLine(ctx, email, req.ProductID, req.SpecName)
}

func (s *CartService) Get(ctx context.Context, email string) (*types.CartResp, error) {
	items, err := s.CartDao.ListByOwner(ctx, email)
	if err != nil {
		return nil, err
	}

	resp := &types.CartResp{Lines: make([]types.CartLineResp, 0, len(items))}
	for _, it := range items {
		lineTotal := it.UnitPrice * int64(it.Qty)
		resp.Lines = append(resp.Lines, types.CartLineResp{
			ProductID: it.ProductID,
			SpecName:  it.SpecName,
			Title:     it.Title,
			Category:  it.Category,
			Image:     it.Image,
			UnitPrice: it.UnitPrice,
			Qty:       it.Qty,
			LineTotal: lineTotal,
		})
		resp.Subtotal += lineTotal
	}
	return resp, nil
}

func (s *CartService) Clear(ctx context.Context, email string) error {
	return s.CartDao.Clear(ctx, email)
}

func (s *CartService) Merge(ctx context.Context, anonKey, email string) error {
	anonLines, err := s.CartDao.ListByOwner(ctx, anonKey)
	if err != nil {
		return err
	}

	for _, line := range anonLines {
		existing, err := s.CartDao.FindLine(ctx, email, line.ProductID, line.SpecName)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if existing != nil {
			if _, err := s.CartDao.UpdateByWhere(ctx,
				map[string]any{"qty": existing.Qty + line.Qty},
				"id = ?", existing.ID); err != nil {
				return err
			}
			continue
		}

		item := &models.CartItem{
			OwnerKey:  email,
			ProductID: line.ProductID,
			SpecName:  line.SpecName,
			Title:     line.Title,
			Category:  line.Category,
			Image:     line.Image,
			UnitPrice: line.UnitPrice,
			Qty:       line.Qty,
		}
		if err := s.CartDao.Create(ctx, item); err != nil {
			return err
		}
	}

	return s.CartDao.Clear(ctx, anonKey)
}
