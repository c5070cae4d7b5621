package cache

import (
	"context"
	"encoding/json"
	"time"

	"smarttech/models"

	"github.com/redis/go-redis/v9"
)

const catalogTTL = 5 * time.Minute

// Catalog 商品读缓存，写路径负责失效
type Catalog struct {
	rds *redis.Client
}

func NewCatalog(rds *redis.Client) *Catalog {
	return &Catalog{rds: rds}
}

func (c *Catalog) GetList(ctx context.Context, category string) ([]*models.Product, bool) {
	raw, err := c.rds.Get(ctx, ProductListKey(category)).Bytes()
	if err != nil {
		return nil, false
	}

	var items []*models.Product
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *Catalog) SetList(ctx context.Context, category string, items []*models.Product) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.rds.Set(ctx, ProductListKey(category), raw, catalogTTL)
}

func (c *Catalog) GetDetail(ctx context.Context, id int64) (*models.Product, bool) {
	raw, err := c.rds.Get(ctx, ProductDetailKey(id)).Bytes()
	if err != nil {
		return nil, false
	}

	var item models.Product
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, false
	}
	return &item, true
}

func (c *Catalog) SetDetail(ctx context.Context, item *models.Product) {
	raw, err := json.Marshal(item)
	if err != nil {
		return
	}
	c.rds.Set(ctx, ProductDetailKey(item.ID), raw, catalogTTL)
}

// Invalidate 商品或库存变更后清理
func (c *Catalog) Invalidate(ctx context.Context, id int64, category string) {
	c.rds.Del(ctx,
		ProductDetailKey(id),
		ProductListKey(category),
		ProductListKey(""),
	)
}
