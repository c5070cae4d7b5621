package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用DAO，按需嵌入各实体DAO
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) *Repo[T] {
	return &Repo[T]{Db: db}
}

func (r *Repo[T]) Model(ctx context.Context) *gorm.DB {
	var m T
	return r.Db.WithContext(ctx).Model(&m)
}

func (r *Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

func (r *Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByWhere 按条件取一条
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAll 按条件取全部
func (r *Repo[T]) FindAll(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*T, error) {
	db := r.Model(ctx)
	for _, scope := range scopes {
		db = scope(db)
	}

	var items []*T
	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateByWhere 按条件更新
func (r *Repo[T]) UpdateByWhere(ctx context.Context, data map[string]any, where string, args ...any) (int64, error) {
	res := r.Model(ctx).Where(where, args...).Updates(data)
	return res.RowsAffected, res.Error
}

func (r *Repo[T]) DeleteById(ctx context.Context, id any) error {
	var m T
	return r.Db.WithContext(ctx).Delete(&m, id).Error
}

// Txx 事务执行
func (r *Repo[T]) Txx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(fn)
}
