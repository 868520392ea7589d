package repository

import (
	"context"

	"gorm.io/gorm"

	"tasklist/internal/model"
)

// ItemRepository defines item persistence operations.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id uint) (*model.Item, error)
	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, item *model.Item) error
	List(ctx context.Context) ([]model.Item, error)
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository builds a GORM-backed repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id uint) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Update(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) Delete(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Delete(item).Error
}

func (r *itemRepository) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
