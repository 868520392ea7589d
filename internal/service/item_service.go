package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tasklist/internal/cache"
	apperrors "tasklist/internal/errors"
	"tasklist/internal/model"
	"tasklist/internal/repository"
)

const itemCacheTTL = 5 * time.Minute

// ItemService exposes the guarded CRUD operations over items.
type ItemService interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	GetItem(ctx context.Context, id uint) (*model.Item, error)
	CreateItem(ctx context.Context, item *model.Item) (*model.Item, error)
	UpdateItem(ctx context.Context, id uint, input *model.Item) error
	DeleteItem(ctx context.Context, id uint) error
}

type itemService struct {
	repo  repository.ItemRepository
	cache *cache.Client
}

// NewItemService builds an ItemService with repository and cache.
func NewItemService(repo repository.ItemRepository, cache *cache.Client) ItemService {
	return &itemService{repo: repo, cache: cache}
}

func (s *itemService) cacheKey(id uint) string {
	return fmt.Sprintf("item:%d", id)
}

func (s *itemService) ListItems(ctx context.Context) ([]model.Item, error) {
	return s.repo.List(ctx)
}

func (s *itemService) GetItem(ctx context.Context, id uint) (*model.Item, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Item
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(item); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, itemCacheTTL)
	}
	return item, nil
}

// CreateItem persists a new item. Any caller-supplied ID is discarded; the
// store assigns a fresh one.
func (s *itemService) CreateItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	item.ID = 0
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem overwrites exactly the Name and IsComplete fields of the stored
// record. The ID is never overwritten.
func (s *itemService) UpdateItem(ctx context.Context, id uint, input *model.Item) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrItemNotFound
		}
		return err
	}

	item.Name = input.Name
	item.IsComplete = input.IsComplete
	if err := s.repo.Update(ctx, item); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *itemService) DeleteItem(ctx context.Context, id uint) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrItemNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, item); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
