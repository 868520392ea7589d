package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "tasklist/internal/errors"
	"tasklist/internal/model"
)

// MockItemRepository is a mock implementation of ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uint) (*model.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) List(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func TestCreateItem_IgnoresCallerID(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(i *model.Item) bool {
		return i.ID == 0 && i.Name == "buy milk"
	})).Return(nil)

	created, err := svc.CreateItem(context.Background(), &model.Item{ID: 99, Name: "buy milk"})
	assert.NoError(t, err)
	assert.Equal(t, "buy milk", created.Name)
	repo.AssertExpectations(t)
}

func TestGetItem_NotFound(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil)

	repo.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetItem(context.Background(), 5)
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)
}

func TestUpdateItem_OverwritesNameAndCompletion(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil)

	existing := &model.Item{ID: 3, Name: "old", IsComplete: false}
	repo.On("FindByID", mock.Anything, uint(3)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(i *model.Item) bool {
		return i.ID == 3 && i.Name == "x" && i.IsComplete
	})).Return(nil)

	err := svc.UpdateItem(context.Background(), 3, &model.Item{ID: 42, Name: "x", IsComplete: true})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateItem_NotFound(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil)

	repo.On("FindByID", mock.Anything, uint(8)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.UpdateItem(context.Background(), 8, &model.Item{Name: "x"})
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)
}

func TestDeleteItem_Lifecycle(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil)

	existing := &model.Item{ID: 4, Name: "done soon"}
	repo.On("FindByID", mock.Anything, uint(4)).Return(existing, nil)
	repo.On("Delete", mock.Anything, existing).Return(nil)

	err := svc.DeleteItem(context.Background(), 4)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteItem_NotFound(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil)

	repo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteItem(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)
}

func TestListItems(t *testing.T) {
	repo := new(MockItemRepository)
	svc := NewItemService(repo, nil)

	items := []model.Item{{ID: 1, Name: "a"}, {ID: 2, Name: "b", IsComplete: true}}
	repo.On("List", mock.Anything).Return(items, nil)

	got, err := svc.ListItems(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, items, got)
}
