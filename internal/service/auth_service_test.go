package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tasklist/internal/auth"
	"tasklist/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret", "tasklist", "tasklist-clients", time.Hour)
}

func TestRegister_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, newTestJWTService())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Name == "alice" && u.PasswordHash != "secret"
	})).Return(nil)

	user, err := svc.Register(context.Background(), "alice", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	// stored hash must verify against the original password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateName(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, newTestJWTService())

	repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Register(context.Background(), "alice", "secret")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	repo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockUserRepository)
	jwtSvc := newTestJWTService()
	svc := NewAuthService(repo, jwtSvc)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcryptCost)
	assert.NoError(t, err)
	stored := &model.User{ID: 7, Name: "alice", PasswordHash: string(hash)}
	repo.On("FindByName", mock.Anything, "alice").Return(stored, nil)

	token, user, err := svc.Login(context.Background(), "alice", "secret")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)

	claims, err := jwtSvc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.UserName)
	repo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, newTestJWTService())

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcryptCost)
	assert.NoError(t, err)
	stored := &model.User{ID: 7, Name: "alice", PasswordHash: string(hash)}
	repo.On("FindByName", mock.Anything, "alice").Return(stored, nil)

	_, _, err = svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownName(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, newTestJWTService())

	repo.On("FindByName", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(context.Background(), "nobody", "secret")
	// indistinguishable from the wrong-password case
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
