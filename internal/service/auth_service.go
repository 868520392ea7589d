package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tasklist/internal/auth"
	"tasklist/internal/model"
	"tasklist/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when name or password is incorrect.
	// Unknown names and wrong passwords are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid name or password")
	// ErrUserAlreadyExists is returned when registering a name that is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, name, password string) (*model.User, error)
	Login(ctx context.Context, name, password string) (token string, user *model.User, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password. Name uniqueness is
// enforced by the store's unique index; a duplicate insert surfaces as
// gorm.ErrDuplicatedKey, so concurrent registrations cannot both succeed.
func (s *authService) Register(ctx context.Context, name, password string) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a signed bearer token.
func (s *authService) Login(ctx context.Context, name, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByName(ctx, name)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}
