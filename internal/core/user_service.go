package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/models"
)

// User errors.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
)

type userService struct {
	users db.UserRepository
}

// NewUserService creates a UserService over the user repository.
func NewUserService(users db.UserRepository) UserService {
	return &userService{users: users}
}

// Register creates the user document on first sign-in. An existing email
// is not an error: the stored user is returned with created=false.
func (s *userService) Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, bool, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, false, fmt.Errorf("look up user %q: %w", req.Email, err)
	}
	u := &models.User{
		Email:      req.Email,
		Name:       req.Name,
		Photo:      req.Photo,
		Role:       models.RoleUser,
		Subscribed: models.FlagNo,
		CreatedAt:  time.Now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

func (s *userService) SetRole(ctx context.Context, email, role string) error {
	if role != models.RoleUser && role != models.RoleModerator && role != models.RoleAdmin {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	err := s.users.UpdateRole(ctx, email, role)
	if errors.Is(err, db.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *userService) Subscribe(ctx context.Context, email string) error {
	err := s.users.SetSubscribed(ctx, email)
	if errors.Is(err, db.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
