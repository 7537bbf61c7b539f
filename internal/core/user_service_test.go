package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/models"
)

func TestRegisterCreatesNewUserWithDefaults(t *testing.T) {
	var created *models.User
	users := &fakeUserRepo{createFn: func(ctx context.Context, u *models.User) error {
		created = u
		return nil
	}}
	svc := NewUserService(users)

	u, wasCreated, err := svc.Register(context.Background(), models.RegisterUserRequest{
		Email: "new@example.com",
		Name:  "New User",
	})

	require.NoError(t, err)
	assert.True(t, wasCreated)
	require.NotNil(t, created)
	assert.Equal(t, u, created)
	assert.Equal(t, models.RoleUser, created.Role)
	assert.Equal(t, models.FlagNo, created.Subscribed)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestRegisterReturnsExistingUserUnchanged(t *testing.T) {
	existing := &models.User{Email: "old@example.com", Role: models.RoleAdmin}
	users := &fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return existing, nil
		},
		createFn: func(ctx context.Context, u *models.User) error {
			t.Fatal("create should not be reached")
			return nil
		},
	}
	svc := NewUserService(users)

	u, wasCreated, err := svc.Register(context.Background(), models.RegisterUserRequest{Email: "old@example.com"})

	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, existing, u)
}

func TestSetRoleValidatesRole(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{updateRoleFn: func(ctx context.Context, email, role string) error {
		return nil
	}})

	assert.NoError(t, svc.SetRole(context.Background(), "a@b.c", models.RoleModerator))
	assert.ErrorIs(t, svc.SetRole(context.Background(), "a@b.c", "superuser"), ErrInvalidRole)
}

func TestSetRoleMapsMissingUser(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{updateRoleFn: func(ctx context.Context, email, role string) error {
		return db.ErrNotFound
	}})

	err := svc.SetRole(context.Background(), "ghost@example.com", models.RoleAdmin)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetByEmailMapsMissingUser(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.GetByEmail(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, ErrUserNotFound)
}
