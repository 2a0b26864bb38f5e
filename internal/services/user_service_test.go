package services_test

import (
	"context"
	"errors"
	"testing"

	"recovery-backend/internal/auth"
	"recovery-backend/internal/config"
	"recovery-backend/internal/models"
	"recovery-backend/internal/services"
	"recovery-backend/internal/testutil/usermock"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWT() *auth.JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "recovery-backend-test"
	return auth.NewJWTManager(cfg)
}

func TestRegisterDefaultsRole(t *testing.T) {
	var created *models.User
	repo := &usermock.Repo{
		CreateFn: func(ctx context.Context, u *models.User) error {
			u.ID = 3
			created = u
			return nil
		},
	}
	svc := services.NewUserService(repo, testJWT())

	user, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "asha",
		Email:    "asha@crm.in",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleTelecaller, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secret1", created.PasswordHash, "password must be hashed before storage")
}

func TestRegisterValidation(t *testing.T) {
	svc := services.NewUserService(&usermock.Repo{}, testJWT())
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"missing email", models.RegisterRequest{Username: "a", Password: "secret1"}},
		{"short password", models.RegisterRequest{Username: "a", Email: "a@b.in", Password: "abc"}},
		{"bad phone", models.RegisterRequest{Username: "a", Email: "a@b.in", Password: "secret1", Phone: "12345"}},
		{"unknown role", models.RegisterRequest{Username: "a", Email: "a@b.in", Password: "secret1", Role: "superuser"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, &tt.req)
			assert.Error(t, err)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email}, nil
		},
	}
	svc := services.NewUserService(repo, testJWT())

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "asha",
		Email:    "asha@crm.in",
		Password: "secret1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	stored := &models.User{ID: 4, Username: "asha", Email: "asha@crm.in", PasswordHash: hash, Role: models.RoleAgent, IsActive: true}

	repo := &usermock.Repo{
		GetByIdentifierFn: func(ctx context.Context, identifier string) (*models.User, error) {
			if identifier == "asha" || identifier == "asha@crm.in" {
				return stored, nil
			}
			return nil, errors.New("no rows")
		},
	}
	svc := services.NewUserService(repo, testJWT())

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Identifier: "asha", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 4, resp.User.ID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	hash, _ := auth.HashPassword("secret1")
	active := &models.User{ID: 4, PasswordHash: hash, IsActive: true}
	inactive := &models.User{ID: 5, PasswordHash: hash, IsActive: false}

	repo := &usermock.Repo{
		GetByIdentifierFn: func(ctx context.Context, identifier string) (*models.User, error) {
			switch identifier {
			case "asha":
				return active, nil
			case "gone":
				return inactive, nil
			}
			return nil, errors.New("no rows")
		},
	}
	svc := services.NewUserService(repo, testJWT())
	ctx := context.Background()

	_, errUnknown := svc.Login(ctx, &models.LoginRequest{Identifier: "nobody", Password: "secret1"})
	_, errWrongPw := svc.Login(ctx, &models.LoginRequest{Identifier: "asha", Password: "wrong"})
	_, errInactive := svc.Login(ctx, &models.LoginRequest{Identifier: "gone", Password: "secret1"})

	require.Error(t, errUnknown)
	assert.EqualError(t, errWrongPw, errUnknown.Error())
	assert.EqualError(t, errInactive, errUnknown.Error())
}

func TestUpdateUserRejectsBadRole(t *testing.T) {
	repo := &usermock.Repo{
		GetFn: func(ctx context.Context, id int) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleAgent}, nil
		},
	}
	svc := services.NewUserService(repo, testJWT())

	_, err := svc.Update(context.Background(), 4, &models.UpdateUserRequest{Role: "root"})
	assert.Error(t, err)
}

func TestDeleteUserNotFound(t *testing.T) {
	repo := &usermock.Repo{
		DeleteFn: func(ctx context.Context, id int) error { return pgx.ErrNoRows },
	}
	svc := services.NewUserService(repo, testJWT())
	assert.ErrorIs(t, svc.Delete(context.Background(), 9), services.ErrNotFound)
}
