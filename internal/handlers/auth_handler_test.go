package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recovery-backend/internal/auth"
	"recovery-backend/internal/config"
	"recovery-backend/internal/handlers"
	"recovery-backend/internal/models"
	"recovery-backend/internal/services"
	"recovery-backend/internal/testutil/usermock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(repo *usermock.Repo) *handlers.AuthHandler {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	return handlers.NewAuthHandler(services.NewUserService(repo, auth.NewJWTManager(cfg)))
}

func TestRegisterEndpoint(t *testing.T) {
	repo := &usermock.Repo{
		CreateFn: func(ctx context.Context, u *models.User) error { u.ID = 3; return nil },
	}
	h := newAuthHandler(repo)

	body := `{"username":"asha","email":"asha@crm.in","password":"secret1","role":"agent"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, 3, user.ID)
	assert.Equal(t, models.RoleAgent, user.Role)
	assert.NotContains(t, rec.Body.String(), "secret1")
}

func TestRegisterEndpointBadBody(t *testing.T) {
	h := newAuthHandler(&usermock.Repo{})

	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	repo := &usermock.Repo{
		GetByIdentifierFn: func(ctx context.Context, identifier string) (*models.User, error) {
			return &models.User{ID: 4, Username: "asha", Email: "asha@crm.in", PasswordHash: hash, Role: models.RoleAgent, IsActive: true}, nil
		},
	}
	h := newAuthHandler(repo)

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"identifier":"asha","password":"secret1"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 4, resp.User.ID)
}

func TestLoginEndpointFailuresShareOneBody(t *testing.T) {
	h := newAuthHandler(&usermock.Repo{})

	bodies := []string{
		`{"identifier":"nobody","password":"secret1"}`,
		`{"identifier":"","password":""}`,
		`{broken`,
	}
	for _, body := range bodies {
		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", strings.TrimSpace(rec.Body.String()))
	}
}
