package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"recovery-backend/internal/auth"
	"recovery-backend/internal/config"
	"recovery-backend/internal/middleware"
	"recovery-backend/internal/models"
	"recovery-backend/internal/testutil/usermock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMiddleware(t *testing.T, user *models.User) (*middleware.AuthMiddleware, string) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	jwtManager := auth.NewJWTManager(cfg)

	token, err := jwtManager.GenerateToken(user)
	require.NoError(t, err)

	users := &usermock.Repo{
		GetFn: func(ctx context.Context, id int) (*models.User, error) { return user, nil },
	}
	return middleware.NewAuthMiddleware(jwtManager, users), token
}

func okHandler() (http.Handler, *bool) {
	called := new(bool)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}), called
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	m, _ := newTestMiddleware(t, &models.User{ID: 1, Role: models.RoleAgent, IsActive: true})
	next, called := okHandler()

	rec := httptest.NewRecorder()
	m.Authenticate(next).ServeHTTP(rec, httptest.NewRequest("GET", "/api/cases", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuthenticateRejectsMalformedHeader(t *testing.T) {
	m, token := newTestMiddleware(t, &models.User{ID: 1, Role: models.RoleAgent, IsActive: true})
	next, _ := okHandler()

	for _, header := range []string{token, "Basic " + token, "Bearer"} {
		req := httptest.NewRequest("GET", "/api/cases", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		m.Authenticate(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	m, _ := newTestMiddleware(t, &models.User{ID: 1, Role: models.RoleAgent, IsActive: true})
	next, called := okHandler()

	req := httptest.NewRequest("GET", "/api/cases", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	m.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuthenticateBlocksSuspendedUser(t *testing.T) {
	m, token := newTestMiddleware(t, &models.User{ID: 1, Role: models.RoleAgent, IsActive: false})
	next, called := okHandler()

	req := httptest.NewRequest("GET", "/api/cases", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	m.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *called)
}

func TestAuthenticatePopulatesContext(t *testing.T) {
	user := &models.User{ID: 7, Email: "asha@crm.in", Role: models.RoleAgent, IsActive: true}
	m, token := newTestMiddleware(t, user)

	var gotID int
	var gotEmail, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = middleware.GetUserIDFromContext(r.Context())
		gotEmail, _ = middleware.GetEmailFromContext(r.Context())
		gotRole, _ = middleware.GetRoleFromContext(r.Context())
	})

	req := httptest.NewRequest("GET", "/api/cases", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	m.Authenticate(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, 7, gotID)
	assert.Equal(t, "asha@crm.in", gotEmail)
	assert.Equal(t, models.RoleAgent, gotRole)
}

func TestRequireRole(t *testing.T) {
	m, token := newTestMiddleware(t, &models.User{ID: 7, Role: models.RoleAgent, IsActive: true})

	adminOnly, adminCalled := okHandler()
	req := httptest.NewRequest("DELETE", "/api/cases/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	m.RequireRole(models.RoleAdmin)(adminOnly).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *adminCalled)

	agentOrAdmin, agentCalled := okHandler()
	req = httptest.NewRequest("POST", "/api/offers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	m.RequireRole(models.RoleAgent, models.RoleAdmin)(agentOrAdmin).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *agentCalled)
}

// When RequireRole sits behind Authenticate it must reuse the user the
// outer middleware already loaded instead of hitting the store again.
func TestRequireRoleReusesAuthenticatedUser(t *testing.T) {
	user := &models.User{ID: 7, Role: models.RoleAdmin, IsActive: true}

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	jwtManager := auth.NewJWTManager(cfg)
	token, err := jwtManager.GenerateToken(user)
	require.NoError(t, err)

	loads := 0
	users := &usermock.Repo{
		GetFn: func(ctx context.Context, id int) (*models.User, error) {
			loads++
			return user, nil
		},
	}
	m := middleware.NewAuthMiddleware(jwtManager, users)

	next, called := okHandler()
	req := httptest.NewRequest("DELETE", "/api/users/3", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	m.Authenticate(m.RequireRole(models.RoleAdmin)(next)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
	assert.Equal(t, 1, loads)
}
