package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"recovery-backend/internal/handlers"
	"recovery-backend/internal/middleware"
	"recovery-backend/internal/models"
	"recovery-backend/internal/services"
	"recovery-backend/internal/testutil/casemock"
	"recovery-backend/internal/testutil/offermock"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deleteOfferRequest(t *testing.T, userID int, role string) *http.Request {
	t.Helper()
	req := httptest.NewRequest("DELETE", "/api/offers/11", nil)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.RoleKey, role)
	return mux.SetURLVars(req.WithContext(ctx), map[string]string{"id": "11"})
}

func TestDeleteOfferScopesAgentsToTheirOwn(t *testing.T) {
	var gotID, gotAgent int
	unscoped := false
	offers := &offermock.Repo{
		DeleteOwnedFn: func(ctx context.Context, id, agentID int) error {
			gotID, gotAgent = id, agentID
			return nil
		},
		DeleteFn: func(ctx context.Context, id int) error { unscoped = true; return nil },
	}
	h := handlers.NewOfferHandler(services.NewOfferService(offers, &casemock.Repo{}))

	rec := httptest.NewRecorder()
	h.DeleteOffer(rec, deleteOfferRequest(t, 5, models.RoleAgent))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 11, gotID)
	assert.Equal(t, 5, gotAgent)
	assert.False(t, unscoped)
}

func TestDeleteOfferAdminDeletesAnyAgents(t *testing.T) {
	var gotID int
	scoped := false
	offers := &offermock.Repo{
		DeleteFn: func(ctx context.Context, id int) error { gotID = id; return nil },
		DeleteOwnedFn: func(ctx context.Context, id, agentID int) error {
			scoped = true
			return nil
		},
	}
	h := handlers.NewOfferHandler(services.NewOfferService(offers, &casemock.Repo{}))

	rec := httptest.NewRecorder()
	h.DeleteOffer(rec, deleteOfferRequest(t, 2, models.RoleAdmin))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 11, gotID)
	assert.False(t, scoped, "the admin path must not be ownership-scoped")
}
