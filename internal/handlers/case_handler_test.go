package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"recovery-backend/internal/handlers"
	"recovery-backend/internal/models"
	"recovery-backend/internal/services"
	"recovery-backend/internal/testutil/casemock"
	"recovery-backend/internal/testutil/usermock"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaseHandler(repo *casemock.Repo) *handlers.CaseHandler {
	return handlers.NewCaseHandler(services.NewCaseService(repo, &usermock.Repo{}), nil)
}

func TestGetCaseEndpointNotFound(t *testing.T) {
	h := newCaseHandler(&casemock.Repo{})

	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/cases/99", nil), map[string]string{"id": "99"})
	rec := httptest.NewRecorder()
	h.GetCase(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// A database outage is answered with a generic 500, never a 400
// carrying the driver message.
func TestGetCaseEndpointStorageFault(t *testing.T) {
	repo := &casemock.Repo{
		GetFn: func(ctx context.Context, id int) (*models.Case, error) {
			return nil, errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
		},
	}
	h := newCaseHandler(repo)

	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/cases/1", nil), map[string]string{"id": "1"})
	rec := httptest.NewRecorder()
	h.GetCase(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "dial tcp")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
