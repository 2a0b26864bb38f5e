package services_test

import (
	"context"
	"testing"

	"recovery-backend/internal/models"
	"recovery-backend/internal/services"
	"recovery-backend/internal/testutil/casemock"
	"recovery-backend/internal/testutil/offermock"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignedCase(id, agentID int) *models.Case {
	return &models.Case{
		ID:         id,
		CaseNumber: "CASE-0001",
		Name:       "Ravi Kumar",
		Phone:      "9876543210",
		Status:     models.StatusInProgress,
		AssignedTo: &agentID,
	}
}

func TestOfferCreate(t *testing.T) {
	cases := &casemock.Repo{
		GetFn: func(ctx context.Context, id int) (*models.Case, error) { return assignedCase(id, 5), nil },
	}
	offers := &offermock.Repo{
		CreateFn: func(ctx context.Context, o *models.Offer) error { o.ID = 11; return nil },
	}
	svc := services.NewOfferService(offers, cases)

	o, err := svc.Create(context.Background(), 5, &models.CreateOfferRequest{
		CaseID:      1,
		DealAmount:  50000,
		AdvancePaid: 12000,
	})
	require.NoError(t, err)
	assert.Equal(t, 38000.0, o.PendingAmount)
	assert.Equal(t, "CASE-0001", o.CaseNumber)
	assert.Equal(t, 5, o.AgentID)
}

func TestOfferCreateRejectsUnassignedAgent(t *testing.T) {
	cases := &casemock.Repo{
		GetFn: func(ctx context.Context, id int) (*models.Case, error) { return assignedCase(id, 5), nil },
	}
	svc := services.NewOfferService(&offermock.Repo{}, cases)

	_, err := svc.Create(context.Background(), 8, &models.CreateOfferRequest{CaseID: 1, DealAmount: 50000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not assigned to you")
}

func TestOfferCreateSecondOfferRejected(t *testing.T) {
	cases := &casemock.Repo{
		GetFn: func(ctx context.Context, id int) (*models.Case, error) { return assignedCase(id, 5), nil },
	}
	offers := &offermock.Repo{
		GetByCaseIDFn: func(ctx context.Context, caseID int) (*models.Offer, error) {
			return &models.Offer{ID: 2, CaseID: caseID}, nil
		},
	}
	svc := services.NewOfferService(offers, cases)

	_, err := svc.Create(context.Background(), 5, &models.CreateOfferRequest{CaseID: 1, DealAmount: 50000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestOfferCreateAmountValidation(t *testing.T) {
	svc := services.NewOfferService(&offermock.Repo{}, &casemock.Repo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, 5, &models.CreateOfferRequest{CaseID: 1, DealAmount: 0})
	assert.Error(t, err)

	_, err = svc.Create(ctx, 5, &models.CreateOfferRequest{CaseID: 1, DealAmount: 100, AdvancePaid: 200})
	assert.Error(t, err)
}

func TestOfferCreateMirrorsPaymentProof(t *testing.T) {
	var mirroredCase int
	var mirroredURL string
	cases := &casemock.Repo{
		GetFn: func(ctx context.Context, id int) (*models.Case, error) { return assignedCase(id, 5), nil },
		SetPaymentProofFn: func(ctx context.Context, caseID int, proofURL string) error {
			mirroredCase, mirroredURL = caseID, proofURL
			return nil
		},
	}
	svc := services.NewOfferService(&offermock.Repo{}, cases)

	_, err := svc.Create(context.Background(), 5, &models.CreateOfferRequest{
		CaseID:          1,
		DealAmount:      50000,
		PaymentProofURL: "/uploads/proof-1.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, mirroredCase)
	assert.Equal(t, "/uploads/proof-1.jpg", mirroredURL)
}

func TestOfferUpdateRecomputesPending(t *testing.T) {
	offers := &offermock.Repo{
		GetFn: func(ctx context.Context, id int) (*models.Offer, error) {
			return &models.Offer{ID: id, CaseID: 1, AgentID: 5, DealAmount: 50000, AdvancePaid: 12000, PendingAmount: 38000}, nil
		},
		UpdateFn: func(ctx context.Context, o *models.Offer) error { return nil },
	}
	svc := services.NewOfferService(offers, &casemock.Repo{})

	advance := 30000.0
	o, err := svc.Update(context.Background(), 11, 5, &models.UpdateOfferRequest{AdvancePaid: &advance})
	require.NoError(t, err)
	assert.Equal(t, 20000.0, o.PendingAmount)
}

func TestOfferUpdateScopedToOwner(t *testing.T) {
	offers := &offermock.Repo{
		GetFn: func(ctx context.Context, id int) (*models.Offer, error) {
			return &models.Offer{ID: id, AgentID: 5, DealAmount: 50000}, nil
		},
	}
	svc := services.NewOfferService(offers, &casemock.Repo{})

	_, err := svc.Update(context.Background(), 11, 8, &models.UpdateOfferRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "another agent")
}

func TestOfferDeleteScopedToOwner(t *testing.T) {
	var gotID, gotAgent int
	offers := &offermock.Repo{
		DeleteOwnedFn: func(ctx context.Context, id, agentID int) error {
			gotID, gotAgent = id, agentID
			return nil
		},
	}
	svc := services.NewOfferService(offers, &casemock.Repo{})

	require.NoError(t, svc.Delete(context.Background(), 11, 5))
	assert.Equal(t, 11, gotID)
	assert.Equal(t, 5, gotAgent)

	offers.DeleteOwnedFn = func(ctx context.Context, id, agentID int) error { return pgx.ErrNoRows }
	assert.ErrorIs(t, svc.Delete(context.Background(), 11, 8), services.ErrNotFound)
}

// DeleteAny skips the ownership scope for admins.
func TestOfferDeleteAny(t *testing.T) {
	var gotID int
	owned := false
	offers := &offermock.Repo{
		DeleteFn:      func(ctx context.Context, id int) error { gotID = id; return nil },
		DeleteOwnedFn: func(ctx context.Context, id, agentID int) error { owned = true; return nil },
	}
	svc := services.NewOfferService(offers, &casemock.Repo{})

	require.NoError(t, svc.DeleteAny(context.Background(), 11))
	assert.Equal(t, 11, gotID)
	assert.False(t, owned)

	offers.DeleteFn = func(ctx context.Context, id int) error { return pgx.ErrNoRows }
	assert.ErrorIs(t, svc.DeleteAny(context.Background(), 99), services.ErrNotFound)
}

// Offers feed the agent dashboards, so every successful mutation
// drops the cached payloads.
func TestOfferMutationsInvalidateDashboards(t *testing.T) {
	invalidations := trackInvalidations(t)
	cases := &casemock.Repo{
		GetFn: func(ctx context.Context, id int) (*models.Case, error) { return assignedCase(id, 5), nil },
	}
	offers := &offermock.Repo{
		GetFn: func(ctx context.Context, id int) (*models.Offer, error) {
			return &models.Offer{ID: id, CaseID: 1, AgentID: 5, DealAmount: 50000}, nil
		},
	}
	svc := services.NewOfferService(offers, cases)
	ctx := context.Background()

	_, err := svc.Create(ctx, 5, &models.CreateOfferRequest{CaseID: 1, DealAmount: 50000})
	require.NoError(t, err)
	assert.Equal(t, 1, *invalidations)

	amount := 45000.0
	_, err = svc.Update(ctx, 11, 5, &models.UpdateOfferRequest{DealAmount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 2, *invalidations)

	require.NoError(t, svc.Delete(ctx, 11, 5))
	assert.Equal(t, 3, *invalidations)

	require.NoError(t, svc.DeleteAny(ctx, 11))
	assert.Equal(t, 4, *invalidations)

	_, err = svc.Create(ctx, 5, &models.CreateOfferRequest{CaseID: 1, DealAmount: -1})
	require.Error(t, err)
	assert.Equal(t, 4, *invalidations, "a rejected offer must not drop the cache")
}
