package services_test

import (
	"context"
	"testing"

	"recovery-backend/internal/models"
	"recovery-backend/internal/services"
	"recovery-backend/internal/testutil/paymentmock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentCreate(t *testing.T) {
	var saved *models.Payment
	repo := &paymentmock.Repo{
		CreateFn: func(ctx context.Context, p *models.Payment) error {
			p.ID = 21
			saved = p
			return nil
		},
	}
	svc := services.NewPaymentService(repo)

	p, err := svc.Create(context.Background(), &models.CreatePaymentRequest{
		Customer:   "Ravi Kumar",
		CaseNumber: "CASE-0001",
		Amount:     15000,
		Method:     models.MethodUPI,
	}, "agent@crm.in")
	require.NoError(t, err)
	assert.Equal(t, 21, p.ID)
	assert.Equal(t, models.PaymentPending, saved.Status, "status defaults to pending")
	assert.Equal(t, "agent@crm.in", saved.CreatedBy)
	assert.False(t, saved.Date.IsZero())
}

func TestPaymentCreateValidation(t *testing.T) {
	svc := services.NewPaymentService(&paymentmock.Repo{})
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.CreatePaymentRequest
	}{
		{"zero amount", models.CreatePaymentRequest{Amount: 0, Method: models.MethodCash}},
		{"negative amount", models.CreatePaymentRequest{Amount: -50, Method: models.MethodCash}},
		{"unknown method", models.CreatePaymentRequest{Amount: 100, Method: "Barter"}},
		{"unknown status", models.CreatePaymentRequest{Amount: 100, Method: models.MethodCash, Status: "Settled"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tt.req, "agent@crm.in")
			assert.Error(t, err)
		})
	}
}

func TestPaymentUpdateMethodValidation(t *testing.T) {
	repo := &paymentmock.Repo{
		GetFn: func(ctx context.Context, id int) (*models.Payment, error) {
			return &models.Payment{ID: id, Amount: 100, Method: models.MethodCash, Status: models.PaymentPending}, nil
		},
		UpdateFn: func(ctx context.Context, p *models.Payment) error { return nil },
	}
	svc := services.NewPaymentService(repo)

	bad := "Barter"
	_, err := svc.Update(context.Background(), 21, &models.UpdatePaymentRequest{Method: &bad})
	assert.Error(t, err)

	good := models.MethodCheque
	p, err := svc.Update(context.Background(), 21, &models.UpdatePaymentRequest{Method: &good})
	require.NoError(t, err)
	assert.Equal(t, models.MethodCheque, p.Method)
}

func TestPaymentGetNotFound(t *testing.T) {
	svc := services.NewPaymentService(&paymentmock.Repo{})
	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGenerateReceipt(t *testing.T) {
	repo := &paymentmock.Repo{
		GetFn: func(ctx context.Context, id int) (*models.Payment, error) {
			return &models.Payment{
				ID:         id,
				Customer:   "Ravi Kumar",
				CaseNumber: "CASE-0001",
				Amount:     15000,
				Method:     models.MethodUPI,
				Status:     models.PaymentCompleted,
			}, nil
		},
	}
	svc := services.NewReceiptService(repo)

	pdf, err := svc.GenerateReceipt(context.Background(), 21)
	require.NoError(t, err)
	assert.True(t, len(pdf) > 4 && string(pdf[:4]) == "%PDF")
}

func TestGenerateReceiptNotFound(t *testing.T) {
	svc := services.NewReceiptService(&paymentmock.Repo{})
	_, err := svc.GenerateReceipt(context.Background(), 99)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
