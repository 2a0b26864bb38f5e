package services_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"recovery-backend/internal/config"
	"recovery-backend/internal/models"
	"recovery-backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// txStore is a function-backed mock that satisfies
// services.OnlineTransactionStore.
type txStore struct {
	CreateFn     func(ctx context.Context, t *models.OnlineTransaction) error
	SettleFn     func(ctx context.Context, orderID, paymentID string, at time.Time) (*models.Payment, error)
	MarkFailedFn func(ctx context.Context, orderID, reason string) error
	ListFn       func(ctx context.Context) ([]*models.OnlineTransaction, error)
}

func (m *txStore) Create(ctx context.Context, t *models.OnlineTransaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *txStore) Settle(ctx context.Context, orderID, paymentID string, at time.Time) (*models.Payment, error) {
	if m.SettleFn != nil {
		return m.SettleFn(ctx, orderID, paymentID, at)
	}
	return nil, nil
}

func (m *txStore) MarkFailed(ctx context.Context, orderID, reason string) error {
	if m.MarkFailedFn != nil {
		return m.MarkFailedFn(ctx, orderID, reason)
	}
	return nil
}

func (m *txStore) List(ctx context.Context) ([]*models.OnlineTransaction, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func razorpayTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Razorpay.WebhookSecret = "whsec-test"
	return cfg
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	svc := services.NewRazorpayService(razorpayTestConfig(), &txStore{})
	body := []byte(`{"event":"payment.captured"}`)

	assert.True(t, svc.VerifyWebhookSignature(body, sign("whsec-test", body)))
	assert.False(t, svc.VerifyWebhookSignature(body, sign("wrong-secret", body)))
	assert.False(t, svc.VerifyWebhookSignature(body, ""))
}

const capturedBody = `{
	"event": "payment.captured",
	"payload": {"payment": {"entity": {"id": "pay_123", "order_id": "order_abc"}}}
}`

func TestHandleWebhookCaptured(t *testing.T) {
	var gotOrder, gotPayment string
	store := &txStore{
		SettleFn: func(ctx context.Context, orderID, paymentID string, at time.Time) (*models.Payment, error) {
			gotOrder, gotPayment = orderID, paymentID
			return &models.Payment{
				Customer:   "Ravi Kumar",
				CaseNumber: "CASE-0001",
				Amount:     15000,
				Date:       at,
				Method:     models.MethodOnline,
				Status:     models.PaymentCompleted,
				CreatedBy:  "razorpay",
			}, nil
		},
	}
	svc := services.NewRazorpayService(razorpayTestConfig(), store)

	require.NoError(t, svc.HandleWebhook(context.Background(), []byte(capturedBody)))
	assert.Equal(t, "order_abc", gotOrder)
	assert.Equal(t, "pay_123", gotPayment)
}

func TestHandleWebhookDuplicateDelivery(t *testing.T) {
	settles := 0
	store := &txStore{
		SettleFn: func(ctx context.Context, orderID, paymentID string, at time.Time) (*models.Payment, error) {
			settles++
			return nil, nil // order already paid and recorded
		},
	}
	svc := services.NewRazorpayService(razorpayTestConfig(), store)

	require.NoError(t, svc.HandleWebhook(context.Background(), []byte(capturedBody)))
	assert.Equal(t, 1, settles)
}

// A capture that fails to settle must error so the caller answers
// non-2xx and Razorpay re-delivers; the retry then runs the paid mark
// and the payment insert together again.
func TestHandleWebhookSettleFailureRetries(t *testing.T) {
	attempts := 0
	store := &txStore{
		SettleFn: func(ctx context.Context, orderID, paymentID string, at time.Time) (*models.Payment, error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("insert failed")
			}
			return &models.Payment{CaseNumber: "CASE-0001", Amount: 15000, Method: models.MethodOnline}, nil
		},
	}
	svc := services.NewRazorpayService(razorpayTestConfig(), store)

	err := svc.HandleWebhook(context.Background(), []byte(capturedBody))
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInternal)

	require.NoError(t, svc.HandleWebhook(context.Background(), []byte(capturedBody)))
	assert.Equal(t, 2, attempts)
}

func TestHandleWebhookFailed(t *testing.T) {
	var gotOrder, gotReason string
	store := &txStore{
		MarkFailedFn: func(ctx context.Context, orderID, reason string) error {
			gotOrder, gotReason = orderID, reason
			return nil
		},
	}
	svc := services.NewRazorpayService(razorpayTestConfig(), store)

	body := []byte(`{
		"event": "payment.failed",
		"payload": {"payment": {"entity": {"id": "pay_123", "order_id": "order_abc", "error_description": "card declined"}}}
	}`)
	require.NoError(t, svc.HandleWebhook(context.Background(), body))
	assert.Equal(t, "order_abc", gotOrder)
	assert.Equal(t, "card declined", gotReason)
}

func TestHandleWebhookMalformed(t *testing.T) {
	svc := services.NewRazorpayService(razorpayTestConfig(), &txStore{})

	assert.Error(t, svc.HandleWebhook(context.Background(), []byte("not json")))
	assert.Error(t, svc.HandleWebhook(context.Background(), []byte(`{"event":"payment.captured","payload":{}}`)))
}
