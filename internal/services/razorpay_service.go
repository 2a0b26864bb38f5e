package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"recovery-backend/internal/cache"
	"recovery-backend/internal/config"
	"recovery-backend/internal/metrics"
	"recovery-backend/internal/models"
	"recovery-backend/internal/timeutil"

	razorpay "github.com/razorpay/razorpay-go"
)

// OnlineTransactionStore tracks razorpay orders through their lifecycle.
type OnlineTransactionStore interface {
	Create(ctx context.Context, t *models.OnlineTransaction) error
	Settle(ctx context.Context, orderID, paymentID string, at time.Time) (*models.Payment, error)
	MarkFailed(ctx context.Context, orderID, reason string) error
	List(ctx context.Context) ([]*models.OnlineTransaction, error)
}

// RazorpayService raises online collection orders and settles them
// from webhooks. Disabled entirely when credentials are not configured.
type RazorpayService struct {
	cfg    *config.Config
	client *razorpay.Client
	Repo   OnlineTransactionStore
}

func NewRazorpayService(cfg *config.Config, repo OnlineTransactionStore) *RazorpayService {
	s := &RazorpayService{cfg: cfg, Repo: repo}
	if cfg.RazorpayEnabled() {
		s.client = razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	}
	return s
}

// CreateOrderResponse is returned to the client raising an order
type CreateOrderResponse struct {
	OrderID  string  `json:"orderId"`
	Amount   int     `json:"amount"` // paise
	Currency string  `json:"currency"`
	KeyID    string  `json:"keyId"`
	Customer string  `json:"customer"`
	Rupees   float64 `json:"rupees"`
}

// CreateOrder raises a Razorpay order for a settlement amount and
// stores the tracking row.
func (s *RazorpayService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*CreateOrderResponse, error) {
	if s.client == nil {
		return nil, errors.New("online payments are not configured")
	}
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	amountPaise := int(req.Amount * 100)
	orderData := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  fmt.Sprintf("rcpt_%s_%d", req.CaseNumber, time.Now().Unix()),
		"notes": map[string]interface{}{
			"case_number": req.CaseNumber,
			"customer":    req.Customer,
		},
	}

	order, err := s.client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}
	orderID, _ := order["id"].(string)
	if orderID == "" {
		return nil, errors.New("razorpay returned no order id")
	}

	tx := &models.OnlineTransaction{
		OrderID:    orderID,
		CaseNumber: req.CaseNumber,
		Customer:   req.Customer,
		Amount:     req.Amount,
		Status:     "created",
	}
	if err := s.Repo.Create(ctx, tx); err != nil {
		return nil, storeErr(err)
	}

	log.Printf("[Razorpay] Order %s raised for %s (%.2f)", orderID, req.CaseNumber, req.Amount)
	return &CreateOrderResponse{
		OrderID:  orderID,
		Amount:   amountPaise,
		Currency: "INR",
		KeyID:    s.cfg.Razorpay.KeyID,
		Customer: req.Customer,
		Rupees:   req.Amount,
	}, nil
}

// webhookEvent is the subset of the Razorpay webhook payload we read
type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID               string `json:"id"`
				OrderID          string `json:"order_id"`
				ErrorDescription string `json:"error_description"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// VerifyWebhookSignature checks the X-Razorpay-Signature HMAC.
func (s *RazorpayService) VerifyWebhookSignature(body []byte, signature string) bool {
	if s.cfg.Razorpay.WebhookSecret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(s.cfg.Razorpay.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// HandleWebhook processes a verified webhook body. On capture the
// store settles the order and records a Completed payment atomically;
// re-delivered events find the order settled and change nothing.
func (s *RazorpayService) HandleWebhook(ctx context.Context, body []byte) error {
	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("malformed webhook payload: %w", err)
	}

	entity := event.Payload.Payment.Entity
	if entity.OrderID == "" {
		return errors.New("webhook payload carries no order id")
	}

	switch event.Event {
	case "payment.captured":
		p, err := s.Repo.Settle(ctx, entity.OrderID, entity.ID, timeutil.Now())
		if err != nil {
			log.Printf("[Razorpay] Order %s capture not settled: %v", entity.OrderID, err)
			return storeErr(err)
		}
		if p == nil {
			return nil // duplicate delivery
		}

		metrics.PaymentsRecordedTotal.WithLabelValues(p.Method).Inc()
		cache.InvalidateStats(ctx)
		log.Printf("[Razorpay] Order %s captured (%s)", entity.OrderID, entity.ID)
		return nil

	case "payment.failed":
		reason := entity.ErrorDescription
		if reason == "" {
			reason = "payment failed"
		}
		if err := s.Repo.MarkFailed(ctx, entity.OrderID, reason); err != nil {
			return storeErr(err)
		}
		return nil
	}

	// Other events are acknowledged and ignored
	return nil
}

func (s *RazorpayService) ListTransactions(ctx context.Context) ([]*models.OnlineTransaction, error) {
	txs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return txs, nil
}
