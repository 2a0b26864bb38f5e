package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"recovery-backend/internal/middleware"
	"recovery-backend/internal/models"
	"recovery-backend/internal/services"

	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	Service  *services.PaymentService
	Receipts *services.ReceiptService
	Razorpay *services.RazorpayService
}

func NewPaymentHandler(s *services.PaymentService, receipts *services.ReceiptService, rzp *services.RazorpayService) *PaymentHandler {
	return &PaymentHandler{Service: s, Receipts: receipts, Razorpay: rzp}
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	createdBy, _ := middleware.GetEmailFromContext(r.Context())
	p, err := h.Service.Create(r.Context(), &req, createdBy)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Service.List(r.Context(), r.URL.Query().Get("caseNumber"))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	p, err := h.Service.Get(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PaymentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.Service.Update(r.Context(), id, &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "payment deleted"})
}

// DownloadReceipt streams the payment receipt PDF.
func (h *PaymentHandler) DownloadReceipt(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	pdf, err := h.Receipts.GenerateReceipt(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-PAY-%06d.pdf", id))
	w.Write(pdf)
}

// CreateOnlineOrder raises a Razorpay order for online collection.
func (h *PaymentHandler) CreateOnlineOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.Razorpay.CreateOrder(r.Context(), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// RazorpayWebhook verifies the signature before touching any state.
// Razorpay retries on non-2xx, so processing failures return 500.
func (h *PaymentHandler) RazorpayWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "Cannot read body", http.StatusBadRequest)
		return
	}

	if !h.Razorpay.VerifyWebhookSignature(body, r.Header.Get("X-Razorpay-Signature")) {
		http.Error(w, "Invalid signature", http.StatusUnauthorized)
		return
	}

	if err := h.Razorpay.HandleWebhook(r.Context(), body); err != nil {
		http.Error(w, "Webhook processing failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListOnlineTransactions returns the razorpay order history.
func (h *PaymentHandler) ListOnlineTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Razorpay.ListTransactions(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}
