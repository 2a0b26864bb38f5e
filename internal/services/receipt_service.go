package services

import (
	"bytes"
	"context"
	"fmt"

	"recovery-backend/internal/models"
	"recovery-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReceiptService renders payment receipts as PDF
type ReceiptService struct {
	Payments PaymentStore
}

func NewReceiptService(payments PaymentStore) *ReceiptService {
	return &ReceiptService{Payments: payments}
}

// GenerateReceipt builds a one-page PDF receipt for a payment
func (s *ReceiptService) GenerateReceipt(ctx context.Context, paymentID int) ([]byte, error) {
	p, err := s.Payments.Get(ctx, paymentID)
	if err != nil {
		return nil, storeErr(err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Loan Recovery Services - Payment Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Receipt Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Payment Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Receipt No: PAY-%06d", p.ID), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", p.Date.Format("02-Jan-2006")), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Customer: %s", p.Customer), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Case: %s", p.CaseNumber), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Method: %s", p.Method), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Status: %s", p.Status), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Amount - highlight by status
	if p.Status == models.PaymentCompleted {
		pdf.SetFillColor(200, 255, 200)
	} else {
		pdf.SetFillColor(255, 230, 200)
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, fmt.Sprintf("Amount: Rs. %.2f", p.Amount), "1", 1, "C", true, 0, "")

	if p.CreatedBy != "" {
		pdf.Ln(5)
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(190, 6, fmt.Sprintf("Recorded by: %s", p.CreatedBy), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate receipt: %w", err)
	}
	return buf.Bytes(), nil
}
