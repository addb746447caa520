package services

import (
	"context"
	"log/slog"

	"github.com/hostelhub/hostel-backend/internal/audit"
	"github.com/hostelhub/hostel-backend/internal/models"
	repo "github.com/hostelhub/hostel-backend/internal/repository"
)

type PaymentService struct {
	payments repo.Payments
	invoices repo.Invoices
	rec      *audit.Recorder
	dash     *DashboardService
	log      *slog.Logger
}

// NewPaymentService takes dash so revenue-changing writes drop the cached
// dashboard snapshot; nil skips invalidation.
func NewPaymentService(payments repo.Payments, invoices repo.Invoices, rec *audit.Recorder, dash *DashboardService, log *slog.Logger) *PaymentService {
	return &PaymentService{payments: payments, invoices: invoices, rec: rec, dash: dash, log: log}
}

func (s *PaymentService) invalidateDashboard(ctx context.Context) {
	if s.dash != nil {
		s.dash.Invalidate(ctx)
	}
}

func (s *PaymentService) Create(ctx context.Context, p models.Payment, performedBy *string) (models.Payment, error) {
	if err := p.Validate(); err != nil {
		s.rec.LogFailure(models.ActionCreate, "Payment", performedBy, nil,
			"Payment creation failed - "+err.Error(), nil)
		return models.Payment{}, err
	}

	inv, err := s.invoices.GetByID(ctx, p.InvoiceID)
	if err != nil {
		err = notFound(err)
		s.rec.LogFailure(models.ActionCreate, "Payment", performedBy, nil,
			"Payment creation failed - Invoice not found", map[string]any{"invoice_id": p.InvoiceID})
		return models.Payment{}, err
	}

	created, err := s.payments.Create(ctx, p)
	if err != nil {
		s.rec.LogFailure(models.ActionCreate, "Payment", performedBy, nil,
			"Payment creation failed - "+err.Error(), map[string]any{"invoice_id": p.InvoiceID})
		return models.Payment{}, err
	}

	s.invalidateDashboard(ctx)
	s.rec.LogCreate("Payment", nil, performedBy,
		"Payment recorded for invoice "+inv.InvoiceNumber,
		map[string]any{"payment_id": created.ID, "invoice_id": inv.ID, "amount": created.Amount, "method": created.Method})
	return created, nil
}

func (s *PaymentService) SetStatus(ctx context.Context, id string, status models.PaymentStatus, performedBy *string) (models.Payment, error) {
	if !status.Valid() {
		return models.Payment{}, ErrInvalidTransition
	}
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		s.rec.LogFailure(models.ActionUpdate, "Payment", performedBy, nil,
			"Payment update failed - Payment not found", map[string]any{"payment_id": id})
		return models.Payment{}, err
	}
	if p.PaymentStatus == status {
		return p, nil
	}

	if err := s.payments.SetStatus(ctx, p.ID, status); err != nil {
		s.rec.LogFailure(models.ActionUpdate, "Payment", performedBy, nil,
			"Payment update failed - "+err.Error(), map[string]any{"payment_id": id})
		return models.Payment{}, err
	}

	s.invalidateDashboard(ctx)
	s.rec.LogUpdate("Payment", nil, performedBy,
		"Payment status changed",
		map[string]any{"payment_status": p.PaymentStatus},
		map[string]any{"payment_status": status},
		map[string]any{"payment_id": p.ID, "invoice_id": p.InvoiceID})
	p.PaymentStatus = status
	return p, nil
}

func (s *PaymentService) Get(ctx context.Context, id string) (models.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	return p, notFound(err)
}

func (s *PaymentService) ListByInvoice(ctx context.Context, invoiceID string) ([]models.Payment, error) {
	return s.payments.ListByInvoice(ctx, invoiceID)
}
