package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hostelhub/hostel-backend/internal/audit"
	"github.com/hostelhub/hostel-backend/internal/models"
	repo "github.com/hostelhub/hostel-backend/internal/repository"
)

type InvoiceService struct {
	invoices repo.Invoices
	bookings repo.Bookings
	rec      *audit.Recorder
	dash     *DashboardService
	log      *slog.Logger
}

// NewInvoiceService takes dash so billing writes drop the cached dashboard
// snapshot; nil skips invalidation.
func NewInvoiceService(invoices repo.Invoices, bookings repo.Bookings, rec *audit.Recorder, dash *DashboardService, log *slog.Logger) *InvoiceService {
	return &InvoiceService{invoices: invoices, bookings: bookings, rec: rec, dash: dash, log: log}
}

func (s *InvoiceService) invalidateDashboard(ctx context.Context) {
	if s.dash != nil {
		s.dash.Invalidate(ctx)
	}
}

func newInvoiceNumber() string {
	return fmt.Sprintf("INV-%s-%d", time.Now().Format("20060102"), time.Now().UnixNano()%100000)
}

func (s *InvoiceService) Create(ctx context.Context, inv models.Invoice, performedBy *string) (models.Invoice, error) {
	if err := inv.Validate(); err != nil {
		s.rec.LogFailure(models.ActionCreate, "Invoice", performedBy, nil,
			"Invoice creation failed - "+err.Error(), nil)
		return models.Invoice{}, err
	}

	if _, err := s.bookings.GetByID(ctx, inv.BookingID); err != nil {
		err = notFound(err)
		s.rec.LogFailure(models.ActionCreate, "Invoice", performedBy, nil,
			"Invoice creation failed - Booking not found", map[string]any{"booking_id": inv.BookingID})
		return models.Invoice{}, err
	}

	inv.InvoiceNumber = newInvoiceNumber()
	created, err := s.invoices.Create(ctx, inv)
	if err != nil {
		s.rec.LogFailure(models.ActionCreate, "Invoice", performedBy, nil,
			"Invoice creation failed - "+err.Error(), map[string]any{"booking_id": inv.BookingID})
		return models.Invoice{}, err
	}

	s.invalidateDashboard(ctx)
	s.rec.LogCreate("Invoice", nil, performedBy,
		"Invoice "+created.InvoiceNumber+" created",
		map[string]any{"invoice_id": created.ID, "booking_id": created.BookingID, "total": created.Total})
	return created, nil
}

func (s *InvoiceService) SetPaymentStatus(ctx context.Context, id string, status models.PaymentStatus, performedBy *string) (models.Invoice, error) {
	if !status.Valid() {
		return models.Invoice{}, ErrInvalidTransition
	}
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		s.rec.LogFailure(models.ActionUpdate, "Invoice", performedBy, nil,
			"Invoice update failed - Invoice not found", map[string]any{"invoice_id": id})
		return models.Invoice{}, err
	}
	if inv.PaymentStatus == status {
		return inv, nil
	}

	if err := s.invoices.SetPaymentStatus(ctx, inv.ID, status); err != nil {
		s.rec.LogFailure(models.ActionUpdate, "Invoice", performedBy, nil,
			"Invoice update failed - "+err.Error(), map[string]any{"invoice_id": id})
		return models.Invoice{}, err
	}
	// Keep the booking's rollup in sync with its invoice.
	if err := s.bookings.SetPaymentStatus(ctx, inv.BookingID, status); err != nil {
		s.log.Error("booking payment status sync failed", "booking_id", inv.BookingID, "err", err)
	}

	s.invalidateDashboard(ctx)
	s.rec.LogUpdate("Invoice", nil, performedBy,
		"Invoice "+inv.InvoiceNumber+" payment status changed",
		map[string]any{"payment_status": inv.PaymentStatus},
		map[string]any{"payment_status": status},
		map[string]any{"invoice_id": inv.ID})
	inv.PaymentStatus = status
	return inv, nil
}

func (s *InvoiceService) Get(ctx context.Context, id string) (models.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	return inv, notFound(err)
}

func (s *InvoiceService) GetByBooking(ctx context.Context, bookingID string) (models.Invoice, error) {
	inv, err := s.invoices.GetByBooking(ctx, bookingID)
	return inv, notFound(err)
}
