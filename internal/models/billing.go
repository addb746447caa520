package models

import (
	"errors"
	"time"
)

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
	MethodOnline   PaymentMethod = "online"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer, MethodOnline:
		return true
	}
	return false
}

// Monetary amounts are minor currency units (kobo/cents).
type Invoice struct {
	ID             string        `json:"id"`
	BookingID      string        `json:"booking_id"`
	InvoiceNumber  string        `json:"invoice_number"`
	Subtotal       int64         `json:"subtotal"`
	DiscountAmount int64         `json:"discount_amount"`
	Tax            int64         `json:"tax"`
	Total          int64         `json:"total"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	DueDate        *time.Time    `json:"due_date,omitempty"`
	PaymentDate    *time.Time    `json:"payment_date,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	IsDeleted      bool          `json:"is_deleted"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (i *Invoice) Validate() error {
	if i.BookingID == "" {
		return errors.New("booking is required")
	}
	if i.Subtotal < 0 || i.DiscountAmount < 0 || i.Tax < 0 {
		return errors.New("amounts must be >= 0")
	}
	if i.Total == 0 {
		i.Total = i.Subtotal - i.DiscountAmount + i.Tax
	}
	if i.Total < 0 {
		return errors.New("total must be >= 0")
	}
	if i.PaymentStatus == "" {
		i.PaymentStatus = PaymentPending
	}
	return nil
}

type Payment struct {
	ID            string        `json:"id"`
	InvoiceID     string        `json:"invoice_id"`
	Amount        int64         `json:"amount"`
	Method        PaymentMethod `json:"method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	TransactionID *string       `json:"transaction_id,omitempty"`
	ReceiptNumber string        `json:"receipt_number,omitempty"`
	Reference     string        `json:"reference,omitempty"`
	RefundDate    *time.Time    `json:"refund_date,omitempty"`
	RefundAmount  int64         `json:"refund_amount"`
	Notes         string        `json:"notes,omitempty"`
	IsDeleted     bool          `json:"is_deleted"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (p *Payment) Validate() error {
	if p.InvoiceID == "" {
		return errors.New("invoice is required")
	}
	if p.Amount <= 0 {
		return errors.New("amount must be > 0")
	}
	if !p.Method.Valid() {
		return errors.New("invalid payment method")
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = PaymentPending
	}
	return nil
}

// DashboardMetrics is the read-only aggregate served to the admin panel.
type DashboardMetrics struct {
	TotalHotels   int64 `json:"total_hotels"`
	TotalFloors   int64 `json:"total_floors"`
	TotalRooms    int64 `json:"total_rooms"`
	TotalGuests   int64 `json:"total_guests"`
	TotalBookings int64 `json:"total_bookings"`
	TotalInvoices int64 `json:"total_invoices"`
	TotalPayments int64 `json:"total_payments"`

	RoomsAvailable   int64 `json:"rooms_available"`
	RoomsOccupied    int64 `json:"rooms_occupied"`
	RoomsDirty       int64 `json:"rooms_dirty"`
	RoomsMaintenance int64 `json:"rooms_maintenance"`

	BookingsReserved   int64 `json:"bookings_reserved"`
	BookingsCheckedIn  int64 `json:"bookings_checked_in"`
	BookingsCheckedOut int64 `json:"bookings_checked_out"`
	BookingsCancelled  int64 `json:"bookings_cancelled"`

	PaymentsPending   int64 `json:"payments_pending"`
	PaymentsCompleted int64 `json:"payments_completed"`
	PaymentsFailed    int64 `json:"payments_failed"`
	PaymentsRefunded  int64 `json:"payments_refunded"`

	RevenueCollected int64 `json:"revenue_collected"`
	RevenueOutstanding int64 `json:"revenue_outstanding"`
}
