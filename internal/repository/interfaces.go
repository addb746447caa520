package repository

import (
	"context"

	"github.com/hostelhub/hostel-backend/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	Update(ctx context.Context, u models.User) error
	SetPasswordHash(ctx context.Context, id, hash string) error
	SetDeleted(ctx context.Context, id string, deleted bool) error
	EmailExists(ctx context.Context, email string) (bool, error)

	// NextIDNumber returns the next free staff id for a role (e.g. ADM-ID-003).
	NextIDNumber(ctx context.Context, role string) (string, error)
}

type Hotels interface {
	Create(ctx context.Context, h models.Hotel) (models.Hotel, error)
	GetByID(ctx context.Context, id string) (models.Hotel, error)
	List(ctx context.Context) ([]models.Hotel, error)
	Update(ctx context.Context, h models.Hotel) error
	SetDeleted(ctx context.Context, id string, deleted bool) error
}

type Floors interface {
	Create(ctx context.Context, f models.Floor) (models.Floor, error)
	GetByID(ctx context.Context, id string) (models.Floor, error)
	List(ctx context.Context) ([]models.Floor, error)
	Update(ctx context.Context, f models.Floor) error
	SetDeleted(ctx context.Context, id string, deleted bool) error
}

type RoomTypes interface {
	Create(ctx context.Context, rt models.RoomType) (models.RoomType, error)
	GetByID(ctx context.Context, id string) (models.RoomType, error)
	List(ctx context.Context) ([]models.RoomType, error)
	Update(ctx context.Context, rt models.RoomType) error
	SetDeleted(ctx context.Context, id string, deleted bool) error
}

type Rooms interface {
	Create(ctx context.Context, r models.Room) (models.Room, error)
	GetByID(ctx context.Context, id string) (models.Room, error)
	List(ctx context.Context) ([]models.Room, error)
	Update(ctx context.Context, r models.Room) error
	UpdateStatus(ctx context.Context, id string, status models.RoomStatus) error
	SetDeleted(ctx context.Context, id string, deleted bool) error
}

type Guests interface {
	Create(ctx context.Context, g models.GuestProfile) (models.GuestProfile, error)
	GetByID(ctx context.Context, id string) (models.GuestProfile, error)
	List(ctx context.Context, limit, offset int) ([]models.GuestProfile, error)
	Update(ctx context.Context, g models.GuestProfile) error
	SetDeleted(ctx context.Context, id string, deleted bool) error
}

// Bookings pairs every booking write with the room-status write it implies.
// Both land in one transaction or neither does; a half-applied pair would let
// the availability check double-book the room.
type Bookings interface {
	Create(ctx context.Context, b models.Booking, roomStatus models.RoomStatus) (models.Booking, error)
	GetByID(ctx context.Context, id string) (models.Booking, error)
	GetByCode(ctx context.Context, code string) (models.Booking, error)
	ListByGuest(ctx context.Context, guestID string, limit, offset int) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus, roomID string, roomStatus models.RoomStatus) error
	SetPaymentStatus(ctx context.Context, id string, status models.PaymentStatus) error
	Cancel(ctx context.Context, id, reason, roomID string, roomStatus models.RoomStatus) error
}

type Invoices interface {
	Create(ctx context.Context, i models.Invoice) (models.Invoice, error)
	GetByID(ctx context.Context, id string) (models.Invoice, error)
	GetByBooking(ctx context.Context, bookingID string) (models.Invoice, error)
	SetPaymentStatus(ctx context.Context, id string, status models.PaymentStatus) error
}

type Payments interface {
	Create(ctx context.Context, p models.Payment) (models.Payment, error)
	GetByID(ctx context.Context, id string) (models.Payment, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]models.Payment, error)
	SetStatus(ctx context.Context, id string, status models.PaymentStatus) error
}

// AuditLogs is append-only: no update or delete exists on purpose.
type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
	List(ctx context.Context, limit, offset int) ([]models.AuditLog, error)
}

type Dashboard interface {
	Metrics(ctx context.Context) (models.DashboardMetrics, error)
}
