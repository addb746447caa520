package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hostelhub/hostel-backend/internal/audit"
	"github.com/hostelhub/hostel-backend/internal/logger"
	"github.com/hostelhub/hostel-backend/internal/models"
	repo "github.com/hostelhub/hostel-backend/internal/repository"
)

type BookingService struct {
	bookings repo.Bookings
	rooms    repo.Rooms
	rec      *audit.Recorder
	dash     *DashboardService
	log      *slog.Logger
}

// NewBookingService takes dash so booking mutations drop the cached
// dashboard snapshot; nil skips invalidation.
func NewBookingService(bookings repo.Bookings, rooms repo.Rooms, rec *audit.Recorder, dash *DashboardService, log *slog.Logger) *BookingService {
	return &BookingService{bookings: bookings, rooms: rooms, rec: rec, dash: dash, log: log}
}

func (s *BookingService) invalidateDashboard(ctx context.Context) {
	if s.dash != nil {
		s.dash.Invalidate(ctx)
	}
}

func newConfirmationCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *BookingService) Create(ctx context.Context, b models.Booking, performedBy *string) (models.Booking, error) {
	op := logger.StartOp(s.log, "booking.create", "guest_id", b.GuestID, "room_id", b.RoomID)

	if err := b.Validate(); err != nil {
		op.Fail("booking create rejected", err)
		s.rec.LogFailure(models.ActionCreate, "Booking", performedBy, nil,
			"Booking creation failed - "+err.Error(), nil)
		return models.Booking{}, err
	}

	room, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		err = notFound(err)
		op.Fail("booking create failed", err)
		s.rec.LogFailure(models.ActionCreate, "Booking", performedBy, nil,
			"Booking creation failed - Room not found", map[string]any{"room_id": b.RoomID})
		return models.Booking{}, err
	}
	if room.IsDeleted || room.Status != models.RoomAvailable {
		op.Fail("booking create rejected", ErrRoomUnavailable)
		s.rec.LogFailure(models.ActionCreate, "Booking", performedBy, nil,
			"Booking creation failed - Room "+room.Number+" is not available",
			map[string]any{"room_id": room.ID, "room_status": room.Status})
		return models.Booking{}, ErrRoomUnavailable
	}

	b.ConfirmationCode = newConfirmationCode()
	created, err := s.bookings.Create(ctx, b, models.RoomOccupied)
	if err != nil {
		op.Fail("booking create failed", err)
		s.rec.LogFailure(models.ActionCreate, "Booking", performedBy, nil,
			"Booking creation failed - "+err.Error(), map[string]any{"room_id": b.RoomID})
		return models.Booking{}, err
	}

	s.invalidateDashboard(ctx)
	op.Success("booking created")
	s.rec.LogCreate("Booking", nil, performedBy,
		"Booking "+created.ConfirmationCode+" created",
		map[string]any{"booking_id": created.ID, "room_id": created.RoomID, "guest_id": created.GuestID})
	return created, nil
}

func (s *BookingService) Cancel(ctx context.Context, id, reason string, performedBy *string) (models.Booking, error) {
	op := logger.StartOp(s.log, "booking.cancel", "booking_id", id)

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		op.Fail("booking cancel failed", err)
		s.rec.LogFailure(models.ActionUpdate, "Booking", performedBy, nil,
			"Booking cancellation failed - Booking not found", map[string]any{"booking_id": id})
		return models.Booking{}, err
	}

	if err := s.bookings.Cancel(ctx, b.ID, reason, b.RoomID, models.RoomAvailable); err != nil {
		op.Fail("booking cancel failed", err)
		s.rec.LogFailure(models.ActionUpdate, "Booking", performedBy, nil,
			"Booking cancellation failed - "+err.Error(), map[string]any{"booking_id": id})
		return models.Booking{}, err
	}

	s.invalidateDashboard(ctx)
	op.Success("booking cancelled")
	s.rec.LogUpdate("Booking", nil, performedBy,
		"Booking "+b.ConfirmationCode+" cancelled",
		map[string]any{"status": b.Status},
		map[string]any{"status": models.BookingCancelled, "cancellation_reason": reason},
		map[string]any{"booking_id": b.ID})
	return s.bookings.GetByID(ctx, b.ID)
}

func (s *BookingService) CheckIn(ctx context.Context, id string, performedBy *string) (models.Booking, error) {
	return s.transition(ctx, id, models.BookingReserved, models.BookingCheckedIn, models.RoomOccupied, performedBy)
}

// CheckOut marks the room dirty for housekeeping rather than available.
func (s *BookingService) CheckOut(ctx context.Context, id string, performedBy *string) (models.Booking, error) {
	return s.transition(ctx, id, models.BookingCheckedIn, models.BookingCheckedOut, models.RoomDirty, performedBy)
}

func (s *BookingService) transition(ctx context.Context, id string, from, to models.BookingStatus, roomStatus models.RoomStatus, performedBy *string) (models.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		s.rec.LogFailure(models.ActionUpdate, "Booking", performedBy, nil,
			"Booking status change failed - Booking not found", map[string]any{"booking_id": id})
		return models.Booking{}, err
	}
	if b.Status != from {
		s.rec.LogFailure(models.ActionUpdate, "Booking", performedBy, nil,
			"Booking status change failed - Booking "+b.ConfirmationCode+" is "+string(b.Status),
			map[string]any{"booking_id": b.ID, "expected": from, "actual": b.Status})
		return models.Booking{}, ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, b.ID, to, b.RoomID, roomStatus); err != nil {
		s.rec.LogFailure(models.ActionUpdate, "Booking", performedBy, nil,
			"Booking status change failed - "+err.Error(), map[string]any{"booking_id": b.ID})
		return models.Booking{}, err
	}

	s.invalidateDashboard(ctx)
	s.rec.LogUpdate("Booking", nil, performedBy,
		"Booking "+b.ConfirmationCode+" "+string(to),
		map[string]any{"status": b.Status},
		map[string]any{"status": to},
		map[string]any{"booking_id": b.ID})
	b.Status = to
	return b, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (models.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	return b, notFound(err)
}

func (s *BookingService) GetByCode(ctx context.Context, code string) (models.Booking, error) {
	b, err := s.bookings.GetByCode(ctx, code)
	return b, notFound(err)
}

func (s *BookingService) ListByGuest(ctx context.Context, guestID string, limit, offset int) ([]models.Booking, error) {
	return s.bookings.ListByGuest(ctx, guestID, limit, offset)
}
