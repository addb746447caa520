package services

import (
	"context"
	"log/slog"

	"github.com/hostelhub/hostel-backend/internal/audit"
	"github.com/hostelhub/hostel-backend/internal/models"
	repo "github.com/hostelhub/hostel-backend/internal/repository"
)

type RoomService struct {
	rooms repo.Rooms
	rec   *audit.Recorder
	log   *slog.Logger
}

func NewRoomService(rooms repo.Rooms, rec *audit.Recorder, log *slog.Logger) *RoomService {
	return &RoomService{rooms: rooms, rec: rec, log: log}
}

func (s *RoomService) Create(ctx context.Context, rm models.Room, performedBy *string) (models.Room, error) {
	if err := rm.Validate(); err != nil {
		s.rec.LogFailure(models.ActionCreate, "Room", performedBy, nil,
			"Room creation failed - "+err.Error(), nil)
		return models.Room{}, err
	}
	created, err := s.rooms.Create(ctx, rm)
	if err != nil {
		s.rec.LogFailure(models.ActionCreate, "Room", performedBy, nil,
			"Room creation failed - "+err.Error(), map[string]any{"number": rm.Number})
		return models.Room{}, err
	}
	s.rec.LogCreate("Room", nil, performedBy,
		"Room "+created.Number+" created", map[string]any{"room_id": created.ID})
	return created, nil
}

type UpdateRoomInput struct {
	FloorID       *string            `json:"floor_id"`
	RoomTypeID    *string            `json:"room_type_id"`
	Number        *string            `json:"number"`
	Status        *models.RoomStatus `json:"status"`
	PriceOverride *int64             `json:"price_override"`
	Notes         *string            `json:"notes"`
}

func (s *RoomService) Update(ctx context.Context, id string, in UpdateRoomInput, performedBy *string) (models.Room, error) {
	rm, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		s.rec.LogFailure(models.ActionUpdate, "Room", performedBy, nil,
			"Room update failed - Room not found", map[string]any{"room_id": id})
		return models.Room{}, err
	}

	oldVals := map[string]any{}
	newVals := map[string]any{}
	if in.FloorID != nil && (rm.FloorID == nil || *in.FloorID != *rm.FloorID) {
		var old any
		if rm.FloorID != nil {
			old = *rm.FloorID
		}
		oldVals["floor_id"], newVals["floor_id"] = old, *in.FloorID
		rm.FloorID = in.FloorID
	}
	if in.RoomTypeID != nil && *in.RoomTypeID != rm.RoomTypeID {
		oldVals["room_type_id"], newVals["room_type_id"] = rm.RoomTypeID, *in.RoomTypeID
		rm.RoomTypeID = *in.RoomTypeID
	}
	if in.Number != nil && *in.Number != rm.Number {
		oldVals["number"], newVals["number"] = rm.Number, *in.Number
		rm.Number = *in.Number
	}
	if in.Status != nil && *in.Status != rm.Status {
		oldVals["status"], newVals["status"] = rm.Status, *in.Status
		rm.Status = *in.Status
	}
	if in.PriceOverride != nil && (rm.PriceOverride == nil || *in.PriceOverride != *rm.PriceOverride) {
		var old any
		if rm.PriceOverride != nil {
			old = *rm.PriceOverride
		}
		oldVals["price_override"], newVals["price_override"] = old, *in.PriceOverride
		rm.PriceOverride = in.PriceOverride
	}
	if in.Notes != nil && *in.Notes != rm.Notes {
		oldVals["notes"], newVals["notes"] = rm.Notes, *in.Notes
		rm.Notes = *in.Notes
	}
	if err := rm.Validate(); err != nil {
		return models.Room{}, err
	}
	if len(oldVals) == 0 {
		return rm, nil
	}

	if err := s.rooms.Update(ctx, rm); err != nil {
		s.rec.LogFailure(models.ActionUpdate, "Room", performedBy, nil,
			"Room update failed - "+err.Error(), map[string]any{"room_id": id})
		return models.Room{}, err
	}
	s.rec.LogUpdate("Room", nil, performedBy,
		"Room "+rm.Number+" updated", oldVals, newVals, map[string]any{"room_id": rm.ID})
	return rm, nil
}

func (s *RoomService) ToggleDelete(ctx context.Context, id string, performedBy *string) (models.Room, error) {
	rm, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		s.rec.LogFailure(models.ActionToggleDelete, "Room", performedBy, nil,
			"Failed to toggle delete - Room not found", map[string]any{"room_id": id})
		return models.Room{}, err
	}
	rm.IsDeleted = !rm.IsDeleted
	if err := s.rooms.SetDeleted(ctx, rm.ID, rm.IsDeleted); err != nil {
		return models.Room{}, err
	}
	s.rec.Submit(models.AuditEvent{
		Action:      models.ActionToggleDelete,
		Entity:      "Room",
		PerformedBy: performedBy,
		NewValues:   map[string]any{"is_deleted": rm.IsDeleted},
		Metadata:    map[string]any{"room_id": rm.ID},
	})
	return rm, nil
}

func (s *RoomService) Get(ctx context.Context, id string) (models.Room, error) {
	rm, err := s.rooms.GetByID(ctx, id)
	return rm, notFound(err)
}

func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	return s.rooms.List(ctx)
}
