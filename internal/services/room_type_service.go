package services

import (
	"context"
	"log/slog"
	"slices"

	"github.com/hostelhub/hostel-backend/internal/audit"
	"github.com/hostelhub/hostel-backend/internal/models"
	repo "github.com/hostelhub/hostel-backend/internal/repository"
)

type RoomTypeService struct {
	roomTypes repo.RoomTypes
	rec       *audit.Recorder
	log       *slog.Logger
}

func NewRoomTypeService(roomTypes repo.RoomTypes, rec *audit.Recorder, log *slog.Logger) *RoomTypeService {
	return &RoomTypeService{roomTypes: roomTypes, rec: rec, log: log}
}

func (s *RoomTypeService) Create(ctx context.Context, rt models.RoomType, performedBy *string) (models.RoomType, error) {
	if err := rt.Validate(); err != nil {
		s.rec.LogFailure(models.ActionCreate, "RoomType", performedBy, nil,
			"Room type creation failed - "+err.Error(), nil)
		return models.RoomType{}, err
	}
	created, err := s.roomTypes.Create(ctx, rt)
	if err != nil {
		s.rec.LogFailure(models.ActionCreate, "RoomType", performedBy, nil,
			"Room type creation failed - "+err.Error(), map[string]any{"name": rt.Name})
		return models.RoomType{}, err
	}
	s.rec.LogCreate("RoomType", nil, performedBy,
		"Room type "+created.Name+" created", map[string]any{"room_type_id": created.ID})
	return created, nil
}

type UpdateRoomTypeInput struct {
	Name         *string   `json:"name"`
	BasePrice    *int64    `json:"base_price"`
	MaxOccupancy *int      `json:"max_occupancy"`
	Description  *string   `json:"description"`
	Amenities    *[]string `json:"amenities"`
}

func (s *RoomTypeService) Update(ctx context.Context, id string, in UpdateRoomTypeInput, performedBy *string) (models.RoomType, error) {
	rt, err := s.roomTypes.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		s.rec.LogFailure(models.ActionUpdate, "RoomType", performedBy, nil,
			"Room type update failed - Room type not found", map[string]any{"room_type_id": id})
		return models.RoomType{}, err
	}

	oldVals := map[string]any{}
	newVals := map[string]any{}
	if in.Name != nil && *in.Name != rt.Name {
		oldVals["name"], newVals["name"] = rt.Name, *in.Name
		rt.Name = *in.Name
	}
	if in.BasePrice != nil && *in.BasePrice != rt.BasePrice {
		oldVals["base_price"], newVals["base_price"] = rt.BasePrice, *in.BasePrice
		rt.BasePrice = *in.BasePrice
	}
	if in.MaxOccupancy != nil && *in.MaxOccupancy != rt.MaxOccupancy {
		oldVals["max_occupancy"], newVals["max_occupancy"] = rt.MaxOccupancy, *in.MaxOccupancy
		rt.MaxOccupancy = *in.MaxOccupancy
	}
	if in.Description != nil && *in.Description != rt.Description {
		oldVals["description"], newVals["description"] = rt.Description, *in.Description
		rt.Description = *in.Description
	}
	if in.Amenities != nil && !slices.Equal(*in.Amenities, rt.Amenities) {
		oldVals["amenities"], newVals["amenities"] = rt.Amenities, *in.Amenities
		rt.Amenities = *in.Amenities
	}
	if err := rt.Validate(); err != nil {
		return models.RoomType{}, err
	}
	if len(oldVals) == 0 {
		return rt, nil
	}

	if err := s.roomTypes.Update(ctx, rt); err != nil {
		s.rec.LogFailure(models.ActionUpdate, "RoomType", performedBy, nil,
			"Room type update failed - "+err.Error(), map[string]any{"room_type_id": id})
		return models.RoomType{}, err
	}
	s.rec.LogUpdate("RoomType", nil, performedBy,
		"Room type "+rt.Name+" updated", oldVals, newVals,
		map[string]any{"room_type_id": rt.ID})
	return rt, nil
}

func (s *RoomTypeService) ToggleDelete(ctx context.Context, id string, performedBy *string) (models.RoomType, error) {
	rt, err := s.roomTypes.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		s.rec.LogFailure(models.ActionToggleDelete, "RoomType", performedBy, nil,
			"Failed to toggle delete - Room type not found", map[string]any{"room_type_id": id})
		return models.RoomType{}, err
	}
	rt.IsDeleted = !rt.IsDeleted
	if err := s.roomTypes.SetDeleted(ctx, rt.ID, rt.IsDeleted); err != nil {
		return models.RoomType{}, err
	}
	s.rec.Submit(models.AuditEvent{
		Action:      models.ActionToggleDelete,
		Entity:      "RoomType",
		PerformedBy: performedBy,
		NewValues:   map[string]any{"is_deleted": rt.IsDeleted},
		Metadata:    map[string]any{"room_type_id": rt.ID},
	})
	return rt, nil
}

func (s *RoomTypeService) Get(ctx context.Context, id string) (models.RoomType, error) {
	rt, err := s.roomTypes.GetByID(ctx, id)
	return rt, notFound(err)
}

func (s *RoomTypeService) List(ctx context.Context) ([]models.RoomType, error) {
	return s.roomTypes.List(ctx)
}
