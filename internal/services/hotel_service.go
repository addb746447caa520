package services

import (
	"context"
	"log/slog"

	"github.com/hostelhub/hostel-backend/internal/audit"
	"github.com/hostelhub/hostel-backend/internal/logger"
	"github.com/hostelhub/hostel-backend/internal/models"
	repo "github.com/hostelhub/hostel-backend/internal/repository"
)

type HotelService struct {
	hotels repo.Hotels
	rec    *audit.Recorder
	log    *slog.Logger
}

func NewHotelService(hotels repo.Hotels, rec *audit.Recorder, log *slog.Logger) *HotelService {
	return &HotelService{hotels: hotels, rec: rec, log: log}
}

func (s *HotelService) Create(ctx context.Context, h models.Hotel, performedBy *string) (models.Hotel, error) {
	op := logger.StartOp(s.log, "hotel.create", "name", h.Name)

	if err := h.Validate(); err != nil {
		op.Fail("hotel create rejected", err)
		s.rec.LogFailure(models.ActionCreate, "Hotel", performedBy, nil,
			"Hotel creation failed - "+err.Error(), nil)
		return models.Hotel{}, err
	}
	created, err := s.hotels.Create(ctx, h)
	if err != nil {
		op.Fail("hotel create failed", err)
		s.rec.LogFailure(models.ActionCreate, "Hotel", performedBy, nil,
			"Hotel creation failed - "+err.Error(), map[string]any{"name": h.Name})
		return models.Hotel{}, err
	}

	op.Success("hotel created")
	s.rec.LogCreate("Hotel", nil, performedBy,
		"Hotel "+created.Name+" created", map[string]any{"hotel_id": created.ID})
	return created, nil
}

type UpdateHotelInput struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
	PostalCode   *string `json:"postal_code"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
}

func (s *HotelService) Update(ctx context.Context, id string, in UpdateHotelInput, performedBy *string) (models.Hotel, error) {
	op := logger.StartOp(s.log, "hotel.update", "hotel_id", id)

	h, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		op.Fail("hotel update failed", err)
		s.rec.LogFailure(models.ActionUpdate, "Hotel", performedBy, nil,
			"Hotel update failed - Hotel not found", map[string]any{"hotel_id": id})
		return models.Hotel{}, err
	}

	oldVals := map[string]any{}
	newVals := map[string]any{}
	apply := func(field string, dst *string, src *string) {
		if src != nil && *src != *dst {
			oldVals[field], newVals[field] = *dst, *src
			*dst = *src
		}
	}
	apply("name", &h.Name, in.Name)
	apply("address", &h.Address, in.Address)
	apply("city", &h.City, in.City)
	apply("country", &h.Country, in.Country)
	apply("postal_code", &h.PostalCode, in.PostalCode)
	apply("phone", &h.Phone, in.Phone)
	apply("email", &h.Email, in.Email)
	apply("check_in_time", &h.CheckInTime, in.CheckInTime)
	apply("check_out_time", &h.CheckOutTime, in.CheckOutTime)

	if err := h.Validate(); err != nil {
		op.Fail("hotel update rejected", err)
		s.rec.LogFailure(models.ActionUpdate, "Hotel", performedBy, nil,
			"Hotel update failed - Validation error", map[string]any{"hotel_id": id, "error": err.Error()})
		return models.Hotel{}, err
	}
	if len(oldVals) == 0 {
		op.Success("hotel update: no changes")
		return h, nil
	}

	if err := s.hotels.Update(ctx, h); err != nil {
		op.Fail("hotel update failed", err)
		s.rec.LogFailure(models.ActionUpdate, "Hotel", performedBy, nil,
			"Hotel update failed - "+err.Error(), map[string]any{"hotel_id": id})
		return models.Hotel{}, err
	}

	op.Success("hotel updated")
	s.rec.LogUpdate("Hotel", nil, performedBy,
		"Hotel "+h.Name+" updated", oldVals, newVals, map[string]any{"hotel_id": h.ID})
	return h, nil
}

func (s *HotelService) ToggleDelete(ctx context.Context, id string, performedBy *string) (models.Hotel, error) {
	h, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		s.rec.LogFailure(models.ActionToggleDelete, "Hotel", performedBy, nil,
			"Failed to toggle delete - Hotel not found", map[string]any{"hotel_id": id})
		return models.Hotel{}, err
	}
	h.IsDeleted = !h.IsDeleted
	if err := s.hotels.SetDeleted(ctx, h.ID, h.IsDeleted); err != nil {
		return models.Hotel{}, err
	}
	s.rec.Submit(models.AuditEvent{
		Action:      models.ActionToggleDelete,
		Entity:      "Hotel",
		PerformedBy: performedBy,
		NewValues:   map[string]any{"is_deleted": h.IsDeleted},
		Metadata:    map[string]any{"hotel_id": h.ID},
	})
	return h, nil
}

func (s *HotelService) Get(ctx context.Context, id string) (models.Hotel, error) {
	h, err := s.hotels.GetByID(ctx, id)
	return h, notFound(err)
}

func (s *HotelService) List(ctx context.Context) ([]models.Hotel, error) {
	return s.hotels.List(ctx)
}
