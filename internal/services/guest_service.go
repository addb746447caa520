package services

import (
	"context"
	"log/slog"

	"github.com/hostelhub/hostel-backend/internal/audit"
	"github.com/hostelhub/hostel-backend/internal/models"
	repo "github.com/hostelhub/hostel-backend/internal/repository"
)

type GuestService struct {
	guests repo.Guests
	rec    *audit.Recorder
	log    *slog.Logger
}

func NewGuestService(guests repo.Guests, rec *audit.Recorder, log *slog.Logger) *GuestService {
	return &GuestService{guests: guests, rec: rec, log: log}
}

func (s *GuestService) Create(ctx context.Context, g models.GuestProfile, performedBy *string) (models.GuestProfile, error) {
	if err := g.Validate(); err != nil {
		s.rec.LogFailure(models.ActionCreate, "GuestProfile", performedBy, nil,
			"Guest creation failed - "+err.Error(), nil)
		return models.GuestProfile{}, err
	}
	created, err := s.guests.Create(ctx, g)
	if err != nil {
		s.rec.LogFailure(models.ActionCreate, "GuestProfile", performedBy, nil,
			"Guest creation failed - "+err.Error(), map[string]any{"name": g.Name})
		return models.GuestProfile{}, err
	}
	s.rec.LogCreate("GuestProfile", nil, performedBy,
		"Guest "+created.Name+" created", map[string]any{"guest_id": created.ID})
	return created, nil
}

type UpdateGuestInput struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	PostalCode  *string `json:"postal_code"`
	Nationality *string `json:"nationality"`
	Notes       *string `json:"notes"`
}

func (s *GuestService) Update(ctx context.Context, id string, in UpdateGuestInput, performedBy *string) (models.GuestProfile, error) {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		s.rec.LogFailure(models.ActionUpdate, "GuestProfile", performedBy, nil,
			"Guest update failed - Guest not found", map[string]any{"guest_id": id})
		return models.GuestProfile{}, err
	}

	oldVals := map[string]any{}
	newVals := map[string]any{}
	apply := func(field string, dst *string, src *string) {
		if src != nil && *src != *dst {
			oldVals[field], newVals[field] = *dst, *src
			*dst = *src
		}
	}
	apply("name", &g.Name, in.Name)
	apply("email", &g.Email, in.Email)
	apply("phone", &g.Phone, in.Phone)
	apply("address", &g.Address, in.Address)
	apply("city", &g.City, in.City)
	apply("country", &g.Country, in.Country)
	apply("postal_code", &g.PostalCode, in.PostalCode)
	apply("nationality", &g.Nationality, in.Nationality)
	apply("notes", &g.Notes, in.Notes)

	if err := g.Validate(); err != nil {
		return models.GuestProfile{}, err
	}
	if len(oldVals) == 0 {
		return g, nil
	}

	if err := s.guests.Update(ctx, g); err != nil {
		s.rec.LogFailure(models.ActionUpdate, "GuestProfile", performedBy, nil,
			"Guest update failed - "+err.Error(), map[string]any{"guest_id": id})
		return models.GuestProfile{}, err
	}
	s.rec.LogUpdate("GuestProfile", nil, performedBy,
		"Guest "+g.Name+" updated", oldVals, newVals, map[string]any{"guest_id": g.ID})
	return g, nil
}

func (s *GuestService) ToggleDelete(ctx context.Context, id string, performedBy *string) (models.GuestProfile, error) {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		s.rec.LogFailure(models.ActionToggleDelete, "GuestProfile", performedBy, nil,
			"Failed to toggle delete - Guest not found", map[string]any{"guest_id": id})
		return models.GuestProfile{}, err
	}
	g.IsDeleted = !g.IsDeleted
	if err := s.guests.SetDeleted(ctx, g.ID, g.IsDeleted); err != nil {
		return models.GuestProfile{}, err
	}
	s.rec.Submit(models.AuditEvent{
		Action:      models.ActionToggleDelete,
		Entity:      "GuestProfile",
		PerformedBy: performedBy,
		NewValues:   map[string]any{"is_deleted": g.IsDeleted},
		Metadata:    map[string]any{"guest_id": g.ID},
	})
	return g, nil
}

func (s *GuestService) Get(ctx context.Context, id string) (models.GuestProfile, error) {
	g, err := s.guests.GetByID(ctx, id)
	return g, notFound(err)
}

func (s *GuestService) List(ctx context.Context, limit, offset int) ([]models.GuestProfile, error) {
	return s.guests.List(ctx, limit, offset)
}
