package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hostelhub/hostel-backend/internal/audit"
	"github.com/hostelhub/hostel-backend/internal/models"
	repo "github.com/hostelhub/hostel-backend/internal/repository"
)

type FloorService struct {
	floors repo.Floors
	rec    *audit.Recorder
	log    *slog.Logger
}

func NewFloorService(floors repo.Floors, rec *audit.Recorder, log *slog.Logger) *FloorService {
	return &FloorService{floors: floors, rec: rec, log: log}
}

func (s *FloorService) Create(ctx context.Context, f models.Floor, performedBy *string) (models.Floor, error) {
	if err := f.Validate(); err != nil {
		s.rec.LogFailure(models.ActionCreate, "Floor", performedBy, nil,
			"Floor creation failed - "+err.Error(), nil)
		return models.Floor{}, err
	}
	created, err := s.floors.Create(ctx, f)
	if err != nil {
		s.rec.LogFailure(models.ActionCreate, "Floor", performedBy, nil,
			"Floor creation failed - "+err.Error(), map[string]any{"number": f.Number})
		return models.Floor{}, err
	}
	s.rec.LogCreate("Floor", nil, performedBy,
		fmt.Sprintf("Floor %d created", created.Number), map[string]any{"floor_id": created.ID})
	return created, nil
}

type UpdateFloorInput struct {
	Number      *int    `json:"number"`
	Description *string `json:"description"`
}

func (s *FloorService) Update(ctx context.Context, id string, in UpdateFloorInput, performedBy *string) (models.Floor, error) {
	f, err := s.floors.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		s.rec.LogFailure(models.ActionUpdate, "Floor", performedBy, nil,
			"Floor update failed - Floor not found", map[string]any{"floor_id": id})
		return models.Floor{}, err
	}

	oldVals := map[string]any{}
	newVals := map[string]any{}
	if in.Number != nil && *in.Number != f.Number {
		oldVals["number"], newVals["number"] = f.Number, *in.Number
		f.Number = *in.Number
	}
	if in.Description != nil && *in.Description != f.Description {
		oldVals["description"], newVals["description"] = f.Description, *in.Description
		f.Description = *in.Description
	}
	if err := f.Validate(); err != nil {
		return models.Floor{}, err
	}
	if len(oldVals) == 0 {
		return f, nil
	}

	if err := s.floors.Update(ctx, f); err != nil {
		s.rec.LogFailure(models.ActionUpdate, "Floor", performedBy, nil,
			"Floor update failed - "+err.Error(), map[string]any{"floor_id": id})
		return models.Floor{}, err
	}
	s.rec.LogUpdate("Floor", nil, performedBy,
		fmt.Sprintf("Floor %d updated", f.Number), oldVals, newVals,
		map[string]any{"floor_id": f.ID})
	return f, nil
}

func (s *FloorService) ToggleDelete(ctx context.Context, id string, performedBy *string) (models.Floor, error) {
	f, err := s.floors.GetByID(ctx, id)
	if err != nil {
		err = notFound(err)
		s.rec.LogFailure(models.ActionToggleDelete, "Floor", performedBy, nil,
			"Failed to toggle delete - Floor not found", map[string]any{"floor_id": id})
		return models.Floor{}, err
	}
	f.IsDeleted = !f.IsDeleted
	if err := s.floors.SetDeleted(ctx, f.ID, f.IsDeleted); err != nil {
		return models.Floor{}, err
	}
	s.rec.Submit(models.AuditEvent{
		Action:      models.ActionToggleDelete,
		Entity:      "Floor",
		PerformedBy: performedBy,
		NewValues:   map[string]any{"is_deleted": f.IsDeleted},
		Metadata:    map[string]any{"floor_id": f.ID},
	})
	return f, nil
}

func (s *FloorService) Get(ctx context.Context, id string) (models.Floor, error) {
	f, err := s.floors.GetByID(ctx, id)
	return f, notFound(err)
}

func (s *FloorService) List(ctx context.Context) ([]models.Floor, error) {
	return s.floors.List(ctx)
}
