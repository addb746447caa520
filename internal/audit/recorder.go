// Package audit records an immutable trail of every mutating command.
//
// Events are persisted asynchronously through the worker pool so that the
// request path never waits on, or fails because of, an audit write. A
// transiently failing write is retried on a fixed backoff; when the retry
// budget is exhausted the event is dropped and only a local log line remains.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/hostelhub/hostel-backend/internal/metrics"
	"github.com/hostelhub/hostel-backend/internal/models"
	repo "github.com/hostelhub/hostel-backend/internal/repository"
	"github.com/hostelhub/hostel-backend/internal/worker"
)

const (
	DefaultMaxRetries = 3
	DefaultBackoff    = 30 * time.Second

	// attemptTimeout bounds a single insert attempt; a hung store counts
	// as a failed attempt and goes back on the retry timer.
	attemptTimeout = 10 * time.Second
)

type Recorder struct {
	logs       repo.AuditLogs
	pool       *worker.Pool
	log        *slog.Logger
	maxRetries int
	backoff    time.Duration
}

func NewRecorder(logs repo.AuditLogs, pool *worker.Pool, log *slog.Logger, maxRetries int, backoff time.Duration) *Recorder {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	return &Recorder{logs: logs, pool: pool, log: log, maxRetries: maxRetries, backoff: backoff}
}

// Submit enqueues one event for durable persistence. It never returns an
// error and never panics outward: a business operation must not be able to
// fail because its audit record could not be written.
func (r *Recorder) Submit(e models.AuditEvent) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("audit submit panic", "panic", rec)
		}
	}()

	e.Normalize()
	if err := e.Validate(); err != nil {
		r.log.Error("audit event rejected", "err", err)
		metrics.AuditEventsDropped.Inc()
		return
	}
	metrics.AuditEventsTotal.WithLabelValues(string(e.Action), string(e.Status)).Inc()

	row := models.AuditLog{
		Action:      e.Action,
		Entity:      e.Entity,
		Status:      e.Status,
		PerformedBy: e.PerformedBy,
		TargetUser:  e.TargetUser,
		Description: e.Description,
		OldValues:   e.OldValues,
		NewValues:   e.NewValues,
		Metadata:    e.Metadata,
	}

	ok := r.pool.Enqueue(worker.Job{
		Name:    "audit.persist",
		Retries: r.maxRetries,
		Backoff: r.backoff,
		Run: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), attemptTimeout)
			defer cancel()
			if err := r.logs.Create(ctx, row); err != nil {
				metrics.AuditWriteFailures.Inc()
				return err
			}
			return nil
		},
		OnDrop: func(err error) {
			metrics.AuditEventsDropped.Inc()
			r.log.Error("audit event lost",
				"action", e.Action, "entity", e.Entity, "status", e.Status, "err", err)
		},
	})
	if !ok {
		metrics.AuditEventsDropped.Inc()
		r.log.Error("audit enqueue failed, event lost",
			"action", e.Action, "entity", e.Entity, "status", e.Status)
	}
}

func (r *Recorder) LogCreate(entity string, targetUser, performedBy *string, description string, metadata map[string]any) {
	r.Submit(models.AuditEvent{
		Action:      models.ActionCreate,
		Entity:      entity,
		TargetUser:  targetUser,
		PerformedBy: performedBy,
		Description: description,
		Metadata:    metadata,
	})
}

func (r *Recorder) LogRead(entity string, targetUser, performedBy *string, description string, metadata map[string]any) {
	r.Submit(models.AuditEvent{
		Action:      models.ActionRead,
		Entity:      entity,
		TargetUser:  targetUser,
		PerformedBy: performedBy,
		Description: description,
		Metadata:    metadata,
	})
}

func (r *Recorder) LogUpdate(entity string, targetUser, performedBy *string, description string, oldValues, newValues, metadata map[string]any) {
	r.Submit(models.AuditEvent{
		Action:      models.ActionUpdate,
		Entity:      entity,
		TargetUser:  targetUser,
		PerformedBy: performedBy,
		Description: description,
		OldValues:   oldValues,
		NewValues:   newValues,
		Metadata:    metadata,
	})
}

func (r *Recorder) LogDelete(entity string, targetUser, performedBy *string, description string, metadata map[string]any) {
	r.Submit(models.AuditEvent{
		Action:      models.ActionDelete,
		Entity:      entity,
		TargetUser:  targetUser,
		PerformedBy: performedBy,
		Description: description,
		Metadata:    metadata,
	})
}

// LogLogin records a successful login; the user is both actor and target.
func (r *Recorder) LogLogin(user *models.User, description string, metadata map[string]any) {
	if description == "" && user != nil {
		description = "User " + user.Email + " logged in"
	}
	var id *string
	if user != nil {
		id = &user.ID
	}
	r.Submit(models.AuditEvent{
		Action:      models.ActionLogin,
		Entity:      "User",
		PerformedBy: id,
		TargetUser:  id,
		Description: description,
		Metadata:    metadata,
	})
}

func (r *Recorder) LogLogout(user *models.User, description string, metadata map[string]any) {
	if description == "" && user != nil {
		description = "User " + user.Email + " logged out"
	}
	var id *string
	if user != nil {
		id = &user.ID
	}
	r.Submit(models.AuditEvent{
		Action:      models.ActionLogout,
		Entity:      "User",
		PerformedBy: id,
		TargetUser:  id,
		Description: description,
		Metadata:    metadata,
	})
}

// LogPasswordChange defaults the actor to the affected user (self-service).
func (r *Recorder) LogPasswordChange(user *models.User, performedBy *string, description string, metadata map[string]any) {
	var id *string
	if user != nil {
		id = &user.ID
		if description == "" {
			description = "Password changed for user " + user.Email
		}
	}
	if performedBy == nil {
		performedBy = id
	}
	r.Submit(models.AuditEvent{
		Action:      models.ActionChangePassword,
		Entity:      "User",
		TargetUser:  id,
		PerformedBy: performedBy,
		Description: description,
		Metadata:    metadata,
	})
}

func (r *Recorder) LogToggleDelete(user *models.User, performedBy *string, isDeleted bool, description string, metadata map[string]any) {
	var id *string
	if user != nil {
		id = &user.ID
		if description == "" {
			state := "restored"
			if isDeleted {
				state = "deleted"
			}
			description = "User " + user.Email + " " + state
		}
	}
	r.Submit(models.AuditEvent{
		Action:      models.ActionToggleDelete,
		Entity:      "User",
		TargetUser:  id,
		PerformedBy: performedBy,
		Description: description,
		NewValues:   map[string]any{"is_deleted": isDeleted},
		Metadata:    metadata,
	})
}

// LogFailure records an action that did not go through; the status is FAILED
// and no old/new values are attached.
func (r *Recorder) LogFailure(action models.AuditAction, entity string, performedBy, targetUser *string, description string, metadata map[string]any) {
	r.Submit(models.AuditEvent{
		Action:      action,
		Entity:      entity,
		Status:      models.AuditFailed,
		PerformedBy: performedBy,
		TargetUser:  targetUser,
		Description: description,
		Metadata:    metadata,
	})
}
