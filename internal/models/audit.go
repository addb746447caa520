package models

import (
	"errors"
	"time"
)

type AuditAction string

const (
	ActionCreate         AuditAction = "CREATE"
	ActionRead           AuditAction = "READ"
	ActionUpdate         AuditAction = "UPDATE"
	ActionDelete         AuditAction = "DELETE"
	ActionLogin          AuditAction = "LOGIN"
	ActionLogout         AuditAction = "LOGOUT"
	ActionChangePassword AuditAction = "CHANGE_PASSWORD"
	ActionToggleDelete   AuditAction = "TOGGLE_DELETE"
)

func (a AuditAction) Valid() bool {
	switch a {
	case ActionCreate, ActionRead, ActionUpdate, ActionDelete,
		ActionLogin, ActionLogout, ActionChangePassword, ActionToggleDelete:
		return true
	}
	return false
}

type AuditStatus string

const (
	AuditSuccess AuditStatus = "SUCCESS"
	AuditFailed  AuditStatus = "FAILED"
	AuditPending AuditStatus = "PENDING"
)

// AuditEvent is the in-memory unit of work handed to the audit recorder.
// PerformedBy and TargetUser carry user ids, not live rows: the persistence
// job may run long after the request that produced the event has returned.
type AuditEvent struct {
	Action      AuditAction
	Entity      string
	Status      AuditStatus
	Description string
	PerformedBy *string
	TargetUser  *string
	OldValues   map[string]any
	NewValues   map[string]any
	Metadata    map[string]any
}

// Normalize fills the defaults the caller is allowed to omit.
func (e *AuditEvent) Normalize() {
	if e.Status == "" {
		e.Status = AuditSuccess
	}
	if e.Description == "" {
		e.Description = string(e.Action) + " " + e.Entity
	}
}

func (e *AuditEvent) Validate() error {
	if !e.Action.Valid() {
		return errors.New("unknown audit action: " + string(e.Action))
	}
	if e.Entity == "" {
		return errors.New("audit entity required")
	}
	return nil
}

// AuditLog is the persisted audit record. Rows are append-only: the
// application never updates or deletes them, and the user foreign keys are
// delete-protected as long as the row exists.
type AuditLog struct {
	ID          string         `json:"id"`
	Action      AuditAction    `json:"action"`
	Entity      string         `json:"entity"`
	Status      AuditStatus    `json:"status"`
	PerformedBy *string        `json:"performed_by"`
	TargetUser  *string        `json:"target_user"`
	Description string         `json:"description"`
	OldValues   map[string]any `json:"old_values,omitempty"`
	NewValues   map[string]any `json:"new_values,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
