package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditActionValid(t *testing.T) {
	for _, a := range []AuditAction{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete,
		ActionLogin, ActionLogout, ActionChangePassword, ActionToggleDelete,
	} {
		assert.True(t, a.Valid(), string(a))
	}
	assert.False(t, AuditAction("DESTROY").Valid())
	assert.False(t, AuditAction("").Valid())
}

func TestAuditEventNormalizeDefaults(t *testing.T) {
	e := AuditEvent{Action: ActionUpdate, Entity: "Room"}
	e.Normalize()
	assert.Equal(t, AuditSuccess, e.Status)
	assert.Equal(t, "UPDATE Room", e.Description)
}

func TestAuditEventNormalizeKeepsExplicitValues(t *testing.T) {
	e := AuditEvent{
		Action:      ActionLogin,
		Entity:      "User",
		Status:      AuditFailed,
		Description: "Failed login attempt for x - Invalid credentials",
	}
	e.Normalize()
	assert.Equal(t, AuditFailed, e.Status)
	assert.Equal(t, "Failed login attempt for x - Invalid credentials", e.Description)
}

func TestAuditEventValidate(t *testing.T) {
	e := AuditEvent{Action: ActionCreate, Entity: "Hotel"}
	require.NoError(t, e.Validate())

	assert.Error(t, (&AuditEvent{Action: "WAT", Entity: "Hotel"}).Validate())
	assert.Error(t, (&AuditEvent{Action: ActionCreate}).Validate())
}
