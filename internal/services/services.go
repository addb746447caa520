// Package services holds the command handlers: each mutating operation
// performs its write, computes old/new field diffs, and emits one audit
// event per outcome. Audit emission is asynchronous and can never fail the
// business operation.
package services

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeleted     = errors.New("account not found")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrWrongRole          = errors.New("user does not have the selected role")
	ErrSamePassword       = errors.New("new password must be different from old password")
	ErrRoomUnavailable    = errors.New("room is not available")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
