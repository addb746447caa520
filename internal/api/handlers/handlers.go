// Package handlers holds the HTTP handlers for the v1 API. Handlers decode
// and validate input, call a service, and translate service errors into
// HTTP status codes. Audit emission happens inside the services.
package handlers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/hostelhub/hostel-backend/internal/api/httpx"
	"github.com/hostelhub/hostel-backend/internal/api/validate"
	"github.com/hostelhub/hostel-backend/internal/services"
)

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid json body", nil)
		return false
	}
	return true
}

func limitOffset(r *http.Request) (int, int) {
	limit, offset := 50, 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// writeServiceErr maps the service sentinel errors onto HTTP statuses.
func writeServiceErr(w http.ResponseWriter, err error) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "validation failed", verrs)
	case errors.Is(err, services.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "resource not found", nil)
	case errors.Is(err, services.ErrEmailExists):
		httpx.WriteError(w, http.StatusConflict, "email_exists", "email already exists", nil)
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrAccountDeleted),
		errors.Is(err, services.ErrAccountInactive),
		errors.Is(err, services.ErrWrongRole):
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
	case errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrInvalidTransition):
		httpx.WriteError(w, http.StatusConflict, "conflict", err.Error(), nil)
	case errors.Is(err, services.ErrSamePassword):
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal", "internal error", nil)
	}
}

// clientMeta captures the request context recorded alongside login and
// logout audit events.
func clientMeta(r *http.Request) map[string]any {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		ip = fwd
	}
	return map[string]any{
		"ip":         ip,
		"user_agent": r.UserAgent(),
	}
}
