package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hostelhub/hostel-backend/internal/api/httpx"
	"github.com/hostelhub/hostel-backend/internal/middleware"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/hostelhub/hostel-backend/internal/services"
)

type GuestHandler struct {
	guests *services.GuestService
}

func NewGuestHandler(guests *services.GuestService) *GuestHandler {
	return &GuestHandler{guests: guests}
}

func (h *GuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.GuestProfile
	if !decode(w, r, &req) {
		return
	}
	created, err := h.guests.Create(r.Context(), req, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *GuestHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := limitOffset(r)
	guests, err := h.guests.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, guests)
}

func (h *GuestHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.guests.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, g)
}

func (h *GuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateGuestInput
	if !decode(w, r, &req) {
		return
	}
	g, err := h.guests.Update(r.Context(), chi.URLParam(r, "id"), req, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, g)
}

func (h *GuestHandler) ToggleDelete(w http.ResponseWriter, r *http.Request) {
	g, err := h.guests.ToggleDelete(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, g)
}
