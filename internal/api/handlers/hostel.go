package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hostelhub/hostel-backend/internal/api/httpx"
	"github.com/hostelhub/hostel-backend/internal/middleware"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/hostelhub/hostel-backend/internal/services"
)

type HotelHandler struct {
	hotels *services.HotelService
}

func NewHotelHandler(hotels *services.HotelService) *HotelHandler {
	return &HotelHandler{hotels: hotels}
}

func (h *HotelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.Hotel
	if !decode(w, r, &req) {
		return
	}
	created, err := h.hotels.Create(r.Context(), req, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *HotelHandler) List(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.hotels.List(r.Context())
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hotels)
}

func (h *HotelHandler) Get(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.hotels.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hotel)
}

func (h *HotelHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateHotelInput
	if !decode(w, r, &req) {
		return
	}
	hotel, err := h.hotels.Update(r.Context(), chi.URLParam(r, "id"), req, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hotel)
}

func (h *HotelHandler) ToggleDelete(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.hotels.ToggleDelete(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hotel)
}

type FloorHandler struct {
	floors *services.FloorService
}

func NewFloorHandler(floors *services.FloorService) *FloorHandler {
	return &FloorHandler{floors: floors}
}

func (h *FloorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.Floor
	if !decode(w, r, &req) {
		return
	}
	created, err := h.floors.Create(r.Context(), req, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *FloorHandler) List(w http.ResponseWriter, r *http.Request) {
	floors, err := h.floors.List(r.Context())
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, floors)
}

func (h *FloorHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := h.floors.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, f)
}

func (h *FloorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateFloorInput
	if !decode(w, r, &req) {
		return
	}
	f, err := h.floors.Update(r.Context(), chi.URLParam(r, "id"), req, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, f)
}

func (h *FloorHandler) ToggleDelete(w http.ResponseWriter, r *http.Request) {
	f, err := h.floors.ToggleDelete(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, f)
}
