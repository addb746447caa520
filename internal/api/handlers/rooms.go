package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hostelhub/hostel-backend/internal/api/httpx"
	"github.com/hostelhub/hostel-backend/internal/middleware"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/hostelhub/hostel-backend/internal/services"
)

type RoomTypeHandler struct {
	roomTypes *services.RoomTypeService
}

func NewRoomTypeHandler(roomTypes *services.RoomTypeService) *RoomTypeHandler {
	return &RoomTypeHandler{roomTypes: roomTypes}
}

func (h *RoomTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.RoomType
	if !decode(w, r, &req) {
		return
	}
	created, err := h.roomTypes.Create(r.Context(), req, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *RoomTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	rts, err := h.roomTypes.List(r.Context())
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rts)
}

func (h *RoomTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	rt, err := h.roomTypes.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rt)
}

func (h *RoomTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateRoomTypeInput
	if !decode(w, r, &req) {
		return
	}
	rt, err := h.roomTypes.Update(r.Context(), chi.URLParam(r, "id"), req, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rt)
}

func (h *RoomTypeHandler) ToggleDelete(w http.ResponseWriter, r *http.Request) {
	rt, err := h.roomTypes.ToggleDelete(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rt)
}

type RoomHandler struct {
	rooms *services.RoomService
}

func NewRoomHandler(rooms *services.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.Room
	if !decode(w, r, &req) {
		return
	}
	created, err := h.rooms.Create(r.Context(), req, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.rooms.List(r.Context())
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	rm, err := h.rooms.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rm)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateRoomInput
	if !decode(w, r, &req) {
		return
	}
	rm, err := h.rooms.Update(r.Context(), chi.URLParam(r, "id"), req, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rm)
}

func (h *RoomHandler) ToggleDelete(w http.ResponseWriter, r *http.Request) {
	rm, err := h.rooms.ToggleDelete(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rm)
}
