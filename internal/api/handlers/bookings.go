package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hostelhub/hostel-backend/internal/api/httpx"
	"github.com/hostelhub/hostel-backend/internal/middleware"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/hostelhub/hostel-backend/internal/services"
)

type BookingHandler struct {
	bookings *services.BookingService
}

func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.Booking
	if !decode(w, r, &req) {
		return
	}
	created, err := h.bookings.Create(r.Context(), req, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.bookings.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	b, err := h.bookings.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) ListByGuest(w http.ResponseWriter, r *http.Request) {
	guestID := r.URL.Query().Get("guest_id")
	if guestID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "guest_id is required", nil)
		return
	}
	limit, offset := limitOffset(r)
	bs, err := h.bookings.ListByGuest(r.Context(), guestID, limit, offset)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bs)
}

type cancelReq struct {
	Reason string `json:"reason"`
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req cancelReq
	if !decode(w, r, &req) {
		return
	}
	b, err := h.bookings.Cancel(r.Context(), chi.URLParam(r, "id"), req.Reason, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	b, err := h.bookings.CheckIn(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	b, err := h.bookings.CheckOut(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}
