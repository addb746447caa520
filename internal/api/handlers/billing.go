package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hostelhub/hostel-backend/internal/api/httpx"
	"github.com/hostelhub/hostel-backend/internal/middleware"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/hostelhub/hostel-backend/internal/services"
)

type InvoiceHandler struct {
	invoices *services.InvoiceService
}

func NewInvoiceHandler(invoices *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.Invoice
	if !decode(w, r, &req) {
		return
	}
	created, err := h.invoices.Create(r.Context(), req, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, err := h.invoices.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) GetByBooking(w http.ResponseWriter, r *http.Request) {
	inv, err := h.invoices.GetByBooking(r.Context(), chi.URLParam(r, "bookingID"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, inv)
}

type paymentStatusReq struct {
	Status models.PaymentStatus `json:"status"`
}

func (h *InvoiceHandler) SetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req paymentStatusReq
	if !decode(w, r, &req) {
		return
	}
	inv, err := h.invoices.SetPaymentStatus(r.Context(), chi.URLParam(r, "id"), req.Status, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, inv)
}

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.Payment
	if !decode(w, r, &req) {
		return
	}
	created, err := h.payments.Create(r.Context(), req, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.payments.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *PaymentHandler) ListByInvoice(w http.ResponseWriter, r *http.Request) {
	ps, err := h.payments.ListByInvoice(r.Context(), chi.URLParam(r, "invoiceID"))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ps)
}

func (h *PaymentHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req paymentStatusReq
	if !decode(w, r, &req) {
		return
	}
	p, err := h.payments.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status, middleware.UserID(r.Context()))
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}
