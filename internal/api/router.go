package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/hostelhub/hostel-backend/internal/api/handlers"
	"github.com/hostelhub/hostel-backend/internal/config"
	"github.com/hostelhub/hostel-backend/internal/metrics"
	"github.com/hostelhub/hostel-backend/internal/middleware"
	"github.com/hostelhub/hostel-backend/internal/models"
)

// Deps carries everything the router needs. Handlers are constructed by the
// caller so the wiring stays in one place (cmd/api).
type Deps struct {
	Cfg       config.Config
	Auth      *middleware.AuthMiddleware
	AuthH     *handlers.AuthHandler
	Users     *handlers.UserHandler
	Hotels    *handlers.HotelHandler
	Floors    *handlers.FloorHandler
	RoomTypes *handlers.RoomTypeHandler
	Rooms     *handlers.RoomHandler
	Guests    *handlers.GuestHandler
	Bookings  *handlers.BookingHandler
	Invoices  *handlers.InvoiceHandler
	Payments  *handlers.PaymentHandler
	Dashboard *handlers.DashboardHandler
	AuditLogs *handlers.AuditLogHandler
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	staffUp := middleware.RequireRole(models.RoleAdmin, models.RoleManager, models.RoleStaff)
	managerUp := middleware.RequireRole(models.RoleAdmin, models.RoleManager)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", d.AuthH.Login)
		r.Post("/auth/refresh", d.AuthH.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(d.Auth.Auth)

			r.Post("/auth/logout", d.AuthH.Logout)
			r.Get("/auth/me", d.AuthH.Me)

			// User management is admin territory, except self-service
			// password changes which the service re-checks.
			r.Route("/users", func(r chi.Router) {
				r.With(adminOnly).Post("/", d.Users.Create)
				r.With(adminOnly).Get("/", d.Users.List)
				r.With(adminOnly).Get("/{id}", d.Users.Get)
				r.With(adminOnly).Put("/{id}", d.Users.Update)
				r.With(adminOnly).Post("/{id}/toggle-delete", d.Users.ToggleDelete)
				r.Post("/{id}/change-password", d.Users.ChangePassword)
			})

			r.Route("/hotels", func(r chi.Router) {
				r.Get("/", d.Hotels.List)
				r.Get("/{id}", d.Hotels.Get)
				r.With(managerUp).Post("/", d.Hotels.Create)
				r.With(managerUp).Put("/{id}", d.Hotels.Update)
				r.With(managerUp).Post("/{id}/toggle-delete", d.Hotels.ToggleDelete)
			})

			r.Route("/floors", func(r chi.Router) {
				r.Get("/", d.Floors.List)
				r.Get("/{id}", d.Floors.Get)
				r.With(managerUp).Post("/", d.Floors.Create)
				r.With(managerUp).Put("/{id}", d.Floors.Update)
				r.With(managerUp).Post("/{id}/toggle-delete", d.Floors.ToggleDelete)
			})

			r.Route("/room-types", func(r chi.Router) {
				r.Get("/", d.RoomTypes.List)
				r.Get("/{id}", d.RoomTypes.Get)
				r.With(managerUp).Post("/", d.RoomTypes.Create)
				r.With(managerUp).Put("/{id}", d.RoomTypes.Update)
				r.With(managerUp).Post("/{id}/toggle-delete", d.RoomTypes.ToggleDelete)
			})

			r.Route("/rooms", func(r chi.Router) {
				r.Get("/", d.Rooms.List)
				r.Get("/{id}", d.Rooms.Get)
				r.With(managerUp).Post("/", d.Rooms.Create)
				r.With(managerUp).Put("/{id}", d.Rooms.Update)
				r.With(managerUp).Post("/{id}/toggle-delete", d.Rooms.ToggleDelete)
			})

			r.Route("/guests", func(r chi.Router) {
				r.Use(staffUp)
				r.Post("/", d.Guests.Create)
				r.Get("/", d.Guests.List)
				r.Get("/{id}", d.Guests.Get)
				r.Put("/{id}", d.Guests.Update)
				r.Post("/{id}/toggle-delete", d.Guests.ToggleDelete)
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Use(staffUp)
				r.Post("/", d.Bookings.Create)
				r.Get("/", d.Bookings.ListByGuest)
				r.Get("/{id}", d.Bookings.Get)
				r.Get("/code/{code}", d.Bookings.GetByCode)
				r.Post("/{id}/cancel", d.Bookings.Cancel)
				r.Post("/{id}/check-in", d.Bookings.CheckIn)
				r.Post("/{id}/check-out", d.Bookings.CheckOut)
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Use(staffUp)
				r.Post("/", d.Invoices.Create)
				r.Get("/{id}", d.Invoices.Get)
				r.Get("/booking/{bookingID}", d.Invoices.GetByBooking)
				r.Put("/{id}/payment-status", d.Invoices.SetPaymentStatus)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Use(staffUp)
				r.Post("/", d.Payments.Create)
				r.Get("/{id}", d.Payments.Get)
				r.Get("/invoice/{invoiceID}", d.Payments.ListByInvoice)
				r.Put("/{id}/status", d.Payments.SetStatus)
			})

			r.With(staffUp).Get("/dashboard", d.Dashboard.Metrics)
			r.With(adminOnly).Get("/audit-logs", d.AuditLogs.List)
		})
	})

	return r
}
