package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hostelhub/hostel-backend/internal/api"
	"github.com/hostelhub/hostel-backend/internal/api/handlers"
	"github.com/hostelhub/hostel-backend/internal/audit"
	"github.com/hostelhub/hostel-backend/internal/auth"
	"github.com/hostelhub/hostel-backend/internal/cache"
	"github.com/hostelhub/hostel-backend/internal/config"
	"github.com/hostelhub/hostel-backend/internal/db"
	"github.com/hostelhub/hostel-backend/internal/logger"
	"github.com/hostelhub/hostel-backend/internal/metrics"
	"github.com/hostelhub/hostel-backend/internal/middleware"
	"github.com/hostelhub/hostel-backend/internal/repository/postgres"
	"github.com/hostelhub/hostel-backend/internal/services"
	"github.com/hostelhub/hostel-backend/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	metrics.Init()

	repos := postgres.NewRepositories(pool)

	wp := worker.NewPool(cfg.WorkerCount, log)
	defer wp.Stop()
	rec := audit.NewRecorder(repos.AuditLogs, wp, log, cfg.AuditMaxRetries, cfg.AuditRetryBackoff)

	var c cache.Cache
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(ctx, cfg.RedisURL, "hostelhub:")
		if err != nil {
			log.Error("redis connect", "err", err)
			os.Exit(1)
		}
		c = rc
	} else {
		log.Warn("REDIS_URL not set, using in-process cache")
		c = cache.NewMemory()
	}
	defer func() { _ = c.Close() }()

	tm := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)

	userSvc := services.NewUserService(repos.Users, rec, tm, log)
	hotelSvc := services.NewHotelService(repos.Hotels, rec, log)
	floorSvc := services.NewFloorService(repos.Floors, rec, log)
	roomTypeSvc := services.NewRoomTypeService(repos.RoomTypes, rec, log)
	roomSvc := services.NewRoomService(repos.Rooms, rec, log)
	guestSvc := services.NewGuestService(repos.Guests, rec, log)
	dashSvc := services.NewDashboardService(repos.Dashboard, c, cfg.CacheTTL, log)
	bookingSvc := services.NewBookingService(repos.Bookings, repos.Rooms, rec, dashSvc, log)
	invoiceSvc := services.NewInvoiceService(repos.Invoices, repos.Bookings, rec, dashSvc, log)
	paymentSvc := services.NewPaymentService(repos.Payments, repos.Invoices, rec, dashSvc, log)

	r := api.NewRouter(api.Deps{
		Cfg:       cfg,
		Auth:      middleware.NewAuthMiddleware(tm),
		AuthH:     handlers.NewAuthHandler(userSvc, tm),
		Users:     handlers.NewUserHandler(userSvc),
		Hotels:    handlers.NewHotelHandler(hotelSvc),
		Floors:    handlers.NewFloorHandler(floorSvc),
		RoomTypes: handlers.NewRoomTypeHandler(roomTypeSvc),
		Rooms:     handlers.NewRoomHandler(roomSvc),
		Guests:    handlers.NewGuestHandler(guestSvc),
		Bookings:  handlers.NewBookingHandler(bookingSvc),
		Invoices:  handlers.NewInvoiceHandler(invoiceSvc),
		Payments:  handlers.NewPaymentHandler(paymentSvc),
		Dashboard: handlers.NewDashboardHandler(dashSvc),
		AuditLogs: handlers.NewAuditLogHandler(repos.AuditLogs),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
