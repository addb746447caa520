package postgres

import (
	repo "github.com/hostelhub/hostel-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users     repo.Users
	Hotels    repo.Hotels
	Floors    repo.Floors
	RoomTypes repo.RoomTypes
	Rooms     repo.Rooms
	Guests    repo.Guests
	Bookings  repo.Bookings
	Invoices  repo.Invoices
	Payments  repo.Payments
	AuditLogs repo.AuditLogs
	Dashboard repo.Dashboard
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:     &usersRepo{pool},
		Hotels:    &hotelsRepo{pool},
		Floors:    &floorsRepo{pool},
		RoomTypes: &roomTypesRepo{pool},
		Rooms:     &roomsRepo{pool},
		Guests:    &guestsRepo{pool},
		Bookings:  &bookingsRepo{pool},
		Invoices:  &invoicesRepo{pool},
		Payments:  &paymentsRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
		Dashboard: &dashboardRepo{pool},
	}
}
