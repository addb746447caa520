package postgres

import (
	"context"

	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type dashboardRepo struct{ pool *pgxpool.Pool }

func (r *dashboardRepo) Metrics(ctx context.Context) (models.DashboardMetrics, error) {
	var m models.DashboardMetrics

	err := r.pool.QueryRow(ctx, `
SELECT
  (SELECT count(*) FROM hotels WHERE is_deleted=false),
  (SELECT count(*) FROM floors WHERE is_deleted=false),
  (SELECT count(*) FROM rooms WHERE is_deleted=false),
  (SELECT count(*) FROM guest_profiles WHERE is_deleted=false),
  (SELECT count(*) FROM bookings WHERE is_deleted=false),
  (SELECT count(*) FROM invoices WHERE is_deleted=false),
  (SELECT count(*) FROM payments WHERE is_deleted=false)
`).Scan(&m.TotalHotels, &m.TotalFloors, &m.TotalRooms, &m.TotalGuests,
		&m.TotalBookings, &m.TotalInvoices, &m.TotalPayments)
	if err != nil {
		return m, err
	}

	err = r.pool.QueryRow(ctx, `
SELECT
  count(*) FILTER (WHERE status='available'),
  count(*) FILTER (WHERE status='occupied'),
  count(*) FILTER (WHERE status='dirty'),
  count(*) FILTER (WHERE status='maintenance')
FROM rooms WHERE is_deleted=false
`).Scan(&m.RoomsAvailable, &m.RoomsOccupied, &m.RoomsDirty, &m.RoomsMaintenance)
	if err != nil {
		return m, err
	}

	err = r.pool.QueryRow(ctx, `
SELECT
  count(*) FILTER (WHERE status='reserved'),
  count(*) FILTER (WHERE status='checked_in'),
  count(*) FILTER (WHERE status='checked_out'),
  count(*) FILTER (WHERE status='cancelled')
FROM bookings WHERE is_deleted=false
`).Scan(&m.BookingsReserved, &m.BookingsCheckedIn, &m.BookingsCheckedOut, &m.BookingsCancelled)
	if err != nil {
		return m, err
	}

	err = r.pool.QueryRow(ctx, `
SELECT
  count(*) FILTER (WHERE payment_status='pending'),
  count(*) FILTER (WHERE payment_status='completed'),
  count(*) FILTER (WHERE payment_status='failed'),
  count(*) FILTER (WHERE payment_status='refunded'),
  COALESCE(sum(amount) FILTER (WHERE payment_status='completed'), 0),
  COALESCE(sum(amount) FILTER (WHERE payment_status='pending'), 0)
FROM payments WHERE is_deleted=false
`).Scan(&m.PaymentsPending, &m.PaymentsCompleted, &m.PaymentsFailed,
		&m.PaymentsRefunded, &m.RevenueCollected, &m.RevenueOutstanding)
	return m, err
}
