package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bookingsRepo struct{ pool *pgxpool.Pool }

const bookingCols = `id, guest_id, room_id, confirmation_code, check_in, check_out, number_of_guests, status, payment_status, special_requests, cancellation_date, cancellation_reason, is_deleted, created_at, updated_at`

func scanBooking(row pgx.Row) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.GuestID, &b.RoomID, &b.ConfirmationCode,
		&b.CheckIn, &b.CheckOut, &b.NumberOfGuests, &b.Status, &b.PaymentStatus,
		&b.SpecialRequests, &b.CancellationDate, &b.CancellationReason,
		&b.IsDeleted, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// withTx runs fn inside a serializable transaction. Every booking mutation
// also touches the room row, so the pair commits or rolls back together.
func (r *bookingsRepo) withTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func setRoomStatus(ctx context.Context, tx pgx.Tx, roomID string, status models.RoomStatus) error {
	_, err := tx.Exec(ctx,
		`UPDATE rooms SET status=$2, updated_at=now() WHERE id=$1`, roomID, status)
	return err
}

func (r *bookingsRepo) Create(ctx context.Context, b models.Booking, roomStatus models.RoomStatus) (models.Booking, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	var created models.Booking
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		var err error
		created, err = scanBooking(tx.QueryRow(ctx,
			`INSERT INTO bookings(id, guest_id, room_id, confirmation_code, check_in, check_out, number_of_guests, status, payment_status, special_requests)
			 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING `+bookingCols,
			b.ID, b.GuestID, b.RoomID, b.ConfirmationCode, b.CheckIn, b.CheckOut,
			b.NumberOfGuests, b.Status, b.PaymentStatus, b.SpecialRequests,
		))
		if err != nil {
			return err
		}
		return setRoomStatus(ctx, tx, b.RoomID, roomStatus)
	})
	if err != nil {
		return models.Booking{}, err
	}
	return created, nil
}

func (r *bookingsRepo) GetByID(ctx context.Context, id string) (models.Booking, error) {
	return scanBooking(r.pool.QueryRow(ctx,
		`SELECT `+bookingCols+` FROM bookings WHERE id=$1`, id))
}

func (r *bookingsRepo) GetByCode(ctx context.Context, code string) (models.Booking, error) {
	return scanBooking(r.pool.QueryRow(ctx,
		`SELECT `+bookingCols+` FROM bookings WHERE confirmation_code=$1`, code))
}

func (r *bookingsRepo) ListByGuest(ctx context.Context, guestID string, limit, offset int) ([]models.Booking, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+bookingCols+` FROM bookings WHERE guest_id=$1 AND is_deleted=false
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, guestID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *bookingsRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus, roomID string, roomStatus models.RoomStatus) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE bookings SET status=$2, updated_at=now() WHERE id=$1`, id, status); err != nil {
			return err
		}
		return setRoomStatus(ctx, tx, roomID, roomStatus)
	})
}

func (r *bookingsRepo) SetPaymentStatus(ctx context.Context, id string, status models.PaymentStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE bookings SET payment_status=$2, updated_at=now() WHERE id=$1`, id, status)
	return err
}

func (r *bookingsRepo) Cancel(ctx context.Context, id, reason, roomID string, roomStatus models.RoomStatus) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE bookings SET status=$2, cancellation_date=now(), cancellation_reason=$3, updated_at=now()
			 WHERE id=$1`, id, models.BookingCancelled, reason); err != nil {
			return err
		}
		return setRoomStatus(ctx, tx, roomID, roomStatus)
	})
}
