package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type invoicesRepo struct{ pool *pgxpool.Pool }

const invoiceCols = `id, booking_id, invoice_number, subtotal, discount_amount, tax, total, payment_status, due_date, payment_date, notes, is_deleted, created_at, updated_at`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var i models.Invoice
	err := row.Scan(&i.ID, &i.BookingID, &i.InvoiceNumber, &i.Subtotal,
		&i.DiscountAmount, &i.Tax, &i.Total, &i.PaymentStatus, &i.DueDate,
		&i.PaymentDate, &i.Notes, &i.IsDeleted, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (r *invoicesRepo) Create(ctx context.Context, i models.Invoice) (models.Invoice, error) {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return scanInvoice(r.pool.QueryRow(ctx,
		`INSERT INTO invoices(id, booking_id, invoice_number, subtotal, discount_amount, tax, total, payment_status, due_date, notes)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING `+invoiceCols,
		i.ID, i.BookingID, i.InvoiceNumber, i.Subtotal, i.DiscountAmount,
		i.Tax, i.Total, i.PaymentStatus, i.DueDate, i.Notes,
	))
}

func (r *invoicesRepo) GetByID(ctx context.Context, id string) (models.Invoice, error) {
	return scanInvoice(r.pool.QueryRow(ctx,
		`SELECT `+invoiceCols+` FROM invoices WHERE id=$1`, id))
}

func (r *invoicesRepo) GetByBooking(ctx context.Context, bookingID string) (models.Invoice, error) {
	return scanInvoice(r.pool.QueryRow(ctx,
		`SELECT `+invoiceCols+` FROM invoices WHERE booking_id=$1`, bookingID))
}

func (r *invoicesRepo) SetPaymentStatus(ctx context.Context, id string, status models.PaymentStatus) error {
	if status == models.PaymentCompleted {
		_, err := r.pool.Exec(ctx,
			`UPDATE invoices SET payment_status=$2, payment_date=now(), updated_at=now() WHERE id=$1`, id, status)
		return err
	}
	_, err := r.pool.Exec(ctx,
		`UPDATE invoices SET payment_status=$2, updated_at=now() WHERE id=$1`, id, status)
	return err
}
