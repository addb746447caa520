package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type paymentsRepo struct{ pool *pgxpool.Pool }

const paymentCols = `id, invoice_id, amount, method, payment_status, transaction_id, receipt_number, reference, refund_date, refund_amount, notes, is_deleted, created_at, updated_at`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(&p.ID, &p.InvoiceID, &p.Amount, &p.Method, &p.PaymentStatus,
		&p.TransactionID, &p.ReceiptNumber, &p.Reference, &p.RefundDate,
		&p.RefundAmount, &p.Notes, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *paymentsRepo) Create(ctx context.Context, p models.Payment) (models.Payment, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return scanPayment(r.pool.QueryRow(ctx,
		`INSERT INTO payments(id, invoice_id, amount, method, payment_status, transaction_id, receipt_number, reference, notes)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING `+paymentCols,
		p.ID, p.InvoiceID, p.Amount, p.Method, p.PaymentStatus, p.TransactionID,
		p.ReceiptNumber, p.Reference, p.Notes,
	))
}

func (r *paymentsRepo) GetByID(ctx context.Context, id string) (models.Payment, error) {
	return scanPayment(r.pool.QueryRow(ctx,
		`SELECT `+paymentCols+` FROM payments WHERE id=$1`, id))
}

func (r *paymentsRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]models.Payment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+paymentCols+` FROM payments WHERE invoice_id=$1 AND is_deleted=false
		 ORDER BY created_at DESC`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *paymentsRepo) SetStatus(ctx context.Context, id string, status models.PaymentStatus) error {
	if status == models.PaymentRefunded {
		_, err := r.pool.Exec(ctx,
			`UPDATE payments SET payment_status=$2, refund_date=now(), refund_amount=amount, updated_at=now() WHERE id=$1`,
			id, status)
		return err
	}
	_, err := r.pool.Exec(ctx,
		`UPDATE payments SET payment_status=$2, updated_at=now() WHERE id=$1`, id, status)
	return err
}
