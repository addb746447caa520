package postgres

import (
	"context"

	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type auditLogsRepo struct{ pool *pgxpool.Pool }

// Create inserts one audit row. The id and created_at are generated by the
// store; a retried insert that succeeded on a prior attempt therefore yields
// a duplicate row rather than an error, which is the accepted tradeoff.
func (r *auditLogsRepo) Create(ctx context.Context, l models.AuditLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs(action, entity, status, performed_by, target_user, description, old_values, new_values, metadata)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		l.Action, l.Entity, l.Status, l.PerformedBy, l.TargetUser,
		l.Description, l.OldValues, l.NewValues, l.Metadata,
	)
	return err
}

func (r *auditLogsRepo) List(ctx context.Context, limit, offset int) ([]models.AuditLog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, action, entity, status, performed_by, target_user, description, old_values, new_values, metadata, created_at
		   FROM audit_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.AuditLog
	for rows.Next() {
		var l models.AuditLog
		if err := rows.Scan(&l.ID, &l.Action, &l.Entity, &l.Status, &l.PerformedBy,
			&l.TargetUser, &l.Description, &l.OldValues, &l.NewValues, &l.Metadata,
			&l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
