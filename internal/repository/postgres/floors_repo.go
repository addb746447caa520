package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type floorsRepo struct{ pool *pgxpool.Pool }

const floorCols = `id, number, description, is_deleted, created_at, updated_at`

func scanFloor(row pgx.Row) (models.Floor, error) {
	var f models.Floor
	err := row.Scan(&f.ID, &f.Number, &f.Description, &f.IsDeleted, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (r *floorsRepo) Create(ctx context.Context, f models.Floor) (models.Floor, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return scanFloor(r.pool.QueryRow(ctx,
		`INSERT INTO floors(id, number, description) VALUES($1,$2,$3) RETURNING `+floorCols,
		f.ID, f.Number, f.Description,
	))
}

func (r *floorsRepo) GetByID(ctx context.Context, id string) (models.Floor, error) {
	return scanFloor(r.pool.QueryRow(ctx,
		`SELECT `+floorCols+` FROM floors WHERE id=$1`, id))
}

func (r *floorsRepo) List(ctx context.Context) ([]models.Floor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+floorCols+` FROM floors WHERE is_deleted=false ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Floor
	for rows.Next() {
		f, err := scanFloor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *floorsRepo) Update(ctx context.Context, f models.Floor) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE floors SET number=$2, description=$3, updated_at=now() WHERE id=$1`,
		f.ID, f.Number, f.Description,
	)
	return err
}

func (r *floorsRepo) SetDeleted(ctx context.Context, id string, deleted bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE floors SET is_deleted=$2, updated_at=now() WHERE id=$1`, id, deleted)
	return err
}
