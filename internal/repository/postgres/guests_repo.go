package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type guestsRepo struct{ pool *pgxpool.Pool }

const guestCols = `id, name, email, phone, address, city, country, postal_code, nationality, notes, first_visit_date, total_stays, is_deleted, created_at, updated_at`

func scanGuest(row pgx.Row) (models.GuestProfile, error) {
	var g models.GuestProfile
	err := row.Scan(&g.ID, &g.Name, &g.Email, &g.Phone, &g.Address, &g.City,
		&g.Country, &g.PostalCode, &g.Nationality, &g.Notes, &g.FirstVisit,
		&g.TotalStays, &g.IsDeleted, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

func (r *guestsRepo) Create(ctx context.Context, g models.GuestProfile) (models.GuestProfile, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return scanGuest(r.pool.QueryRow(ctx,
		`INSERT INTO guest_profiles(id, name, email, phone, address, city, country, postal_code, nationality, notes, first_visit_date)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) RETURNING `+guestCols,
		g.ID, g.Name, g.Email, g.Phone, g.Address, g.City, g.Country,
		g.PostalCode, g.Nationality, g.Notes, g.FirstVisit,
	))
}

func (r *guestsRepo) GetByID(ctx context.Context, id string) (models.GuestProfile, error) {
	return scanGuest(r.pool.QueryRow(ctx,
		`SELECT `+guestCols+` FROM guest_profiles WHERE id=$1`, id))
}

func (r *guestsRepo) List(ctx context.Context, limit, offset int) ([]models.GuestProfile, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+guestCols+` FROM guest_profiles WHERE is_deleted=false
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.GuestProfile
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *guestsRepo) Update(ctx context.Context, g models.GuestProfile) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE guest_profiles SET name=$2, email=$3, phone=$4, address=$5, city=$6,
		        country=$7, postal_code=$8, nationality=$9, notes=$10, total_stays=$11, updated_at=now()
		 WHERE id=$1`,
		g.ID, g.Name, g.Email, g.Phone, g.Address, g.City, g.Country,
		g.PostalCode, g.Nationality, g.Notes, g.TotalStays,
	)
	return err
}

func (r *guestsRepo) SetDeleted(ctx context.Context, id string, deleted bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE guest_profiles SET is_deleted=$2, updated_at=now() WHERE id=$1`, id, deleted)
	return err
}
