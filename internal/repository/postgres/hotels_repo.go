package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type hotelsRepo struct{ pool *pgxpool.Pool }

const hotelCols = `id, name, id_number, address, city, country, postal_code, phone, email, check_in_time, check_out_time, is_deleted, created_at, updated_at`

func scanHotel(row pgx.Row) (models.Hotel, error) {
	var h models.Hotel
	err := row.Scan(&h.ID, &h.Name, &h.IDNumber, &h.Address, &h.City, &h.Country,
		&h.PostalCode, &h.Phone, &h.Email, &h.CheckInTime, &h.CheckOutTime,
		&h.IsDeleted, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

func (r *hotelsRepo) Create(ctx context.Context, h models.Hotel) (models.Hotel, error) {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return scanHotel(r.pool.QueryRow(ctx,
		`INSERT INTO hotels(id, name, id_number, address, city, country, postal_code, phone, email, check_in_time, check_out_time)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		 RETURNING `+hotelCols,
		h.ID, h.Name, h.IDNumber, h.Address, h.City, h.Country, h.PostalCode,
		h.Phone, h.Email, h.CheckInTime, h.CheckOutTime,
	))
}

func (r *hotelsRepo) GetByID(ctx context.Context, id string) (models.Hotel, error) {
	return scanHotel(r.pool.QueryRow(ctx,
		`SELECT `+hotelCols+` FROM hotels WHERE id=$1`, id))
}

func (r *hotelsRepo) List(ctx context.Context) ([]models.Hotel, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+hotelCols+` FROM hotels WHERE is_deleted=false ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *hotelsRepo) Update(ctx context.Context, h models.Hotel) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE hotels SET name=$2, address=$3, city=$4, country=$5, postal_code=$6,
		        phone=$7, email=$8, check_in_time=$9, check_out_time=$10, updated_at=now()
		 WHERE id=$1`,
		h.ID, h.Name, h.Address, h.City, h.Country, h.PostalCode, h.Phone,
		h.Email, h.CheckInTime, h.CheckOutTime,
	)
	return err
}

func (r *hotelsRepo) SetDeleted(ctx context.Context, id string, deleted bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE hotels SET is_deleted=$2, updated_at=now() WHERE id=$1`, id, deleted)
	return err
}
