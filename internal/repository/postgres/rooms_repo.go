package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type roomsRepo struct{ pool *pgxpool.Pool }

const roomCols = `id, floor_id, room_type_id, number, status, price_override, notes, is_deleted, created_at, updated_at`

func scanRoom(row pgx.Row) (models.Room, error) {
	var rm models.Room
	err := row.Scan(&rm.ID, &rm.FloorID, &rm.RoomTypeID, &rm.Number, &rm.Status,
		&rm.PriceOverride, &rm.Notes, &rm.IsDeleted, &rm.CreatedAt, &rm.UpdatedAt)
	return rm, err
}

func (r *roomsRepo) Create(ctx context.Context, rm models.Room) (models.Room, error) {
	if rm.ID == "" {
		rm.ID = uuid.NewString()
	}
	return scanRoom(r.pool.QueryRow(ctx,
		`INSERT INTO rooms(id, floor_id, room_type_id, number, status, price_override, notes)
		 VALUES($1,$2,$3,$4,$5,$6,$7) RETURNING `+roomCols,
		rm.ID, rm.FloorID, rm.RoomTypeID, rm.Number, rm.Status, rm.PriceOverride, rm.Notes,
	))
}

func (r *roomsRepo) GetByID(ctx context.Context, id string) (models.Room, error) {
	return scanRoom(r.pool.QueryRow(ctx,
		`SELECT `+roomCols+` FROM rooms WHERE id=$1`, id))
}

func (r *roomsRepo) List(ctx context.Context) ([]models.Room, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+roomCols+` FROM rooms WHERE is_deleted=false ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *roomsRepo) Update(ctx context.Context, rm models.Room) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE rooms SET floor_id=$2, room_type_id=$3, number=$4, status=$5, price_override=$6, notes=$7, updated_at=now()
		 WHERE id=$1`,
		rm.ID, rm.FloorID, rm.RoomTypeID, rm.Number, rm.Status, rm.PriceOverride, rm.Notes,
	)
	return err
}

func (r *roomsRepo) UpdateStatus(ctx context.Context, id string, status models.RoomStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE rooms SET status=$2, updated_at=now() WHERE id=$1`, id, status)
	return err
}

func (r *roomsRepo) SetDeleted(ctx context.Context, id string, deleted bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE rooms SET is_deleted=$2, updated_at=now() WHERE id=$1`, id, deleted)
	return err
}
