package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type roomTypesRepo struct{ pool *pgxpool.Pool }

const roomTypeCols = `id, name, base_price, max_occupancy, description, amenities, is_deleted, created_at, updated_at`

func scanRoomType(row pgx.Row) (models.RoomType, error) {
	var rt models.RoomType
	err := row.Scan(&rt.ID, &rt.Name, &rt.BasePrice, &rt.MaxOccupancy,
		&rt.Description, &rt.Amenities, &rt.IsDeleted, &rt.CreatedAt, &rt.UpdatedAt)
	return rt, err
}

func (r *roomTypesRepo) Create(ctx context.Context, rt models.RoomType) (models.RoomType, error) {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	if rt.Amenities == nil {
		rt.Amenities = []string{}
	}
	return scanRoomType(r.pool.QueryRow(ctx,
		`INSERT INTO room_types(id, name, base_price, max_occupancy, description, amenities)
		 VALUES($1,$2,$3,$4,$5,$6) RETURNING `+roomTypeCols,
		rt.ID, rt.Name, rt.BasePrice, rt.MaxOccupancy, rt.Description, rt.Amenities,
	))
}

func (r *roomTypesRepo) GetByID(ctx context.Context, id string) (models.RoomType, error) {
	return scanRoomType(r.pool.QueryRow(ctx,
		`SELECT `+roomTypeCols+` FROM room_types WHERE id=$1`, id))
}

func (r *roomTypesRepo) List(ctx context.Context) ([]models.RoomType, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+roomTypeCols+` FROM room_types WHERE is_deleted=false ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.RoomType
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *roomTypesRepo) Update(ctx context.Context, rt models.RoomType) error {
	if rt.Amenities == nil {
		rt.Amenities = []string{}
	}
	_, err := r.pool.Exec(ctx,
		`UPDATE room_types SET name=$2, base_price=$3, max_occupancy=$4, description=$5, amenities=$6, updated_at=now()
		 WHERE id=$1`,
		rt.ID, rt.Name, rt.BasePrice, rt.MaxOccupancy, rt.Description, rt.Amenities,
	)
	return err
}

func (r *roomTypesRepo) SetDeleted(ctx context.Context, id string, deleted bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE room_types SET is_deleted=$2, updated_at=now() WHERE id=$1`, id, deleted)
	return err
}
