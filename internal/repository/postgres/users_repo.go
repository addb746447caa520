package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usersRepo struct{ pool *pgxpool.Pool }

const userCols = `id, email, first_name, last_name, phone, password_hash, role, id_number, is_active, is_deleted, created_at, updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone,
		&u.PasswordHash, &u.Role, &u.IDNumber, &u.IsActive, &u.IsDeleted,
		&u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return scanUser(r.pool.QueryRow(ctx,
		`INSERT INTO users(id, email, first_name, last_name, phone, password_hash, role, id_number, is_active)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING `+userCols,
		u.ID, u.Email, u.FirstName, u.LastName, u.Phone, u.PasswordHash, u.Role, u.IDNumber, u.IsActive,
	))
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE id=$1`, id))
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE email=$1`, email))
}

func (r *usersRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userCols+` FROM users WHERE is_deleted=false
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) Update(ctx context.Context, u models.User) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET email=$2, first_name=$3, last_name=$4, phone=$5, role=$6, is_active=$7, updated_at=now()
		 WHERE id=$1`,
		u.ID, u.Email, u.FirstName, u.LastName, u.Phone, u.Role, u.IsActive,
	)
	return err
}

func (r *usersRepo) SetPasswordHash(ctx context.Context, id, hash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash=$2, updated_at=now() WHERE id=$1`, id, hash)
	return err
}

func (r *usersRepo) SetDeleted(ctx context.Context, id string, deleted bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET is_deleted=$2, updated_at=now() WHERE id=$1`, id, deleted)
	return err
}

func (r *usersRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email=$1 AND is_deleted=false)`, email).Scan(&exists)
	return exists, err
}

// NextIDNumber returns the next staff id for the role, formatted like
// ADM-ID-003. The max is taken over the numeric suffix, not the text column;
// text ordering would stall at 999 once ids reach four digits. The unique
// index on id_number turns a lost race between concurrent creates into an
// insert error instead of a duplicate id.
func (r *usersRepo) NextIDNumber(ctx context.Context, role string) (string, error) {
	prefix := models.IDNumberPrefix(role)
	var last int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(max(substring(id_number from '[0-9]+$')::int), 0)
		 FROM users WHERE id_number LIKE $1`,
		prefix+"-ID-%",
	).Scan(&last)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-ID-%03d", prefix, last+1), nil
}
