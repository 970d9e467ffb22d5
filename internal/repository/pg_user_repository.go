package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pharmapath/backend/internal/model"
)

// PgUserRepository は UserRepository の PostgreSQL 実装
type PgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository は PgUserRepository を生成する
func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

// Ping は DB 接続を確認する（DB インターフェース実装）
func (r *PgUserRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

const userSelectCols = `id, email, password_hash, name, created_at, updated_at`

func scanUser(scan func(...any) error) (*model.User, error) {
	var u model.User
	if err := scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID は ID でユーザーを取得する
func (r *PgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE id = $1`, id)
	return scanUser(row.Scan)
}

// FindByEmail はメールアドレスでユーザーを取得する
func (r *PgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE email = $1`, email)
	return scanUser(row.Scan)
}

// Create はユーザーを作成する
func (r *PgUserRepository) Create(ctx context.Context, user *model.User) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		user.Email, user.PasswordHash, user.Name,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}
