package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/model"
)

type UserRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewUserRepository(db *pgxpool.Pool, timeout time.Duration) *UserRepository {
	return &UserRepository{db: db, timeout: timeout}
}

// Create inserts a new user and returns the assigned id. Email uniqueness is
// enforced by the users_email_key constraint, so two concurrent registrations
// with the same email cannot both succeed; the loser gets ErrConflict.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordDigest string) (int64, error) {
	ctx, cancel := callCtx(ctx, r.timeout)
	defer cancel()

	var id int64
	err := r.db.QueryRow(ctx,
		"INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id",
		name, email, passwordDigest,
	).Scan(&id)
	if err != nil {
		return 0, storeErr("creating user", err)
	}
	return id, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := callCtx(ctx, r.timeout)
	defer cancel()

	user := &model.User{}
	err := r.db.QueryRow(ctx,
		"SELECT id, name, email, password FROM users WHERE email = $1",
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user by email: %w", apperr.ErrNotFound)
		}
		return nil, storeErr("getting user by email", err)
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	ctx, cancel := callCtx(ctx, r.timeout)
	defer cancel()

	user := &model.User{}
	err := r.db.QueryRow(ctx,
		"SELECT id, name, email, password FROM users WHERE id = $1",
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
		}
		return nil, storeErr("getting user", err)
	}
	return user, nil
}
