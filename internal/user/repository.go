package user

import (
	"context"
	"database/sql"
	"errors"

	"seafresh-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) (*User, error) {
	log := logger.FromCtx(ctx)

	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (email, phone, name, password) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		u.Email, u.Phone, u.Name, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", u.Email),
			zap.Error(err),
		)
		return nil, err
	}

	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, "email", email)
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, "id", id)
}

// column is always a literal chosen by this file.
func (r *repository) findOne(ctx context.Context, column, value string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, phone, name, password, created_at FROM users WHERE "+column+" = $1",
		value,
	).Scan(&u.ID, &u.Email, &u.Phone, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.FromCtx(ctx).Error("db: failed to load user", zap.String(column, value), zap.Error(err))
		return nil, err
	}
	return &u, nil
}
