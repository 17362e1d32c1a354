package admin

import (
	"context"
	"database/sql"
	"errors"

	"seafresh-be/internal/logger"

	"go.uber.org/zap"
)

// Repository is read-only; admin accounts are provisioned directly in the database.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Admin, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	var a Admin
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, username, name, password FROM admins WHERE email = $1",
		email,
	).Scan(&a.ID, &a.Email, &a.Username, &a.Name, &a.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		logger.FromCtx(ctx).Error("db: failed to load admin", zap.Error(err))
		return nil, err
	}
	return &a, nil
}
