package address

import (
	"context"
	"database/sql"
	"errors"

	"seafresh-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]*Address, error)
	GetByID(ctx context.Context, id string) (*Address, error)
	Create(ctx context.Context, addr *Address) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectAddress = `
	SELECT id, user_id, name, phone, street, city, state, pincode, is_default, created_at
	FROM addresses
`

func scanAddress(row interface{ Scan(...any) error }) (*Address, error) {
	var a Address
	err := row.Scan(
		&a.ID, &a.UserID, &a.Name, &a.Phone,
		&a.Street, &a.City, &a.State, &a.Pincode,
		&a.IsDefault, &a.CreatedAt,
	)
	return &a, err
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]*Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListByUser"),
		zap.String("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx, selectAddress+`
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC`, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	res := []*Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Address, error) {
	a, err := scanAddress(r.db.QueryRowContext(ctx, selectAddress+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAddressNotFound
		}
		logger.FromCtx(ctx).Error("failed to get address", zap.String("address_id", id), zap.Error(err))
		return nil, err
	}
	return a, nil
}

// Create inserts addr; a user's first address becomes their default.
func (r *repository) Create(ctx context.Context, addr *Address) error {
	const q = `
		INSERT INTO addresses (user_id, name, phone, street, city, state, pincode, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
			NOT EXISTS (SELECT 1 FROM addresses WHERE user_id = $1))
		RETURNING id, is_default, created_at
	`

	err := r.db.QueryRowContext(ctx, q,
		addr.UserID, addr.Name, addr.Phone, addr.Street, addr.City, addr.State, addr.Pincode,
	).Scan(&addr.ID, &addr.IsDefault, &addr.CreatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert address", zap.String("user_id", addr.UserID), zap.Error(err))
	}
	return err
}
