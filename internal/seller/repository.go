package seller

import (
	"context"
	"database/sql"
	"errors"

	"seafresh-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, s *Seller) (*Seller, error)
	FindByEmail(ctx context.Context, email string) (*Seller, error)
	FindByIDs(ctx context.Context, ids []string) ([]*Seller, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Seller) (*Seller, error) {
	const q = `
		INSERT INTO sellers (email, username, company_name, phone, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, q, s.Email, s.Username, s.CompanyName, s.Phone, s.PasswordHash).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert seller", zap.String("email", s.Email), zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Seller, error) {
	var s Seller
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, username, company_name, phone, password, created_at FROM sellers WHERE email = $1",
		email,
	).Scan(&s.ID, &s.Email, &s.Username, &s.CompanyName, &s.Phone, &s.PasswordHash, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSellerNotFound
		}
		logger.FromCtx(ctx).Error("db: failed to load seller", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// FindByIDs loads every listed seller in a single round trip. Unknown ids are simply absent.
func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]*Seller, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "FindByIDs"),
		zap.Int("count", len(ids)),
	)

	res := []*Seller{}
	if len(ids) == 0 {
		return res, nil
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, email, username, company_name, phone, created_at FROM sellers WHERE id = ANY($1)",
		pq.Array(ids),
	)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s Seller
		if err := rows.Scan(&s.ID, &s.Email, &s.Username, &s.CompanyName, &s.Phone, &s.CreatedAt); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, &s)
	}
	return res, rows.Err()
}
