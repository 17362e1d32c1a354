package category

import (
	"context"
	"database/sql"

	"seafresh-be/internal/logger"
	"seafresh-be/internal/product"

	"go.uber.org/zap"
)

type Repository interface {
	Summaries(ctx context.Context) (map[product.Category]*Summary, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Summaries returns one entry per category that has at least one product.
func (r *repository) Summaries(ctx context.Context) (map[product.Category]*Summary, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Summaries"),
	)

	const query = `
		SELECT
			category,
			COUNT(*),
			COUNT(*) FILTER (WHERE stock > 0),
			MIN(price)
		FROM products
		GROUP BY category
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query category summaries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	out := map[product.Category]*Summary{}
	for rows.Next() {
		var (
			s        Summary
			minPrice sql.NullFloat64
		)
		if err := rows.Scan(&s.Category, &s.ProductCount, &s.InStock, &minPrice); err != nil {
			log.Error("failed to scan category row", zap.Error(err))
			return nil, err
		}
		if minPrice.Valid {
			s.MinPrice = &minPrice.Float64
		}
		out[s.Category] = &s
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}
	return out, nil
}
