package dashboard

import (
	"context"
	"database/sql"
	"time"

	"seafresh-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	AdminStats(ctx context.Context, since time.Time) (*AdminStats, error)
	Customers(ctx context.Context) ([]*Customer, error)
	SellerStats(ctx context.Context, sellerID string) (*SellerStats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// AdminStats counts recent orders as those created at or after since.
func (r *repository) AdminStats(ctx context.Context, since time.Time) (*AdminStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM orders WHERE created_at >= $1)
	`

	var s AdminStats
	err := r.db.QueryRowContext(ctx, query, since).Scan(
		&s.TotalOrders, &s.TotalRevenue, &s.TotalProducts, &s.TotalCustomers, &s.RecentOrders,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load admin stats", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// Customers returns users with at least one order, biggest spenders first.
func (r *repository) Customers(ctx context.Context) ([]*Customer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Customers"),
	)

	const query = `
		SELECT u.id, u.name, u.email, u.phone, COUNT(o.id), COALESCE(SUM(o.total_amount), 0) AS total_spent
		FROM users u
		JOIN orders o ON o.user_id = u.id
		GROUP BY u.id, u.name, u.email, u.phone
		ORDER BY total_spent DESC, u.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	customers := []*Customer{}
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.OrderCount, &c.TotalSpent); err != nil {
			log.Error("failed to scan customer row", zap.Error(err))
			return nil, err
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}
	return customers, nil
}

// SellerStats sums only the seller's own line items, never whole order totals.
func (r *repository) SellerStats(ctx context.Context, sellerID string) (*SellerStats, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SellerStats"),
		zap.String("seller_id", sellerID),
	)

	var s SellerStats

	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products WHERE seller_id = $1", sellerID).
		Scan(&s.TotalProducts)
	if err != nil {
		log.Error("failed to count products", zap.Error(err))
		return nil, err
	}

	const salesQuery = `
		SELECT
			COUNT(DISTINCT o.id),
			COALESCE(SUM((li->>'unitPrice')::numeric * (li->>'quantity')::int), 0)
		FROM orders o
		CROSS JOIN LATERAL jsonb_array_elements(o.items) AS li
		WHERE li->>'sellerId' = $1
	`
	if err := r.db.QueryRowContext(ctx, salesQuery, sellerID).Scan(&s.TotalOrders, &s.Revenue); err != nil {
		log.Error("failed to sum seller sales", zap.Error(err))
		return nil, err
	}

	return &s, nil
}
