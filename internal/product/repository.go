package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"seafresh-be/internal/logger"
	"seafresh-be/internal/seller"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Product, error)
	Create(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectProducts = `
	SELECT
		p.id, p.seller_id, p.name, p.description, p.category, p.price, p.weight, p.cut,
		p.image, p.images, p.stock, p.rating, p.discount, p.origin, p.is_featured, p.created_at,
		n.protein, n.fat, n.carbs, n.calories, n.omega3,
		s.username, s.company_name
	FROM products p
	LEFT JOIN product_nutrition n ON n.product_id = p.id
	LEFT JOIN sellers s ON s.id = p.seller_id
`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var (
		p                              Product
		protein, fat, carbs, cal, omg3 sql.NullString
		username, company              sql.NullString
	)

	err := row.Scan(
		&p.ID, &p.SellerID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Weight, &p.Cut,
		&p.Image, pq.Array(&p.Images), &p.Stock, &p.Rating, &p.Discount, &p.Origin, &p.IsFeatured, &p.CreatedAt,
		&protein, &fat, &carbs, &cal, &omg3,
		&username, &company,
	)
	if err != nil {
		return nil, err
	}

	if protein.Valid || fat.Valid || carbs.Valid || cal.Valid || omg3.Valid {
		p.Nutrition = &Nutrition{
			Protein: protein.String, Fat: fat.String, Carbs: carbs.String,
			Calories: cal.String, Omega3: omg3.String,
		}
	}
	if username.Valid {
		p.Seller = &seller.Info{ID: p.SellerID, Username: username.String, CompanyName: company.String}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return &p, nil
}

func (r *repository) query(ctx context.Context, log *zap.Logger, query string, args ...any) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("failed to scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}
	return products, nil
}

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *repository) List(ctx context.Context, filter Filter) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	query := selectProducts + " WHERE 1=1"
	args := []any{}
	argIndex := 1

	// ---------- FILTERING ----------
	if filter.Category != nil {
		query += fmt.Sprintf(" AND p.category = $%d", argIndex)
		args = append(args, string(*filter.Category))
		argIndex++
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		query += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.description ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+escapeLike(search)+"%")
		argIndex++
	}

	query += " ORDER BY p.created_at DESC"

	log.Debug("executing list products query", zap.String("query", query), zap.Any("args", args))

	return r.query(ctx, log, query, args...)
}

func (r *repository) ListBySeller(ctx context.Context, sellerID string) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListBySeller"),
		zap.String("seller_id", sellerID),
	)
	return r.query(ctx, log, selectProducts+" WHERE p.seller_id = $1 ORDER BY p.created_at DESC", sellerID)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, selectProducts+" WHERE p.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		logger.FromCtx(ctx).Error("failed to get product", zap.String("product_id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// GetByIDs resolves a batch of ids in one query; ids with no product are absent from the result.
func (r *repository) GetByIDs(ctx context.Context, ids []string) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetByIDs"),
		zap.Int("count", len(ids)),
	)
	if len(ids) == 0 {
		return []*Product{}, nil
	}
	return r.query(ctx, log, selectProducts+" WHERE p.id = ANY($1)", pq.Array(ids))
}

// Create inserts the product and its optional nutrition row in one transaction.
func (r *repository) Create(ctx context.Context, p *Product) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("seller_id", p.SellerID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin tx", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	const insertProduct = `
		INSERT INTO products (
			seller_id, name, description, category, price, weight, cut,
			image, images, stock, rating, discount, origin, is_featured
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(ctx, insertProduct,
		p.SellerID, p.Name, p.Description, string(p.Category), p.Price, p.Weight, p.Cut,
		p.Image, pq.Array(p.Images), p.Stock, p.Rating, p.Discount, p.Origin, p.IsFeatured,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		log.Error("failed to insert product", zap.Error(err))
		return err
	}

	if n := p.Nutrition; n != nil {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO product_nutrition (product_id, protein, fat, carbs, calories, omega3)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, n.Protein, n.Fat, n.Carbs, n.Calories, n.Omega3,
		)
		if err != nil {
			log.Error("failed to insert nutrition", zap.String("product_id", p.ID), zap.Error(err))
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit product", zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete product", zap.String("product_id", id), zap.Error(err))
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProductNotFound
	}
	return nil
}

// AdjustStock applies delta atomically and refuses to take stock below zero.
func (r *repository) AdjustStock(ctx context.Context, id string, delta int) (int, error) {
	var stock int
	err := r.db.QueryRowContext(ctx,
		"UPDATE products SET stock = stock + $1 WHERE id = $2 AND stock + $1 >= 0 RETURNING stock",
		delta, id,
	).Scan(&stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrInsufficientStock
		}
		logger.FromCtx(ctx).Error("failed to adjust stock", zap.String("product_id", id), zap.Error(err))
		return 0, err
	}
	return stock, nil
}
