package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"seafresh-be/internal/address"
	"seafresh-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
	ListBySeller(ctx context.Context, sellerID string, limit int) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, from, to Status) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `
	o.id, o.order_number, o.user_id, o.address_id, o.items,
	o.subtotal, o.tax, o.discount, o.total_amount,
	o.payment_method, o.payment_status, o.order_status,
	o.created_at, o.updated_at
`

const selectOrders = "SELECT " + orderColumns + " FROM orders o"

func (o *Order) scanTargets(items *[]byte) []any {
	return []any{
		&o.ID, &o.OrderNumber, &o.UserID, &o.AddressID, items,
		&o.Subtotal, &o.Tax, &o.Discount, &o.TotalAmount,
		&o.PaymentMethod, &o.PaymentStatus, &o.OrderStatus,
		&o.CreatedAt, &o.UpdatedAt,
	}
}

// decodeItems reads the JSONB snapshot. Rows written before versioning carry
// version 0 and are read as version 1.
func decodeItems(raw []byte) ([]LineItem, error) {
	items := []LineItem{}
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode line items: %w", err)
	}
	for i := range items {
		switch items[i].Version {
		case 0:
			items[i].Version = LineItemVersion
		case LineItemVersion:
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedLineItem, items[i].Version)
		}
	}
	return items, nil
}

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var (
		o   Order
		raw []byte
	)
	if err := row.Scan(o.scanTargets(&raw)...); err != nil {
		return nil, err
	}

	items, err := decodeItems(raw)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *repository) query(ctx context.Context, log *zap.Logger, query string, args ...any) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("user_id", o.UserID),
		zap.String("order_number", o.OrderNumber),
	)

	items, err := json.Marshal(o.Items)
	if err != nil {
		log.Error("failed to encode line items", zap.Error(err))
		return err
	}
	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	const query = `
		INSERT INTO orders (
			id, order_number, user_id, address_id, items,
			subtotal, tax, discount, total_amount,
			payment_method, payment_status, order_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRowContext(ctx, query,
		o.ID, o.OrderNumber, o.UserID, o.AddressID, items,
		o.Subtotal, o.Tax, o.Discount, o.TotalAmount,
		string(o.PaymentMethod), string(o.PaymentStatus), string(o.OrderStatus),
	).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	log.Info("order persisted", zap.String("order_id", o.ID))
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, selectOrders+" WHERE o.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		logger.FromCtx(ctx).Error("failed to get order", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}
	return o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListByUser"),
		zap.String("user_id", userID),
	)
	return r.query(ctx, log, selectOrders+" WHERE o.user_id = $1 ORDER BY o.created_at DESC", userID)
}

// ListBySeller returns orders with at least one line item sold by sellerID.
// A limit of zero or less returns every match.
func (r *repository) ListBySeller(ctx context.Context, sellerID string, limit int) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListBySeller"),
		zap.String("seller_id", sellerID),
	)

	probe, err := json.Marshal([]map[string]string{{"sellerId": sellerID}})
	if err != nil {
		return nil, err
	}

	query := selectOrders + " WHERE o.items @> $1::jsonb ORDER BY o.created_at DESC"
	args := []any{string(probe)}

	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	log.Debug("executing seller orders query", zap.String("query", query), zap.Int("limit", limit))

	return r.query(ctx, log, query, args...)
}

// ListAll returns every order with its customer summary and delivery address.
func (r *repository) ListAll(ctx context.Context) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListAll"),
	)

	const query = "SELECT " + orderColumns + `,
			u.name, u.email, u.phone,
			a.id, a.user_id, a.name, a.phone, a.street, a.city, a.state, a.pincode, a.is_default, a.created_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN addresses a ON a.id = o.address_id
		ORDER BY o.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	for rows.Next() {
		var (
			o    Order
			raw  []byte
			cust Customer
			addr address.Address
		)

		targets := append(o.scanTargets(&raw),
			&cust.Name, &cust.Email, &cust.Phone,
			&addr.ID, &addr.UserID, &addr.Name, &addr.Phone, &addr.Street,
			&addr.City, &addr.State, &addr.Pincode, &addr.IsDefault, &addr.CreatedAt,
		)
		if err := rows.Scan(targets...); err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}

		if o.Items, err = decodeItems(raw); err != nil {
			log.Error("failed to decode line items", zap.String("order_id", o.ID), zap.Error(err))
			return nil, err
		}
		cust.ID = o.UserID
		o.Customer = &cust
		o.Address = &addr
		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// UpdateStatus moves the order from one status to another only if it is still in from.
func (r *repository) UpdateStatus(ctx context.Context, id string, from, to Status) (*Order, error) {
	const query = `
		UPDATE orders o SET order_status = $1, updated_at = NOW()
		WHERE o.id = $2 AND o.order_status = $3
		RETURNING ` + orderColumns

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, string(to), id, string(from)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStatusConflict
		}
		logger.FromCtx(ctx).Error("failed to update order status",
			zap.String("order_id", id),
			zap.String("status", string(to)),
			zap.Error(err),
		)
		return nil, err
	}
	return o, nil
}
