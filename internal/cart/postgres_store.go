package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"seafresh-be/internal/logger"

	"go.uber.org/zap"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func decodeItems(raw []byte) (*Cart, error) {
	c := New()
	if err := json.Unmarshal(raw, &c.Items); err != nil {
		return nil, err
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	return c, nil
}

func (s *PostgresStore) Load(ctx context.Context, customerID string) (*Cart, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, "SELECT items FROM carts WHERE user_id = $1", customerID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return New(), nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load cart", zap.String("user_id", customerID), zap.Error(err))
		return nil, err
	}
	return decodeItems(raw)
}

// Update locks the customer's row for the length of one transaction. The row
// is created first so a customer's very first add is serialised too.
func (s *PostgresStore) Update(ctx context.Context, customerID string, fn func(*Cart) error) (*Cart, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "repository"), zap.String("user_id", customerID))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin cart transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO carts (user_id, items, updated_at)
		VALUES ($1, '[]', NOW())
		ON CONFLICT (user_id) DO NOTHING`,
		customerID,
	); err != nil {
		log.Error("failed to ensure cart row", zap.Error(err))
		return nil, err
	}

	var raw []byte
	if err := tx.QueryRowContext(ctx,
		"SELECT items FROM carts WHERE user_id = $1 FOR UPDATE", customerID,
	).Scan(&raw); err != nil {
		log.Error("failed to lock cart", zap.Error(err))
		return nil, err
	}

	c, err := decodeItems(raw)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}

	raw, err = json.Marshal(c.Items)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE carts SET items = $1, updated_at = NOW() WHERE user_id = $2", raw, customerID,
	); err != nil {
		log.Error("failed to save cart", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit cart", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *PostgresStore) Delete(ctx context.Context, customerID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM carts WHERE user_id = $1", customerID)
	return err
}
