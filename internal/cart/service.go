package cart

import (
	"context"
	"errors"
	"strings"

	"seafresh-be/internal/logger"
	"seafresh-be/internal/product"

	"go.uber.org/zap"
)

// Catalog resolves product ids against the live catalog in one batch.
type Catalog interface {
	GetByIDs(ctx context.Context, ids []string) ([]*product.Product, error)
}

type Summary struct {
	Items []Item `json:"items"`
	Totals
}

type Service interface {
	Get(ctx context.Context, customerID string) (*Cart, error)
	AddItem(ctx context.Context, customerID, productID string, qty int, weight string) (*Cart, error)
	RemoveItem(ctx context.Context, customerID, productID string) (*Cart, error)
	UpdateQuantity(ctx context.Context, customerID, productID string, qty int) (*Cart, error)
	Clear(ctx context.Context, customerID string) error
	Summary(ctx context.Context, customerID, couponCode string) (*Summary, error)
	Price(ctx context.Context, items []Item, couponCode string) (Totals, error)
}

type service struct {
	store   Store
	catalog Catalog
	pricing Pricing
}

func NewService(store Store, catalog Catalog, pricing Pricing) Service {
	return &service{store: store, catalog: catalog, pricing: pricing}
}

func (s *service) Get(ctx context.Context, customerID string) (*Cart, error) {
	return s.store.Load(ctx, customerID)
}

func (s *service) AddItem(ctx context.Context, customerID, productID string, qty int, weight string) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
		zap.String("user_id", customerID),
		zap.String("product_id", productID),
	)

	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, ErrMissingProductID
	}
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	found, err := s.catalog.GetByIDs(ctx, []string{productID})
	if err != nil {
		log.Error("failed to resolve product", zap.Error(err))
		return nil, err
	}
	if len(found) == 0 {
		return nil, product.ErrProductNotFound
	}
	if weight == "" {
		weight = found[0].Weight
	}

	c, err := s.store.Update(ctx, customerID, func(c *Cart) error {
		c.Add(productID, qty, weight)
		return nil
	})
	if err != nil {
		log.Error("failed to persist cart", zap.Error(err))
		return nil, err
	}

	log.Info("cart item added", zap.Int("quantity", qty))
	return c, nil
}

func (s *service) RemoveItem(ctx context.Context, customerID, productID string) (*Cart, error) {
	return s.mutate(ctx, customerID, productID, func(c *Cart) { c.Remove(productID) })
}

func (s *service) UpdateQuantity(ctx context.Context, customerID, productID string, qty int) (*Cart, error) {
	return s.mutate(ctx, customerID, productID, func(c *Cart) { c.UpdateQuantity(productID, qty) })
}

func (s *service) mutate(ctx context.Context, customerID, productID string, fn func(*Cart)) (*Cart, error) {
	c, err := s.store.Update(ctx, customerID, func(c *Cart) error {
		if !c.Has(productID) {
			return ErrCartItemNotFound
		}
		fn(c)
		return nil
	})
	if errors.Is(err, ErrCartItemNotFound) {
		return nil, err
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to persist cart", zap.String("user_id", customerID), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *service) Clear(ctx context.Context, customerID string) error {
	return s.store.Delete(ctx, customerID)
}

func (s *service) Summary(ctx context.Context, customerID, couponCode string) (*Summary, error) {
	c, err := s.store.Load(ctx, customerID)
	if err != nil {
		return nil, err
	}

	totals, err := s.Price(ctx, c.Items, couponCode)
	if err != nil {
		return nil, err
	}
	return &Summary{Items: c.Items, Totals: totals}, nil
}

// Price resolves items against the live catalog in one lookup and computes totals.
func (s *service) Price(ctx context.Context, items []Item, couponCode string) (Totals, error) {
	ids := ProductIDs(items)
	if len(ids) == 0 {
		return ComputeTotals(nil, nil, s.pricing, couponCode), nil
	}

	catalog, err := s.catalog.GetByIDs(ctx, ids)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load catalog for pricing", zap.Error(err))
		return Totals{}, err
	}
	return ComputeTotals(items, catalog, s.pricing, couponCode), nil
}
