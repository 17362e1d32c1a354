package product

import (
	"context"
	"strings"
	"time"

	"seafresh-be/internal/logger"

	"go.uber.org/zap"
)

const defaultRating = 3

type Service interface {
	List(ctx context.Context, category, search string) ([]*Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Product, error)
	Create(ctx context.Context, sellerID string, input CreateProductInput) (*Product, error)
	Delete(ctx context.Context, sellerID, productID string) error
	AdjustStock(ctx context.Context, sellerID, productID string, delta int) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List returns the catalog, newest first. An empty category or search leaves that dimension open.
func (s *service) List(ctx context.Context, category, search string) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "List"),
	)

	start := time.Now()

	var filter Filter
	if strings.TrimSpace(category) != "" {
		c, ok := ParseCategory(category)
		if !ok {
			return nil, ErrInvalidCategory
		}
		filter.Category = &c
	}
	filter.Search = strings.TrimSpace(search)

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error("failed to fetch product list", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	log.Info("get product list success",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return products, nil
}

func (s *service) ListBySeller(ctx context.Context, sellerID string) ([]*Product, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}

func (s *service) GetByIDs(ctx context.Context, ids []string) ([]*Product, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func (s *service) Create(ctx context.Context, sellerID string, input CreateProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.String("seller_id", sellerID),
	)

	p, err := newProduct(sellerID, input)
	if err != nil {
		log.Info("product rejected", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	log.Info("product created", zap.String("product_id", p.ID))
	return p, nil
}

func newProduct(sellerID string, in CreateProductInput) (*Product, error) {
	name := strings.TrimSpace(in.Name)
	desc := strings.TrimSpace(in.Description)
	weight := strings.TrimSpace(in.Weight)

	if name == "" || desc == "" || strings.TrimSpace(in.Category) == "" || weight == "" || in.Price == 0 {
		return nil, ErrMissingFields
	}

	category, ok := ParseCategory(in.Category)
	if !ok {
		return nil, ErrInvalidCategory
	}
	if in.Price < 0 {
		return nil, ErrInvalidPrice
	}

	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	rating := float64(defaultRating)
	if in.Rating != nil {
		rating = *in.Rating
	}
	if rating < 0 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if in.Discount != nil && (*in.Discount < 0 || *in.Discount > 100) {
		return nil, ErrInvalidDiscount
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}

	return &Product{
		SellerID:    sellerID,
		Name:        name,
		Description: desc,
		Category:    category,
		Price:       in.Price,
		Weight:      weight,
		Cut:         in.Cut,
		Image:       in.Image,
		Images:      images,
		Stock:       stock,
		Rating:      rating,
		Discount:    in.Discount,
		Origin:      in.Origin,
		IsFeatured:  in.IsFeatured,
		Nutrition:   in.Nutrition,
	}, nil
}

func (s *service) owned(ctx context.Context, sellerID, productID string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p.SellerID != sellerID {
		logger.FromCtx(ctx).Warn("seller touched a product it does not own",
			zap.String("seller_id", sellerID),
			zap.String("product_id", productID),
		)
		return nil, ErrForbidden
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, sellerID, productID string) error {
	if _, err := s.owned(ctx, sellerID, productID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, productID); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("product deleted", zap.String("product_id", productID))
	return nil
}

// AdjustStock is the only path that changes stock; order placement never does.
func (s *service) AdjustStock(ctx context.Context, sellerID, productID string, delta int) (int, error) {
	if delta == 0 {
		return 0, ErrInvalidDelta
	}
	if _, err := s.owned(ctx, sellerID, productID); err != nil {
		return 0, err
	}

	stock, err := s.repo.AdjustStock(ctx, productID, delta)
	if err != nil {
		return 0, err
	}

	logger.FromCtx(ctx).Info("stock adjusted",
		zap.String("product_id", productID),
		zap.Int("delta", delta),
		zap.Int("stock", stock),
	)
	return stock, nil
}
