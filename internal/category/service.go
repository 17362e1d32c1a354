package category

import (
	"context"

	"seafresh-be/internal/logger"
	"seafresh-be/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]*Summary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List returns every category in storefront order, including empty ones.
func (s *service) List(ctx context.Context) ([]*Summary, error) {
	found, err := s.repo.Summaries(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list categories", zap.Error(err))
		return nil, err
	}

	all := product.Categories()
	out := make([]*Summary, 0, len(all))
	for _, c := range all {
		if sum, ok := found[c]; ok {
			out = append(out, sum)
			continue
		}
		out = append(out, &Summary{Category: c})
	}
	return out, nil
}
