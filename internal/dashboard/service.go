package dashboard

import (
	"context"
	"time"
)

const recentWindow = 30 * 24 * time.Hour

type Service interface {
	AdminStats(ctx context.Context) (*AdminStats, error)
	Customers(ctx context.Context) ([]*Customer, error)
	SellerStats(ctx context.Context, sellerID string) (*SellerStats, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) AdminStats(ctx context.Context) (*AdminStats, error) {
	return s.repo.AdminStats(ctx, s.now().Add(-recentWindow))
}

func (s *service) Customers(ctx context.Context) ([]*Customer, error) {
	return s.repo.Customers(ctx)
}

func (s *service) SellerStats(ctx context.Context, sellerID string) (*SellerStats, error) {
	return s.repo.SellerStats(ctx, sellerID)
}
