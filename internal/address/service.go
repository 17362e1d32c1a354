package address

import (
	"context"
	"strings"

	"seafresh-be/internal/logger"
	"seafresh-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, userID string, input CreateAddressInput) (*Address, error)
	List(ctx context.Context, userID string) ([]*Address, error)
	GetForUser(ctx context.Context, userID, addressID string) (*Address, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID string, input CreateAddressInput) (*Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.String("user_id", userID),
	)

	addr := &Address{
		UserID:  userID,
		Name:    strings.TrimSpace(input.Name),
		Phone:   strings.TrimSpace(input.Phone),
		Street:  strings.TrimSpace(input.Street),
		City:    strings.TrimSpace(input.City),
		State:   strings.TrimSpace(input.State),
		Pincode: strings.TrimSpace(input.Pincode),
	}

	for _, f := range []string{addr.Name, addr.Phone, addr.Street, addr.City, addr.State, addr.Pincode} {
		if f == "" {
			return nil, ErrMissingFields
		}
	}
	if !utils.ValidatePhone(addr.Phone) {
		return nil, ErrInvalidPhone
	}

	if err := s.repo.Create(ctx, addr); err != nil {
		log.Error("failed to create address", zap.Error(err))
		return nil, err
	}

	log.Info("address created", zap.String("address_id", addr.ID), zap.Bool("is_default", addr.IsDefault))
	return addr, nil
}

func (s *service) List(ctx context.Context, userID string) ([]*Address, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) GetForUser(ctx context.Context, userID, addressID string) (*Address, error) {
	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if addr.UserID != userID {
		logger.FromCtx(ctx).Warn("address owned by another user",
			zap.String("address_id", addressID),
			zap.String("user_id", userID),
		)
		return nil, ErrForbidden
	}
	return addr, nil
}
