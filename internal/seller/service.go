package seller

import (
	"context"
	"errors"
	"strings"

	"seafresh-be/internal/auth"
	"seafresh-be/internal/db"
	"seafresh-be/internal/logger"
	"seafresh-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*Seller, error)
	Login(ctx context.Context, email, password string) (string, *Seller, error)
	FindByIDs(ctx context.Context, ids []string) ([]*Seller, error)
}

type service struct {
	repo   Repository
	tokens *auth.TokenService
}

func NewService(repo Repository, tokens *auth.TokenService) Service {
	return &service{repo: repo, tokens: tokens}
}

// Register creates the account only; sellers log in separately to obtain a token.
func (s *service) Register(ctx context.Context, input RegisterInput) (*Seller, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	email := utils.NormalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)
	company := strings.TrimSpace(input.CompanyName)

	if email == "" || username == "" || company == "" || input.Password == "" {
		return nil, ErrMissingFields
	}
	if !utils.ValidateEmail(email) {
		return nil, ErrInvalidEmail
	}

	var phone *string
	if p := strings.TrimSpace(utils.PtrString(input.Phone)); p != "" {
		if !utils.ValidatePhone(p) {
			return nil, ErrInvalidPhone
		}
		phone = &p
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	sl, err := s.repo.Create(ctx, &Seller{
		Email:        email,
		Username:     username,
		CompanyName:  company,
		Phone:        phone,
		PasswordHash: hashed,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		log.Error("failed to create seller", zap.Error(err))
		return nil, err
	}
	sl.Role = auth.RoleSeller

	log.Info("seller registered", zap.String("seller_id", sl.ID))
	return sl, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *Seller, error) {
	sl, err := s.repo.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrSellerNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !auth.CheckPassword(password, sl.PasswordHash) {
		logger.FromCtx(ctx).Info("seller password mismatch", zap.String("seller_id", sl.ID))
		return "", nil, ErrInvalidCredentials
	}
	sl.Role = auth.RoleSeller

	token, err := s.tokens.Issue(sl.ID, sl.Email, auth.RoleSeller)
	if err != nil {
		return "", nil, err
	}
	return token, sl, nil
}

func (s *service) FindByIDs(ctx context.Context, ids []string) ([]*Seller, error) {
	return s.repo.FindByIDs(ctx, ids)
}
