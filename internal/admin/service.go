package admin

import (
	"context"
	"errors"

	"seafresh-be/internal/auth"
	"seafresh-be/internal/logger"
	"seafresh-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, email, password string) (string, *Admin, error)
}

type service struct {
	repo   Repository
	tokens *auth.TokenService
}

func NewService(repo Repository, tokens *auth.TokenService) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Login(ctx context.Context, email, password string) (string, *Admin, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AdminLogin"),
	)

	a, err := s.repo.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			log.Warn("admin login for unknown email")
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !auth.CheckPassword(password, a.PasswordHash) {
		log.Warn("admin password mismatch", zap.String("admin_id", a.ID))
		return "", nil, ErrInvalidCredentials
	}
	a.Role = auth.RoleAdmin

	token, err := s.tokens.Issue(a.ID, a.Email, auth.RoleAdmin)
	if err != nil {
		return "", nil, err
	}

	log.Info("admin logged in", zap.String("admin_id", a.ID))
	return token, a, nil
}
