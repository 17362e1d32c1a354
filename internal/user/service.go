package user

import (
	"context"
	"errors"
	"strings"

	"seafresh-be/internal/address"
	"seafresh-be/internal/auth"
	"seafresh-be/internal/db"
	"seafresh-be/internal/logger"
	"seafresh-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, input RegisterInput) (string, *User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	Profile(ctx context.Context, userID string) (*Profile, error)
}

// AddressLister is the slice of address.Service a profile needs.
type AddressLister interface {
	List(ctx context.Context, userID string) ([]*address.Address, error)
}

type service struct {
	repo      Repository
	tokens    *auth.TokenService
	addresses AddressLister
}

func NewService(repo Repository, tokens *auth.TokenService, addresses AddressLister) Service {
	return &service{repo: repo, tokens: tokens, addresses: addresses}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (string, *User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	email := utils.NormalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)

	if email == "" || phone == "" || name == "" || input.Password == "" {
		return "", nil, ErrMissingFields
	}
	if !utils.ValidateEmail(email) {
		return "", nil, ErrInvalidEmail
	}
	if !utils.ValidatePhone(phone) {
		return "", nil, ErrInvalidPhone
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	u, err := s.repo.Create(ctx, &User{
		Email:        email,
		Phone:        &phone,
		Name:         name,
		PasswordHash: hashed,
		Role:         auth.RoleCustomer,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return "", nil, ErrEmailExists
		}
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return "", nil, err
	}
	u.Role = auth.RoleCustomer

	token, err := s.tokens.Issue(u.ID, u.Email, auth.RoleCustomer)
	if err != nil {
		log.Error("failed to issue token", zap.String("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("register service completed", zap.String("user_id", u.ID))
	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	u, err := s.repo.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Info("login for unknown email")
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(password, u.PasswordHash) {
		log.Info("password mismatch", zap.String("user_id", u.ID))
		return "", nil, ErrInvalidCredentials
	}
	u.Role = auth.RoleCustomer

	token, err := s.tokens.Issue(u.ID, u.Email, auth.RoleCustomer)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *service) Profile(ctx context.Context, userID string) (*Profile, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Role = auth.RoleCustomer

	addrs, err := s.addresses.List(ctx, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list addresses for profile", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &Profile{User: u, Addresses: addrs}, nil
}
