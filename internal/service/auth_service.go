package service

import (
	"context"
	"fmt"

	"github.com/company-site-api/internal/auth"
	"github.com/company-site-api/internal/models"
	"github.com/company-site-api/internal/repository"
	"github.com/company-site-api/internal/validation"
	"github.com/rs/zerolog"
)

// authService is the concrete implementation of AuthService
type authService struct {
	admins    repository.AdminRepository
	tokens    *auth.TokenManager
	hasher    *auth.PasswordHasher
	validator *validation.Validator
	log       zerolog.Logger
}

func newAuthService(admins repository.AdminRepository, tokens *auth.TokenManager, hasher *auth.PasswordHasher, v *validation.Validator, log zerolog.Logger) *authService {
	return &authService{
		admins:    admins,
		tokens:    tokens,
		hasher:    hasher,
		validator: v,
		log:       log.With().Str("service", "auth").Logger(),
	}
}

// Login verifies the credentials and issues an access token.
// Unknown usernames and wrong passwords fail identically.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if errs := s.validator.ValidateLogin(req); len(errs) > 0 {
		return nil, invalidInput(errs)
	}

	admin, err := s.admins.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	var ok bool
	if admin == nil {
		ok = s.hasher.VerifyMissing(req.Password)
	} else {
		ok = s.hasher.Verify(req.Password, admin.PasswordHash)
	}
	if !ok {
		s.log.Warn().Str("username", req.Username).Msg("Login rejected")
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(admin.ID, admin.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.log.Info().Int64("admin_id", admin.ID).Msg("Admin logged in")

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      admin.Summary(),
	}, nil
}

// Authorize validates a bearer token and returns the identity it carries
func (s *authService) Authorize(token string) (*auth.Identity, error) {
	return s.tokens.Validate(token)
}

// Profile returns the account summary of an authenticated admin
func (s *authService) Profile(ctx context.Context, id int64) (*models.AdminSummary, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	if admin == nil {
		return nil, ErrNotFound
	}
	summary := admin.Summary()
	return &summary, nil
}
