package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/company-site-api/internal/models"
	"github.com/company-site-api/internal/repository"
	"github.com/company-site-api/internal/validation"
	"github.com/rs/zerolog"
)

var errProfileMissing = errors.New("company profile row is missing")

type companyService struct {
	repo      repository.CompanyRepository
	validator *validation.Validator
	log       zerolog.Logger
}

func newCompanyService(repo repository.CompanyRepository, v *validation.Validator, log zerolog.Logger) *companyService {
	return &companyService{
		repo:      repo,
		validator: v,
		log:       log.With().Str("service", "company").Logger(),
	}
}

// Get returns the company profile, or nil when it has not been seeded
func (s *companyService) Get(ctx context.Context) (*models.CompanyProfile, error) {
	profile, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load company profile: %w", err)
	}
	return profile, nil
}

// Update overwrites the singleton row. It never creates one.
func (s *companyService) Update(ctx context.Context, input *models.CompanyProfileInput) error {
	if errs := s.validator.ValidateCompanyProfile(input); len(errs) > 0 {
		return invalidInput(errs)
	}

	ok, err := s.repo.Update(ctx, input.Profile())
	if err != nil {
		return fmt.Errorf("failed to update company profile: %w", err)
	}
	if !ok {
		return errProfileMissing
	}

	s.log.Info().Msg("Company profile updated")
	return nil
}
