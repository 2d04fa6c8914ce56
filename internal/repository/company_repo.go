package repository

import (
	"context"
	"database/sql"

	"github.com/company-site-api/internal/database"
	"github.com/company-site-api/internal/models"
)

// companyRepo is the concrete implementation of CompanyRepository
type companyRepo struct {
	db *database.DB
}

// NewCompanyRepo creates a new company profile repository
func NewCompanyRepo(db *database.DB) CompanyRepository {
	return &companyRepo{db: db}
}

// Get returns the company profile, or nil if it has not been seeded
func (r *companyRepo) Get(ctx context.Context) (*models.CompanyProfile, error) {
	query := `
		SELECT id, company_name, phone, email, address, description,
		       established_year, director, president_director, location
		FROM company_profile
		ORDER BY id
		LIMIT 1
	`

	var p models.CompanyProfile
	var year sql.NullInt64
	err := r.db.QueryRowContext(ctx, query).Scan(
		&p.ID, &p.CompanyName, &p.Phone, &p.Email, &p.Address, &p.Description,
		&year, &p.Director, &p.PresidentDirector, &p.Location,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if year.Valid {
		y := int(year.Int64)
		p.EstablishedYear = &y
	}
	return &p, nil
}

// Update overwrites every field of the row with id=1; it never inserts
func (r *companyRepo) Update(ctx context.Context, p *models.CompanyProfile) (bool, error) {
	query := `
		UPDATE company_profile SET
			company_name = $1, phone = $2, email = $3, address = $4, description = $5,
			established_year = $6, director = $7, president_director = $8, location = $9
		WHERE id = $10
	`

	var year sql.NullInt64
	if p.EstablishedYear != nil {
		year = sql.NullInt64{Int64: int64(*p.EstablishedYear), Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query,
		p.CompanyName, p.Phone, p.Email, p.Address, p.Description,
		year, p.Director, p.PresidentDirector, p.Location,
		models.CompanyProfileID,
	)
	if err != nil {
		return false, err
	}
	return affected(res)
}
