package repository

import (
	"context"
	"database/sql"

	"github.com/company-site-api/internal/database"
	"github.com/company-site-api/internal/models"
)

// adminRepo is the concrete implementation of AdminRepository
type adminRepo struct {
	db *database.DB
}

// NewAdminRepo creates a new admin repository
func NewAdminRepo(db *database.DB) AdminRepository {
	return &adminRepo{db: db}
}

// Create inserts a new admin and sets its ID
func (r *adminRepo) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (username, password_hash, email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, admin.Username, admin.PasswordHash, admin.Email).
		Scan(&admin.ID, &admin.CreatedAt)
}

// GetByID retrieves an admin by ID
func (r *adminRepo) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return r.getOne(ctx, `SELECT id, username, password_hash, email, created_at FROM admins WHERE id = $1`, id)
}

// GetByUsername retrieves an admin by username
func (r *adminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return r.getOne(ctx, `SELECT id, username, password_hash, email, created_at FROM admins WHERE username = $1`, username)
}

func (r *adminRepo) getOne(ctx context.Context, query string, arg interface{}) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&admin.ID, &admin.Username, &admin.PasswordHash, &admin.Email, &admin.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// UpdatePassword rotates an admin's password hash
func (r *adminRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE admins SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}
