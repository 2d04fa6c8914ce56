package repository

import (
	"context"
	"database/sql"

	"github.com/company-site-api/internal/database"
	"github.com/company-site-api/internal/models"
)

// faqRepo is the concrete implementation of FAQRepository
type faqRepo struct {
	db *database.DB
}

// NewFAQRepo creates a new FAQ repository
func NewFAQRepo(db *database.DB) FAQRepository {
	return &faqRepo{db: db}
}

// List returns FAQs by ascending order_index; ties keep insertion order
func (r *faqRepo) List(ctx context.Context, activeOnly bool) ([]*models.FAQ, error) {
	query := "SELECT id, question, answer, order_index, status FROM faqs"
	args := []interface{}{}
	if activeOnly {
		query += " WHERE status = $1"
		args = append(args, models.FAQStatusActive)
	}
	query += " ORDER BY order_index, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faqs := make([]*models.FAQ, 0)
	for rows.Next() {
		var f models.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.OrderIndex, &f.Status); err != nil {
			return nil, err
		}
		faqs = append(faqs, &f)
	}
	return faqs, rows.Err()
}

// GetByID retrieves a FAQ by ID
func (r *faqRepo) GetByID(ctx context.Context, id int64) (*models.FAQ, error) {
	var f models.FAQ
	err := r.db.QueryRowContext(ctx,
		"SELECT id, question, answer, order_index, status FROM faqs WHERE id = $1", id,
	).Scan(&f.ID, &f.Question, &f.Answer, &f.OrderIndex, &f.Status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a FAQ and returns its id
func (r *faqRepo) Create(ctx context.Context, faq *models.FAQ) (int64, error) {
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO faqs (question, answer, order_index, status) VALUES ($1, $2, $3, $4) RETURNING id",
		faq.Question, faq.Answer, faq.OrderIndex, faq.Status,
	).Scan(&faq.ID)
	if err != nil {
		return 0, err
	}
	return faq.ID, nil
}

// Update overwrites all fields of a FAQ
func (r *faqRepo) Update(ctx context.Context, faq *models.FAQ) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE faqs SET question = $1, answer = $2, order_index = $3, status = $4 WHERE id = $5",
		faq.Question, faq.Answer, faq.OrderIndex, faq.Status, faq.ID,
	)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// Delete removes a FAQ
func (r *faqRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM faqs WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return affected(res)
}
