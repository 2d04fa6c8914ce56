package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/company-site-api/internal/database"
	"github.com/company-site-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = `SELECT id, title, content, excerpt, image_path, status, created_at, updated_at FROM articles`

// List returns articles newest first; publishedOnly hides drafts
func (r *articleRepo) List(ctx context.Context, publishedOnly bool) ([]*models.Article, error) {
	query := articleColumns
	args := []interface{}{}
	if publishedOnly {
		query += " WHERE status = $1"
		args = append(args, models.ArticleStatusPublished)
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]*models.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id int64, publishedOnly bool) (*models.Article, error) {
	query := articleColumns + " WHERE id = $1"
	args := []interface{}{id}
	if publishedOnly {
		query += " AND status = $2"
		args = append(args, models.ArticleStatusPublished)
	}

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var article models.Article
	var imagePath sql.NullString

	err := row.Scan(
		&article.ID, &article.Title, &article.Content, &article.Excerpt,
		&imagePath, &article.Status, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if imagePath.Valid {
		article.ImagePath = &imagePath.String
	}
	return &article, nil
}

// Create inserts a new article and returns its id
func (r *articleRepo) Create(ctx context.Context, article *models.Article) (int64, error) {
	query := `
		INSERT INTO articles (title, content, excerpt, image_path, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id
	`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		article.Title, article.Content, article.Excerpt, nullableString(article.ImagePath),
		article.Status, now,
	).Scan(&article.ID)
	if err != nil {
		return 0, err
	}

	article.CreatedAt = now
	article.UpdatedAt = now
	return article.ID, nil
}

// Update overwrites the article's fields; image_path is only written when
// replaceImage is set
func (r *articleRepo) Update(ctx context.Context, article *models.Article, replaceImage bool) (bool, error) {
	var (
		res sql.Result
		err error
	)
	now := time.Now()

	if replaceImage {
		res, err = r.db.ExecContext(ctx, `
			UPDATE articles SET title = $1, content = $2, excerpt = $3, image_path = $4, status = $5, updated_at = $6
			WHERE id = $7
		`, article.Title, article.Content, article.Excerpt, nullableString(article.ImagePath), article.Status, now, article.ID)
	} else {
		res, err = r.db.ExecContext(ctx, `
			UPDATE articles SET title = $1, content = $2, excerpt = $3, status = $4, updated_at = $5
			WHERE id = $6
		`, article.Title, article.Content, article.Excerpt, article.Status, now, article.ID)
	}
	if err != nil {
		return false, err
	}

	article.UpdatedAt = now
	return affected(res)
}

// Delete removes an article row
func (r *articleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
