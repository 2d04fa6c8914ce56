//go:build integration
// +build integration

package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/company-site-api/internal/database"
	"github.com/company-site-api/internal/models"
	"github.com/company-site-api/internal/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts PostgreSQL, applies the migrations and returns the repositories
func setupTestDB(t *testing.T) (*repository.Repositories, *database.DB) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("company_site"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(connStr, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migrations, err := filepath.Abs("../../migrations")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(migrations))

	return repository.New(db), db
}

func TestIntegration_Repositories(t *testing.T) {
	repos, db := setupTestDB(t)
	ctx := context.Background()

	categories, err := repos.Category.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, categories)
	for i := 1; i < len(categories); i++ {
		assert.LessOrEqual(t, categories[i-1].Name, categories[i].Name)
	}
	category := categories[0]

	t.Run("migrations", func(t *testing.T) {
		version, dirty, err := db.MigrationVersion(mustAbs(t, "../../migrations"))
		require.NoError(t, err)
		assert.False(t, dirty)
		assert.Equal(t, uint(2), version)
	})

	t.Run("company profile singleton", func(t *testing.T) {
		profile, err := repos.Company.Get(ctx)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, int64(models.CompanyProfileID), profile.ID)

		year := 1998
		ok, err := repos.Company.Update(ctx, &models.CompanyProfile{
			ID:                models.CompanyProfileID,
			CompanyName:       "PT Export Jaya",
			EstablishedYear:   &year,
			PresidentDirector: "B. Santoso",
		})
		require.NoError(t, err)
		assert.True(t, ok)

		profile, err = repos.Company.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "PT Export Jaya", profile.CompanyName)
		require.NotNil(t, profile.EstablishedYear)
		assert.Equal(t, 1998, *profile.EstablishedYear)

		var rows int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM company_profile").Scan(&rows))
		assert.Equal(t, 1, rows)
	})

	t.Run("products with images", func(t *testing.T) {
		price := decimal.RequireFromString("1000.50")
		active := &models.Product{ProductCode: "P001", Name: "Widget", Price: price, CategoryID: &category.ID, Status: models.ProductStatusActive}
		id, err := repos.Product.Create(ctx, active)
		require.NoError(t, err)

		for i, path := range []string{"1-a.png", "2-b.png", "3-c.png"} {
			require.NoError(t, repos.Product.AddImage(ctx, &models.ProductImage{
				ProductID: id, ImagePath: path, ImageName: path, IsPrimary: i == 0,
			}))
		}

		hidden := &models.Product{ProductCode: "P002", Name: "Hidden", Price: decimal.Zero, Status: models.ProductStatusInactive}
		hiddenID, err := repos.Product.Create(ctx, hidden)
		require.NoError(t, err)

		view, err := repos.Product.GetByID(ctx, id, true)
		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, []string{"1-a.png", "2-b.png", "3-c.png"}, view.Images)
		require.NotNil(t, view.CategoryName)
		assert.Equal(t, category.Name, *view.CategoryName)
		assert.True(t, price.Equal(view.Price))

		missing, err := repos.Product.GetByID(ctx, hiddenID, true)
		require.NoError(t, err)
		assert.Nil(t, missing)

		public, err := repos.Product.List(ctx, true)
		require.NoError(t, err)
		require.Len(t, public, 1)

		all, err := repos.Product.List(ctx, false)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, hiddenID, all[0].ID, "newest first")
		assert.NotNil(t, all[0].Images)

		images, err := repos.Product.ListImages(ctx, id)
		require.NoError(t, err)
		require.Len(t, images, 3)
		assert.True(t, images[0].IsPrimary)

		require.NoError(t, repos.Product.DeleteImage(ctx, images[0].ID))
		require.NoError(t, repos.Product.DeleteImages(ctx, id))
		ok, err := repos.Product.Delete(ctx, id)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repos.Product.Delete(ctx, id)
		require.NoError(t, err)
		assert.False(t, ok)

		err = repos.Product.AddImage(ctx, &models.ProductImage{ProductID: id, ImagePath: "orphan.png"})
		assert.Error(t, err, "image rows must reference an existing product")
	})

	t.Run("articles", func(t *testing.T) {
		path := "cover.png"
		article := &models.Article{Title: "Harvest", Content: "Good year", ImagePath: &path, Status: models.ArticleStatusDraft}
		id, err := repos.Article.Create(ctx, article)
		require.NoError(t, err)

		got, err := repos.Article.GetByID(ctx, id, true)
		require.NoError(t, err)
		assert.Nil(t, got, "drafts are not public")

		article.Status = models.ArticleStatusPublished
		article.ImagePath = nil
		ok, err := repos.Article.Update(ctx, article, false)
		require.NoError(t, err)
		require.True(t, ok)

		got, err = repos.Article.GetByID(ctx, id, true)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.ImagePath)
		assert.Equal(t, "cover.png", *got.ImagePath)
		assert.False(t, got.UpdatedAt.Before(got.CreatedAt))

		ok, err = repos.Article.Delete(ctx, id)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("faqs ordered by order_index", func(t *testing.T) {
		for _, f := range []models.FAQ{
			{Question: "B", Answer: "b", OrderIndex: 2, Status: models.FAQStatusActive},
			{Question: "A", Answer: "a", OrderIndex: 1, Status: models.FAQStatusActive},
			{Question: "Z", Answer: "z", OrderIndex: 0, Status: models.FAQStatusInactive},
		} {
			faq := f
			_, err := repos.FAQ.Create(ctx, &faq)
			require.NoError(t, err)
		}

		faqs, err := repos.FAQ.List(ctx, true)
		require.NoError(t, err)
		require.Len(t, faqs, 2)
		assert.Equal(t, "A", faqs[0].Question)
		assert.Equal(t, "B", faqs[1].Question)

		all, err := repos.FAQ.List(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("admins", func(t *testing.T) {
		admin := &models.Admin{Username: "admin", PasswordHash: "hash", Email: "admin@example.com"}
		require.NoError(t, repos.Admin.Create(ctx, admin))
		assert.NotZero(t, admin.ID)

		got, err := repos.Admin.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "hash", got.PasswordHash)

		ok, err := repos.Admin.UpdatePassword(ctx, admin.ID, "rotated")
		require.NoError(t, err)
		assert.True(t, ok)

		missing, err := repos.Admin.GetByUsername(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func mustAbs(t *testing.T, path string) string {
	t.Helper()
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	return abs
}
