package service

import (
	"context"
	"fmt"

	"github.com/company-site-api/internal/media"
	"github.com/company-site-api/internal/models"
	"github.com/company-site-api/internal/repository"
	"github.com/company-site-api/internal/validation"
	"github.com/rs/zerolog"
)

// contentService is the concrete implementation of ContentService
type contentService struct {
	articles  repository.ArticleRepository
	faqs      repository.FAQRepository
	store     MediaStore
	validator *validation.Validator
	log       zerolog.Logger
}

func newContentService(repos *repository.Repositories, store MediaStore, v *validation.Validator, log zerolog.Logger) *contentService {
	return &contentService{
		articles:  repos.Article,
		faqs:      repos.FAQ,
		store:     store,
		validator: v,
		log:       log.With().Str("service", "content").Logger(),
	}
}

// Articles

func (s *contentService) ListPublicArticles(ctx context.Context) ([]*models.Article, error) {
	return s.listArticles(ctx, true)
}

func (s *contentService) ListArticles(ctx context.Context) ([]*models.Article, error) {
	return s.listArticles(ctx, false)
}

func (s *contentService) GetPublicArticle(ctx context.Context, id int64) (*models.Article, error) {
	return s.getArticle(ctx, id, true)
}

func (s *contentService) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	return s.getArticle(ctx, id, false)
}

func (s *contentService) listArticles(ctx context.Context, publishedOnly bool) ([]*models.Article, error) {
	articles, err := s.articles.List(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

func (s *contentService) getArticle(ctx context.Context, id int64, publishedOnly bool) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get article %d: %w", id, err)
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

func (s *contentService) CreateArticle(ctx context.Context, form *models.ArticleForm, image *media.Upload) (int64, error) {
	input, errs := s.validator.ValidateArticle(form)
	if len(errs) > 0 {
		return 0, invalidInput(errs)
	}

	stored, err := s.storeImage(ctx, image)
	if err != nil {
		return 0, err
	}

	article := newArticle(input)
	if stored != nil {
		article.ImagePath = &stored.Path
	}

	id, err := s.articles.Create(ctx, article)
	if err != nil {
		s.discard(stored)
		return 0, fmt.Errorf("failed to create article: %w", err)
	}

	s.log.Info().Int64("article_id", id).Bool("has_image", stored != nil).Msg("Article created")
	return id, nil
}

// UpdateArticle overwrites the fields. A new image replaces the old one, whose
// file is removed only after the row points at the new file.
func (s *contentService) UpdateArticle(ctx context.Context, id int64, form *models.ArticleForm, image *media.Upload) error {
	input, errs := s.validator.ValidateArticle(form)
	if len(errs) > 0 {
		return invalidInput(errs)
	}

	existing, err := s.articles.GetByID(ctx, id, false)
	if err != nil {
		return fmt.Errorf("failed to get article %d: %w", id, err)
	}
	if existing == nil {
		return ErrNotFound
	}

	stored, err := s.storeImage(ctx, image)
	if err != nil {
		return err
	}

	article := newArticle(input)
	article.ID = id
	if stored != nil {
		article.ImagePath = &stored.Path
	}

	ok, err := s.articles.Update(ctx, article, stored != nil)
	if err != nil {
		s.discard(stored)
		return fmt.Errorf("failed to update article %d: %w", id, err)
	}
	if !ok {
		s.discard(stored)
		return ErrNotFound
	}

	if stored != nil && existing.ImagePath != nil {
		s.removeFile(*existing.ImagePath)
	}

	s.log.Info().Int64("article_id", id).Bool("image_replaced", stored != nil).Msg("Article updated")
	return nil
}

func (s *contentService) DeleteArticle(ctx context.Context, id int64) error {
	existing, err := s.articles.GetByID(ctx, id, false)
	if err != nil {
		return fmt.Errorf("failed to get article %d: %w", id, err)
	}
	if existing == nil {
		return ErrNotFound
	}

	ok, err := s.articles.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete article %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}

	if existing.ImagePath != nil {
		s.removeFile(*existing.ImagePath)
	}

	s.log.Info().Int64("article_id", id).Msg("Article deleted")
	return nil
}

func (s *contentService) storeImage(ctx context.Context, image *media.Upload) (*media.StoredFile, error) {
	if image == nil {
		return nil, nil
	}
	stored, err := s.store.Save(ctx, *image)
	if err != nil {
		return nil, uploadError("image", image.Name, err)
	}
	return stored, nil
}

func (s *contentService) discard(file *media.StoredFile) {
	if file != nil {
		s.removeFile(file.Path)
	}
}

// removeFile is best effort: the row no longer references the file.
func (s *contentService) removeFile(name string) {
	if err := s.store.Delete(name); err != nil {
		s.log.Warn().Err(err).Str("image_path", name).Msg("Failed to remove article image")
	}
}

func newArticle(in *models.ArticleInput) *models.Article {
	return &models.Article{
		Title:   in.Title,
		Content: in.Content,
		Excerpt: in.Excerpt,
		Status:  in.Status,
	}
}

// FAQs

func (s *contentService) ListPublicFAQs(ctx context.Context) ([]*models.FAQ, error) {
	return s.listFAQs(ctx, true)
}

func (s *contentService) ListFAQs(ctx context.Context) ([]*models.FAQ, error) {
	return s.listFAQs(ctx, false)
}

func (s *contentService) listFAQs(ctx context.Context, activeOnly bool) ([]*models.FAQ, error) {
	faqs, err := s.faqs.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	return faqs, nil
}

func (s *contentService) GetFAQ(ctx context.Context, id int64) (*models.FAQ, error) {
	faq, err := s.faqs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get faq %d: %w", id, err)
	}
	if faq == nil {
		return nil, ErrNotFound
	}
	return faq, nil
}

func (s *contentService) CreateFAQ(ctx context.Context, input *models.FAQInput) (int64, error) {
	if errs := s.validator.ValidateFAQ(input); len(errs) > 0 {
		return 0, invalidInput(errs)
	}

	id, err := s.faqs.Create(ctx, newFAQ(input))
	if err != nil {
		return 0, fmt.Errorf("failed to create faq: %w", err)
	}

	s.log.Info().Int64("faq_id", id).Msg("FAQ created")
	return id, nil
}

func (s *contentService) UpdateFAQ(ctx context.Context, id int64, input *models.FAQInput) error {
	if errs := s.validator.ValidateFAQ(input); len(errs) > 0 {
		return invalidInput(errs)
	}

	faq := newFAQ(input)
	faq.ID = id
	ok, err := s.faqs.Update(ctx, faq)
	if err != nil {
		return fmt.Errorf("failed to update faq %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *contentService) DeleteFAQ(ctx context.Context, id int64) error {
	ok, err := s.faqs.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete faq %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func newFAQ(in *models.FAQInput) *models.FAQ {
	return &models.FAQ{
		Question:   in.Question,
		Answer:     in.Answer,
		OrderIndex: in.OrderIndex,
		Status:     in.Status,
	}
}
