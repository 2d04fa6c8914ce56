package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/company-site-api/internal/models"
	"github.com/company-site-api/internal/repository"
)

// Verify interface compliance
var (
	_ repository.AdminRepository    = (*MockAdminRepository)(nil)
	_ repository.CompanyRepository  = (*MockCompanyRepository)(nil)
	_ repository.CategoryRepository = (*MockCategoryRepository)(nil)
	_ repository.ProductRepository  = (*MockProductRepository)(nil)
	_ repository.ArticleRepository  = (*MockArticleRepository)(nil)
	_ repository.FAQRepository      = (*MockFAQRepository)(nil)
)

// NewRepositories wires a full set of in-memory repositories
func NewRepositories() (*repository.Repositories, *Store) {
	store := &Store{
		Admin:    NewMockAdminRepository(),
		Company:  NewMockCompanyRepository(),
		Category: NewMockCategoryRepository(),
		Article:  NewMockArticleRepository(),
		FAQ:      NewMockFAQRepository(),
	}
	store.Product = NewMockProductRepository(store.Category)

	return &repository.Repositories{
		Admin:    store.Admin,
		Company:  store.Company,
		Category: store.Category,
		Product:  store.Product,
		Article:  store.Article,
		FAQ:      store.FAQ,
	}, store
}

// Store gives tests access to the concrete mocks behind Repositories
type Store struct {
	Admin    *MockAdminRepository
	Company  *MockCompanyRepository
	Category *MockCategoryRepository
	Product  *MockProductRepository
	Article  *MockArticleRepository
	FAQ      *MockFAQRepository
}

// MockAdminRepository is a mock implementation of AdminRepository
type MockAdminRepository struct {
	mu     sync.Mutex
	Admins map[int64]*models.Admin
	Err    error
	nextID int64
}

func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{Admins: make(map[int64]*models.Admin)}
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	admin.ID = m.nextID
	admin.CreatedAt = time.Now()
	stored := *admin
	m.Admins[admin.ID] = &stored
	return nil
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if a, ok := m.Admins[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, nil
}

func (m *MockAdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, a := range m.Admins {
		if a.Username == username {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockAdminRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	a, ok := m.Admins[id]
	if !ok {
		return false, nil
	}
	a.PasswordHash = passwordHash
	return true, nil
}

// MockCompanyRepository is a mock implementation of CompanyRepository
type MockCompanyRepository struct {
	mu      sync.Mutex
	Profile *models.CompanyProfile
	Err     error
}

func NewMockCompanyRepository() *MockCompanyRepository {
	return &MockCompanyRepository{}
}

func (m *MockCompanyRepository) Get(ctx context.Context) (*models.CompanyProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Profile == nil {
		return nil, nil
	}
	copied := *m.Profile
	return &copied, nil
}

func (m *MockCompanyRepository) Update(ctx context.Context, profile *models.CompanyProfile) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if m.Profile == nil || profile.ID != m.Profile.ID {
		return false, nil
	}
	copied := *profile
	m.Profile = &copied
	return true, nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mu         sync.Mutex
	Categories map[int64]*models.Category
	Err        error
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{Categories: make(map[int64]*models.Category)}
}

// Add registers a category with the given id
func (m *MockCategoryRepository) Add(id int64, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Categories[id] = &models.Category{ID: id, Name: name}
}

func (m *MockCategoryRepository) name(id *int64) *string {
	if id == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.Categories[*id]; ok {
		name := c.Name
		return &name
	}
	return nil
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	categories := make([]*models.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		copied := *c
		categories = append(categories, &copied)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mu         sync.Mutex
	Products   map[int64]*models.Product
	Images     map[int64]*models.ProductImage
	categories *MockCategoryRepository

	Err            error // returned by every call when set
	AddImageErr    error // returned by AddImage only
	AddImageFailAt int   // when > 0, the n-th AddImage call fails with AddImageErr
	addImageCalls  int

	nextID      int64
	nextImageID int64
	clock       time.Time
}

func NewMockProductRepository(categories *MockCategoryRepository) *MockProductRepository {
	return &MockProductRepository{
		Products:   make(map[int64]*models.Product),
		Images:     make(map[int64]*models.ProductImage),
		categories: categories,
		clock:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *MockProductRepository) view(p *models.Product) *models.ProductView {
	v := &models.ProductView{Product: *p, Images: make([]string, 0)}
	if m.categories != nil {
		v.CategoryName = m.categories.name(p.CategoryID)
	}
	for _, img := range m.sortedImages(p.ID) {
		v.Images = append(v.Images, img.ImagePath)
	}
	return v
}

func (m *MockProductRepository) sortedImages(productID int64) []*models.ProductImage {
	images := make([]*models.ProductImage, 0)
	for _, img := range m.Images {
		if img.ProductID == productID {
			images = append(images, img)
		}
	}
	sort.Slice(images, func(i, j int) bool { return images[i].ID < images[j].ID })
	return images
}

func (m *MockProductRepository) List(ctx context.Context, activeOnly bool) ([]*models.ProductView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	views := make([]*models.ProductView, 0, len(m.Products))
	for _, p := range m.Products {
		if activeOnly && p.Status != models.ProductStatusActive {
			continue
		}
		views = append(views, m.view(p))
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].ID > views[j].ID
		}
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views, nil
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64, activeOnly bool) (*models.ProductView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.Products[id]
	if !ok || (activeOnly && p.Status != models.ProductStatusActive) {
		return nil, nil
	}
	return m.view(p), nil
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.nextID++
	// Strictly increasing timestamps keep newest-first ordering deterministic.
	m.clock = m.clock.Add(time.Second)
	product.ID = m.nextID
	product.CreatedAt = m.clock
	stored := *product
	m.Products[product.ID] = &stored
	return product.ID, nil
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	existing, ok := m.Products[product.ID]
	if !ok {
		return false, nil
	}
	updated := *product
	updated.CreatedAt = existing.CreatedAt
	m.Products[product.ID] = &updated
	return true, nil
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Products[id]; !ok {
		return false, nil
	}
	delete(m.Products, id)
	return true, nil
}

func (m *MockProductRepository) ListImages(ctx context.Context, productID int64) ([]*models.ProductImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	images := m.sortedImages(productID)
	copies := make([]*models.ProductImage, 0, len(images))
	for _, img := range images {
		copied := *img
		copies = append(copies, &copied)
	}
	return copies, nil
}

func (m *MockProductRepository) AddImage(ctx context.Context, image *models.ProductImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.addImageCalls++
	if m.AddImageErr != nil && (m.AddImageFailAt == 0 || m.addImageCalls == m.AddImageFailAt) {
		return m.AddImageErr
	}
	if _, ok := m.Products[image.ProductID]; !ok {
		return errForeignKey
	}
	m.nextImageID++
	image.ID = m.nextImageID
	stored := *image
	m.Images[image.ID] = &stored
	return nil
}

func (m *MockProductRepository) DeleteImage(ctx context.Context, imageID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.Images, imageID)
	return nil
}

func (m *MockProductRepository) DeleteImages(ctx context.Context, productID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for id, img := range m.Images {
		if img.ProductID == productID {
			delete(m.Images, id)
		}
	}
	return nil
}

// ImageRows returns the stored image rows of a product in upload order
func (m *MockProductRepository) ImageRows(productID int64) []models.ProductImage {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := make([]models.ProductImage, 0)
	for _, img := range m.sortedImages(productID) {
		rows = append(rows, *img)
	}
	return rows
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	mu       sync.Mutex
	Articles map[int64]*models.Article
	Err      error
	nextID   int64
	clock    time.Time
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[int64]*models.Article),
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *MockArticleRepository) List(ctx context.Context, publishedOnly bool) ([]*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	articles := make([]*models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		if publishedOnly && a.Status != models.ArticleStatusPublished {
			continue
		}
		copied := *a
		articles = append(articles, &copied)
	}
	sort.Slice(articles, func(i, j int) bool {
		if articles[i].CreatedAt.Equal(articles[j].CreatedAt) {
			return articles[i].ID > articles[j].ID
		}
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	return articles, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64, publishedOnly bool) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	a, ok := m.Articles[id]
	if !ok || (publishedOnly && a.Status != models.ArticleStatusPublished) {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.nextID++
	m.clock = m.clock.Add(time.Second)
	article.ID = m.nextID
	article.CreatedAt = m.clock
	article.UpdatedAt = m.clock
	stored := *article
	m.Articles[article.ID] = &stored
	return article.ID, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article, replaceImage bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	existing, ok := m.Articles[article.ID]
	if !ok {
		return false, nil
	}
	m.clock = m.clock.Add(time.Second)
	updated := *article
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = m.clock
	if !replaceImage {
		updated.ImagePath = existing.ImagePath
	}
	m.Articles[article.ID] = &updated
	article.UpdatedAt = m.clock
	return true, nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Articles[id]; !ok {
		return false, nil
	}
	delete(m.Articles, id)
	return true, nil
}

// MockFAQRepository is a mock implementation of FAQRepository
type MockFAQRepository struct {
	mu     sync.Mutex
	FAQs   map[int64]*models.FAQ
	Err    error
	nextID int64
}

func NewMockFAQRepository() *MockFAQRepository {
	return &MockFAQRepository{FAQs: make(map[int64]*models.FAQ)}
}

func (m *MockFAQRepository) List(ctx context.Context, activeOnly bool) ([]*models.FAQ, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	faqs := make([]*models.FAQ, 0, len(m.FAQs))
	for _, f := range m.FAQs {
		if activeOnly && f.Status != models.FAQStatusActive {
			continue
		}
		copied := *f
		faqs = append(faqs, &copied)
	}
	sort.Slice(faqs, func(i, j int) bool {
		if faqs[i].OrderIndex == faqs[j].OrderIndex {
			return faqs[i].ID < faqs[j].ID
		}
		return faqs[i].OrderIndex < faqs[j].OrderIndex
	})
	return faqs, nil
}

func (m *MockFAQRepository) GetByID(ctx context.Context, id int64) (*models.FAQ, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if f, ok := m.FAQs[id]; ok {
		copied := *f
		return &copied, nil
	}
	return nil, nil
}

func (m *MockFAQRepository) Create(ctx context.Context, faq *models.FAQ) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.nextID++
	faq.ID = m.nextID
	stored := *faq
	m.FAQs[faq.ID] = &stored
	return faq.ID, nil
}

func (m *MockFAQRepository) Update(ctx context.Context, faq *models.FAQ) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.FAQs[faq.ID]; !ok {
		return false, nil
	}
	stored := *faq
	m.FAQs[faq.ID] = &stored
	return true, nil
}

func (m *MockFAQRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.FAQs[id]; !ok {
		return false, nil
	}
	delete(m.FAQs, id)
	return true, nil
}
