package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/repository"
)

// Repos bundles in-memory repositories wired together so the article
// mock can resolve its category and author relations.
type Repos struct {
	Article  *MockArticleRepository
	Category *MockCategoryRepository
	User     *MockUserRepository
	Session  *MockSessionRepository
}

// New creates wired mock repositories
func New() *Repos {
	categories := NewMockCategoryRepository()
	users := NewMockUserRepository()
	return &Repos{
		Article:  NewMockArticleRepository(categories, users),
		Category: categories,
		User:     users,
		Session:  NewMockSessionRepository(),
	}
}

// Bundle exposes the mocks through the repository interfaces
func (r *Repos) Bundle() *repository.Repositories {
	return &repository.Repositories{
		Article:  r.Article,
		Category: r.Category,
		User:     r.User,
		Session:  r.Session,
	}
}

// MockCategoryRepository is an in-memory CategoryRepository
type MockCategoryRepository struct {
	mu         sync.Mutex
	Categories map[int64]*models.Category
	nextID     int64
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{Categories: make(map[int64]*models.Category)}
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.Categories {
		if c.Slug == slug {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	category.ID = m.nextID
	copied := *category
	m.Categories[category.ID] = &copied
	return nil
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Categories), nil
}

// MockUserRepository is an in-memory UserRepository
type MockUserRepository struct {
	mu    sync.Mutex
	Users map[string]*models.User
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.Users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.Users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *user
	m.Users[user.ID] = &copied
	return nil
}

// MockSessionRepository is an in-memory SessionRepository
type MockSessionRepository struct {
	mu       sync.Mutex
	Sessions map[string]*models.Session
}

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{Sessions: make(map[string]*models.Session)}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *session
	m.Sessions[session.ID] = &copied
	return nil
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.Sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (m *MockSessionRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.Sessions, id)
	return nil
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, s := range m.Sessions {
		if s.Expired() {
			delete(m.Sessions, id)
			n++
		}
	}
	return n, nil
}

// MockArticleRepository is an in-memory ArticleRepository. The mutex
// makes the view-counter increment as atomic as the real store's
// UPDATE expression, so concurrency tests against the mock are honest.
type MockArticleRepository struct {
	mu         sync.Mutex
	Articles   map[int64]*models.Article
	nextID     int64
	categories *MockCategoryRepository
	users      *MockUserRepository

	// Err, when set, is returned by every operation
	Err error
}

func NewMockArticleRepository(categories *MockCategoryRepository, users *MockUserRepository) *MockArticleRepository {
	return &MockArticleRepository{
		Articles:   make(map[int64]*models.Article),
		categories: categories,
		users:      users,
	}
}

func (m *MockArticleRepository) List(ctx context.Context, filter repository.ArticleFilter, limit, offset int) ([]models.ArticleWithRelations, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}

	m.mu.Lock()
	matches := make([]*models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		if filter.Matches(a) {
			copied := *a
			matches = append(matches, &copied)
		}
	}
	m.mu.Unlock()

	// Newest first, id descending on ties
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].ID > matches[j].ID
	})

	total := len(matches)

	if offset >= len(matches) {
		matches = nil
	} else {
		matches = matches[offset:]
	}
	if limit < len(matches) {
		matches = matches[:limit]
	}

	items := make([]models.ArticleWithRelations, 0, len(matches))
	for _, a := range matches {
		items = append(items, m.withRelations(a))
	}
	return items, total, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.ArticleWithRelations, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	a, ok := m.Articles[id]
	if !ok {
		m.mu.Unlock()
		return nil, nil
	}
	copied := *a
	m.mu.Unlock()

	item := m.withRelations(&copied)
	return &item, nil
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	article.ID = m.nextID
	article.Views = 0
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now()
	}
	copied := *article
	m.Articles[article.ID] = &copied
	return nil
}

func (m *MockArticleRepository) Update(ctx context.Context, id int64, updates *models.UpdateArticleRequest) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}

	if updates.Title != nil {
		a.Title = *updates.Title
	}
	if updates.Subtitle != nil {
		a.Subtitle = updates.Subtitle
	}
	if updates.Content != nil {
		a.Content = *updates.Content
	}
	if updates.Summary != nil {
		a.Summary = *updates.Summary
	}
	if updates.CoverImageURL != nil {
		a.CoverImageURL = *updates.CoverImageURL
	}
	if updates.CategoryID != nil {
		a.CategoryID = *updates.CategoryID
	}
	if updates.AuthorID != nil {
		a.AuthorID = *updates.AuthorID
	}
	if updates.IsPublished != nil {
		a.IsPublished = *updates.IsPublished
	}
	if updates.IsFeatured != nil {
		a.IsFeatured = *updates.IsFeatured
	}

	copied := *a
	return &copied, nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.Articles, id)
	return nil
}

func (m *MockArticleRepository) IncrementViews(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.Articles[id]
	if !ok {
		return false, nil
	}
	a.Views++
	return true, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Articles), nil
}

func (m *MockArticleRepository) withRelations(a *models.Article) models.ArticleWithRelations {
	item := models.ArticleWithRelations{Article: *a}

	m.categories.mu.Lock()
	if c, ok := m.categories.Categories[a.CategoryID]; ok {
		copied := *c
		item.Category = &copied
	}
	m.categories.mu.Unlock()

	m.users.mu.Lock()
	if u, ok := m.users.Users[a.AuthorID]; ok {
		item.Author = u.Public()
	}
	m.users.mu.Unlock()

	return item
}
