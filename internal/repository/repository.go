package repository

import (
	"context"

	"github.com/news-cms-api/internal/database"
	"github.com/news-cms-api/internal/models"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Count(ctx context.Context) (int, error)
}

// ArticleRepository defines the interface for article data operations.
// List is a single paged-query operation with two outputs: the page of
// matching articles with relations attached, and the total count of all
// matches independent of the page window.
type ArticleRepository interface {
	List(ctx context.Context, filter ArticleFilter, limit, offset int) ([]models.ArticleWithRelations, int, error)
	GetByID(ctx context.Context, id int64) (*models.ArticleWithRelations, error)
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, id int64, updates *models.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
}

// SessionRepository defines the interface for session data operations
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Category CategoryRepository
	Article  ArticleRepository
	User     UserRepository
	Session  SessionRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Category: NewCategoryRepo(db),
		Article:  NewArticleRepo(db),
		User:     NewUserRepo(db),
		Session:  NewSessionRepo(db),
	}
}
