package service

import (
	"context"
	"errors"

	"github.com/news-cms-api/internal/config"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when a referenced entity does not exist
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials is returned when login fails
var ErrInvalidCredentials = errors.New("invalid email or password")

// ArticleListParams carries the raw query parameters of a list request.
// Values are the transport's string form; defaulting and parsing happen
// inside the service so the contract lives in one place.
type ArticleListParams struct {
	CategorySlug string
	IsFeatured   string // literal "true"/"false", anything else binds no filter
	Page         string
	Limit        string
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	List(ctx context.Context, params ArticleListParams) (*models.PaginatedArticles, error)
	Get(ctx context.Context, id int64) (*models.ArticleWithRelations, error)
	Create(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error)
	Update(ctx context.Context, id int64, req *models.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
	RecordView(ctx context.Context, id int64) error
}

// CategoryService defines the interface for category operations
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
}

// AuthService verifies and manages login sessions. The rest of the API
// only consumes the verified identity it produces.
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, *models.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Verify(ctx context.Context, sessionID string) (*models.User, error)
	StartCleanup(ctx context.Context)
	StopCleanup()
}

// Services holds all service interfaces
type Services struct {
	Article  ArticleService
	Category CategoryService
	Auth     AuthService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Article:  newArticleService(repos, log),
		Category: newCategoryService(repos, log),
		Auth:     newAuthService(repos, cfg, log),
	}
}
