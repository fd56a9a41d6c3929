package service

import (
	"context"

	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/repository"
	"github.com/news-cms-api/internal/validation"
	"github.com/rs/zerolog"
)

// categoryService is the concrete implementation of CategoryService
type categoryService struct {
	categories repository.CategoryRepository
	log        zerolog.Logger
}

func newCategoryService(repos *repository.Repositories, log zerolog.Logger) CategoryService {
	return &categoryService{
		categories: repos.Category,
		log:        log.With().Str("service", "category").Logger(),
	}
}

// List retrieves all categories
func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

// GetBySlug retrieves a category by slug
func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create validates and stores a new category
func (s *categoryService) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	if errs := validation.ValidateCreateCategory(req); len(errs) > 0 {
		return nil, errs
	}

	category := &models.Category{Name: req.Name, Slug: req.Slug}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	s.log.Info().Int64("category_id", category.ID).Str("slug", category.Slug).Msg("Category created")
	return category, nil
}
