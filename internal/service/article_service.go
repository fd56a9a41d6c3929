package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/lib/pq"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/repository"
	"github.com/news-cms-api/internal/validation"
	"github.com/rs/zerolog"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles   repository.ArticleRepository
	categories repository.CategoryRepository
	log        zerolog.Logger
}

func newArticleService(repos *repository.Repositories, log zerolog.Logger) ArticleService {
	return &articleService{
		articles:   repos.Article,
		categories: repos.Category,
		log:        log.With().Str("service", "article").Logger(),
	}
}

// List runs the paged article query. Filters are optional and ANDed
// together. An unknown category slug yields an empty successful result
// rather than an error: this layer does not distinguish "no articles in
// this category" from "unknown category".
func (s *articleService) List(ctx context.Context, params ArticleListParams) (*models.PaginatedArticles, error) {
	page := parsePositiveInt(params.Page, defaultPage)
	limit := parsePositiveInt(params.Limit, defaultLimit)
	offset := (page - 1) * limit

	var filter repository.ArticleFilter

	if params.CategorySlug != "" {
		category, err := s.categories.GetBySlug(ctx, params.CategorySlug)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return &models.PaginatedArticles{
				Items: []models.ArticleWithRelations{},
				Total: 0,
				Page:  page,
				Limit: limit,
			}, nil
		}
		filter = append(filter, repository.CategoryEquals(category.ID))
	}

	// Only the literal strings "true"/"false" bind a clause; absence
	// must not exclude unfeatured articles.
	switch params.IsFeatured {
	case "true":
		filter = append(filter, repository.FeaturedEquals(true))
	case "false":
		filter = append(filter, repository.FeaturedEquals(false))
	}

	items, total, err := s.articles.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	return &models.PaginatedArticles{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// Get retrieves a single article with relations
func (s *articleService) Get(ctx context.Context, id int64) (*models.ArticleWithRelations, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// Create validates and stores a new article. Booleans default to false
// when absent; id, views and createdAt are assigned by the store.
func (s *articleService) Create(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error) {
	if errs := validation.ValidateCreateArticle(req); len(errs) > 0 {
		return nil, errs
	}

	article := &models.Article{
		Title:         req.Title,
		Subtitle:      req.Subtitle,
		Content:       req.Content,
		Summary:       req.Summary,
		CoverImageURL: req.CoverImageURL,
		CategoryID:    req.CategoryID,
		AuthorID:      req.AuthorID,
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}
	if req.IsFeatured != nil {
		article.IsFeatured = *req.IsFeatured
	}

	if err := s.articles.Create(ctx, article); err != nil {
		if errs, ok := foreignKeyViolation(err); ok {
			return nil, errs
		}
		return nil, err
	}

	s.log.Info().Int64("article_id", article.ID).Str("title", article.Title).Msg("Article created")
	return article, nil
}

// Update merges a partial set of mutable fields into the article
func (s *articleService) Update(ctx context.Context, id int64, req *models.UpdateArticleRequest) (*models.Article, error) {
	if errs := validation.ValidateUpdateArticle(req); len(errs) > 0 {
		return nil, errs
	}

	article, err := s.articles.Update(ctx, id, req)
	if err != nil {
		if errs, ok := foreignKeyViolation(err); ok {
			return nil, errs
		}
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	s.log.Info().Int64("article_id", id).Msg("Article updated")
	return article, nil
}

// Delete removes the article. Idempotent: deleting an id that no longer
// exists succeeds.
func (s *articleService) Delete(ctx context.Context, id int64) error {
	if err := s.articles.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("article_id", id).Msg("Article deleted")
	return nil
}

// RecordView atomically increments the article's view counter
func (s *articleService) RecordView(ctx context.Context, id int64) error {
	found, err := s.articles.IncrementViews(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// parsePositiveInt parses s as a positive integer, falling back to def
// when absent, unparsable or non-positive.
func parsePositiveInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// foreignKeyViolation maps a Postgres FK violation to a validation
// error naming the offending field. A dangling categoryId/authorId is
// caller input, not an internal failure.
func foreignKeyViolation(err error) (validation.Errors, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23503" {
		return nil, false
	}

	field := "categoryId"
	if pqErr.Constraint == "articles_author_id_fkey" {
		field = "authorId"
	}
	return validation.Errors{{
		Field:   field,
		Message: field + " does not reference an existing record",
	}}, true
}
