package models

import (
	"time"
)

// Article represents a news article in the system
type Article struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Subtitle      *string   `json:"subtitle" db:"subtitle"`
	Content       string    `json:"content" db:"content"`
	Summary       string    `json:"summary" db:"summary"`
	CoverImageURL string    `json:"coverImageUrl" db:"cover_image_url"`
	CategoryID    int64     `json:"categoryId" db:"category_id"`
	AuthorID      string    `json:"authorId" db:"author_id"`
	IsPublished   bool      `json:"isPublished" db:"is_published"`
	IsFeatured    bool      `json:"isFeatured" db:"is_featured"`
	Views         int       `json:"views" db:"views"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// ArticleWithRelations is an article joined with its category and the
// public projection of its author. Either relation may be null when the
// referenced row cannot be resolved.
type ArticleWithRelations struct {
	Article
	Category *Category   `json:"category"`
	Author   *PublicUser `json:"author"`
}

// PaginatedArticles is the envelope returned by list queries. Page and
// Limit echo the effective values used after defaulting, so callers can
// derive hasNext = page*limit < total.
type PaginatedArticles struct {
	Items []ArticleWithRelations `json:"items"`
	Total int                    `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

// CreateArticleRequest is the payload for creating an article.
// ID, CreatedAt and Views are system-assigned and cannot be supplied.
type CreateArticleRequest struct {
	Title         string  `json:"title"`
	Subtitle      *string `json:"subtitle"`
	Content       string  `json:"content"`
	Summary       string  `json:"summary"`
	CoverImageURL string  `json:"coverImageUrl"`
	CategoryID    int64   `json:"categoryId"`
	AuthorID      string  `json:"authorId"`
	IsPublished   *bool   `json:"isPublished"`
	IsFeatured    *bool   `json:"isFeatured"`
}

// UpdateArticleRequest is a partial update. Nil fields are left untouched.
// ID, CreatedAt and Views are never updatable through this path.
type UpdateArticleRequest struct {
	Title         *string `json:"title"`
	Subtitle      *string `json:"subtitle"`
	Content       *string `json:"content"`
	Summary       *string `json:"summary"`
	CoverImageURL *string `json:"coverImageUrl"`
	CategoryID    *int64  `json:"categoryId"`
	AuthorID      *string `json:"authorId"`
	IsPublished   *bool   `json:"isPublished"`
	IsFeatured    *bool   `json:"isFeatured"`
}
