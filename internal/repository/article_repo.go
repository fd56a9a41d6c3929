package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/news-cms-api/internal/database"
	"github.com/news-cms-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// articleColumns are the article fields selected on every read path
const articleColumns = `a.id, a.title, a.subtitle, a.content, a.summary, a.cover_image_url,
	a.category_id, a.author_id, a.is_published, a.is_featured, a.views, a.created_at`

// relationColumns are the joined category and public author fields.
// Only the public subset of the author row is ever selected here.
const relationColumns = `c.id, c.name, c.slug,
	u.id, u.first_name, u.last_name, u.profile_image_url`

// List returns one page of articles matching the filter plus the total
// count of all matches. The count runs over the same predicate as the
// page query so it never degrades to the page length. Results are
// ordered newest first, ties broken by id descending.
func (r *articleRepo) List(ctx context.Context, filter ArticleFilter, limit, offset int) ([]models.ArticleWithRelations, int, error) {
	where, args := filter.SQL()

	var total int
	countQuery := "SELECT COUNT(*) FROM articles a" + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM articles a
		LEFT JOIN categories c ON c.id = a.category_id
		LEFT JOIN users u ON u.id = a.author_id
		%s
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $%d OFFSET $%d
	`, articleColumns, relationColumns, where, len(args)+1, len(args)+2)

	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	items := make([]models.ArticleWithRelations, 0, limit)
	for rows.Next() {
		item, err := scanArticleWithRelations(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// GetByID retrieves a single article with its relations attached
func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.ArticleWithRelations, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM articles a
		LEFT JOIN categories c ON c.id = a.category_id
		LEFT JOIN users u ON u.id = a.author_id
		WHERE a.id = $1
	`, articleColumns, relationColumns)

	item, err := scanArticleWithRelations(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Create inserts a new article. ID, Views and CreatedAt are assigned by
// the store and written back into the given article.
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (title, subtitle, content, summary, cover_image_url,
			category_id, author_id, is_published, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, views, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		article.Title, article.Subtitle, article.Content, article.Summary,
		article.CoverImageURL, article.CategoryID, article.AuthorID,
		article.IsPublished, article.IsFeatured,
	).Scan(&article.ID, &article.Views, &article.CreatedAt)
}

// Update applies the non-nil fields of updates to the article and
// returns the updated row, or nil if no article has the given id.
// ID, Views and CreatedAt are never part of the SET list.
func (r *articleRepo) Update(ctx context.Context, id int64, updates *models.UpdateArticleRequest) (*models.Article, error) {
	set := make([]string, 0, 9)
	args := make([]interface{}, 0, 10)

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if updates.Title != nil {
		add("title", *updates.Title)
	}
	if updates.Subtitle != nil {
		add("subtitle", *updates.Subtitle)
	}
	if updates.Content != nil {
		add("content", *updates.Content)
	}
	if updates.Summary != nil {
		add("summary", *updates.Summary)
	}
	if updates.CoverImageURL != nil {
		add("cover_image_url", *updates.CoverImageURL)
	}
	if updates.CategoryID != nil {
		add("category_id", *updates.CategoryID)
	}
	if updates.AuthorID != nil {
		add("author_id", *updates.AuthorID)
	}
	if updates.IsPublished != nil {
		add("is_published", *updates.IsPublished)
	}
	if updates.IsFeatured != nil {
		add("is_featured", *updates.IsFeatured)
	}

	var query string
	if len(set) == 0 {
		// No fields supplied: a no-op merge still reports the current row
		query = fmt.Sprintf("SELECT %s FROM articles a WHERE a.id = $1", articleColumns)
		args = []interface{}{id}
	} else {
		args = append(args, id)
		query = fmt.Sprintf(`
			UPDATE articles SET %s WHERE id = $%d
			RETURNING id, title, subtitle, content, summary, cover_image_url,
				category_id, author_id, is_published, is_featured, views, created_at
		`, strings.Join(set, ", "), len(args))
	}

	var article models.Article
	var subtitle sql.NullString
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&article.ID, &article.Title, &subtitle, &article.Content, &article.Summary,
		&article.CoverImageURL, &article.CategoryID, &article.AuthorID,
		&article.IsPublished, &article.IsFeatured, &article.Views, &article.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if subtitle.Valid {
		article.Subtitle = &subtitle.String
	}
	return &article, nil
}

// Delete removes the article. Deleting a missing id is not an error.
func (r *articleRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	return err
}

// IncrementViews atomically bumps the view counter by one. The addition
// is evaluated by the store, so concurrent increments are never lost.
// Returns false when no article has the given id.
func (r *articleRepo) IncrementViews(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "UPDATE articles SET views = views + 1 WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanArticleWithRelations scans an article row with its left-joined
// category and author columns. A failed join leaves the relation nil.
func scanArticleWithRelations(row rowScanner) (*models.ArticleWithRelations, error) {
	var item models.ArticleWithRelations
	var subtitle sql.NullString

	var catID sql.NullInt64
	var catName, catSlug sql.NullString

	var authorID, firstName, lastName, profileImageURL sql.NullString

	err := row.Scan(
		&item.ID, &item.Title, &subtitle, &item.Content, &item.Summary,
		&item.CoverImageURL, &item.CategoryID, &item.AuthorID,
		&item.IsPublished, &item.IsFeatured, &item.Views, &item.CreatedAt,
		&catID, &catName, &catSlug,
		&authorID, &firstName, &lastName, &profileImageURL,
	)
	if err != nil {
		return nil, err
	}

	if subtitle.Valid {
		item.Subtitle = &subtitle.String
	}

	if catID.Valid {
		item.Category = &models.Category{
			ID:   catID.Int64,
			Name: catName.String,
			Slug: catSlug.String,
		}
	}

	if authorID.Valid {
		author := &models.PublicUser{ID: authorID.String}
		if firstName.Valid {
			author.FirstName = &firstName.String
		}
		if lastName.Valid {
			author.LastName = &lastName.String
		}
		if profileImageURL.Valid {
			author.ProfileImageURL = &profileImageURL.String
		}
		item.Author = author
	}

	return &item, nil
}
