package repository

import (
	"fmt"
	"strings"

	"github.com/news-cms-api/internal/models"
)

// clauseKind tags the supported filter predicates over article attributes
type clauseKind int

const (
	clauseCategoryEquals clauseKind = iota
	clauseFeaturedEquals
)

// Clause is a single optional filter predicate. Clauses are combined
// with logical AND; an empty filter matches all articles.
type Clause struct {
	kind     clauseKind
	category int64
	featured bool
}

// CategoryEquals matches articles belonging to the given category.
func CategoryEquals(categoryID int64) Clause {
	return Clause{kind: clauseCategoryEquals, category: categoryID}
}

// FeaturedEquals matches articles whose featured flag equals v.
func FeaturedEquals(v bool) Clause {
	return Clause{kind: clauseFeaturedEquals, featured: v}
}

// ArticleFilter is an ordered list of clauses ANDed together.
type ArticleFilter []Clause

// SQL renders the filter as a WHERE fragment over the aliased articles
// table "a", with positional arguments starting at $1. An empty filter
// renders to an empty fragment and no arguments.
func (f ArticleFilter) SQL() (string, []interface{}) {
	if len(f) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(f))
	args := make([]interface{}, 0, len(f))

	for _, c := range f {
		switch c.kind {
		case clauseCategoryEquals:
			parts = append(parts, fmt.Sprintf("a.category_id = $%d", len(args)+1))
			args = append(args, c.category)
		case clauseFeaturedEquals:
			parts = append(parts, fmt.Sprintf("a.is_featured = $%d", len(args)+1))
			args = append(args, c.featured)
		}
	}

	return " WHERE " + strings.Join(parts, " AND "), args
}

// Matches evaluates the filter in memory against a single article.
// This is the same predicate SQL renders, usable without a store.
func (f ArticleFilter) Matches(a *models.Article) bool {
	for _, c := range f {
		switch c.kind {
		case clauseCategoryEquals:
			if a.CategoryID != c.category {
				return false
			}
		case clauseFeaturedEquals:
			if a.IsFeatured != c.featured {
				return false
			}
		}
	}
	return true
}
