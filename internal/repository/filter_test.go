package repository_test

import (
	"testing"

	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/repository"
)

func TestArticleFilter_SQL_Empty(t *testing.T) {
	var filter repository.ArticleFilter

	where, args := filter.SQL()
	if where != "" {
		t.Errorf("Expected empty WHERE fragment, got %q", where)
	}
	if len(args) != 0 {
		t.Errorf("Expected no args, got %v", args)
	}
}

func TestArticleFilter_SQL_SingleClause(t *testing.T) {
	filter := repository.ArticleFilter{repository.CategoryEquals(7)}

	where, args := filter.SQL()
	if where != " WHERE a.category_id = $1" {
		t.Errorf("Unexpected WHERE fragment: %q", where)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Errorf("Unexpected args: %v", args)
	}
}

func TestArticleFilter_SQL_Conjunction(t *testing.T) {
	filter := repository.ArticleFilter{
		repository.CategoryEquals(3),
		repository.FeaturedEquals(true),
	}

	where, args := filter.SQL()
	if where != " WHERE a.category_id = $1 AND a.is_featured = $2" {
		t.Errorf("Unexpected WHERE fragment: %q", where)
	}
	if len(args) != 2 {
		t.Fatalf("Expected 2 args, got %d", len(args))
	}
	if args[0] != int64(3) || args[1] != true {
		t.Errorf("Unexpected args: %v", args)
	}
}

func TestArticleFilter_Matches(t *testing.T) {
	article := &models.Article{ID: 1, CategoryID: 3, IsFeatured: true}

	tests := []struct {
		name   string
		filter repository.ArticleFilter
		want   bool
	}{
		{"empty filter matches all", nil, true},
		{"category match", repository.ArticleFilter{repository.CategoryEquals(3)}, true},
		{"category mismatch", repository.ArticleFilter{repository.CategoryEquals(4)}, false},
		{"featured match", repository.ArticleFilter{repository.FeaturedEquals(true)}, true},
		{"featured mismatch", repository.ArticleFilter{repository.FeaturedEquals(false)}, false},
		{
			"conjunction requires all clauses",
			repository.ArticleFilter{repository.CategoryEquals(3), repository.FeaturedEquals(false)},
			false,
		},
		{
			"conjunction all satisfied",
			repository.ArticleFilter{repository.CategoryEquals(3), repository.FeaturedEquals(true)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(article); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
