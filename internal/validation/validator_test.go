package validation_test

import (
	"testing"

	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/validation"
)

func validCreateArticle() *models.CreateArticleRequest {
	return &models.CreateArticleRequest{
		Title:         "Solar plant opens",
		Content:       "Full story...",
		Summary:       "A new plant opened.",
		CoverImageURL: "https://example.com/cover.jpg",
		CategoryID:    1,
		AuthorID:      "user-1",
	}
}

func TestValidateCreateArticle_Valid(t *testing.T) {
	if errs := validation.ValidateCreateArticle(validCreateArticle()); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

func TestValidateCreateArticle_MissingFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.CreateArticleRequest)
		wantField string
	}{
		{"missing title", func(r *models.CreateArticleRequest) { r.Title = "" }, "title"},
		{"blank title", func(r *models.CreateArticleRequest) { r.Title = "   " }, "title"},
		{"missing content", func(r *models.CreateArticleRequest) { r.Content = "" }, "content"},
		{"missing summary", func(r *models.CreateArticleRequest) { r.Summary = "" }, "summary"},
		{"missing cover image", func(r *models.CreateArticleRequest) { r.CoverImageURL = "" }, "coverImageUrl"},
		{"zero categoryId", func(r *models.CreateArticleRequest) { r.CategoryID = 0 }, "categoryId"},
		{"negative categoryId", func(r *models.CreateArticleRequest) { r.CategoryID = -1 }, "categoryId"},
		{"missing authorId", func(r *models.CreateArticleRequest) { r.AuthorID = "" }, "authorId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateArticle()
			tt.mutate(req)

			errs := validation.ValidateCreateArticle(req)
			if len(errs) == 0 {
				t.Fatal("Expected a validation error")
			}
			if errs.First().Field != tt.wantField {
				t.Errorf("Expected first failing field %q, got %q", tt.wantField, errs.First().Field)
			}
		})
	}
}

func TestValidateCreateArticle_FirstFailingFieldWins(t *testing.T) {
	req := validCreateArticle()
	req.Title = ""
	req.Content = ""

	errs := validation.ValidateCreateArticle(req)
	if len(errs) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(errs))
	}
	if errs.First().Field != "title" {
		t.Errorf("Expected title first, got %q", errs.First().Field)
	}
	if errs.Error() != "title is required" {
		t.Errorf("Error() should carry the first message, got %q", errs.Error())
	}
}

func TestValidateUpdateArticle(t *testing.T) {
	empty := ""
	blank := "   "
	valid := "Updated title"
	var badCat int64 = 0

	tests := []struct {
		name      string
		req       *models.UpdateArticleRequest
		wantField string // empty means no error expected
	}{
		{"no fields is fine", &models.UpdateArticleRequest{}, ""},
		{"valid title", &models.UpdateArticleRequest{Title: &valid}, ""},
		{"empty title rejected", &models.UpdateArticleRequest{Title: &empty}, "title"},
		{"blank content rejected", &models.UpdateArticleRequest{Content: &blank}, "content"},
		{"non-positive categoryId rejected", &models.UpdateArticleRequest{CategoryID: &badCat}, "categoryId"},
		{"empty authorId rejected", &models.UpdateArticleRequest{AuthorID: &empty}, "authorId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateUpdateArticle(tt.req)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("Expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) == 0 {
				t.Fatal("Expected a validation error")
			}
			if errs.First().Field != tt.wantField {
				t.Errorf("Expected field %q, got %q", tt.wantField, errs.First().Field)
			}
		})
	}
}

func TestValidateCreateCategory(t *testing.T) {
	tests := []struct {
		name      string
		req       *models.CreateCategoryRequest
		wantField string
	}{
		{"valid", &models.CreateCategoryRequest{Name: "Tech", Slug: "tech"}, ""},
		{"valid hyphenated slug", &models.CreateCategoryRequest{Name: "World News", Slug: "world-news"}, ""},
		{"missing name", &models.CreateCategoryRequest{Slug: "tech"}, "name"},
		{"missing slug", &models.CreateCategoryRequest{Name: "Tech"}, "slug"},
		{"uppercase slug", &models.CreateCategoryRequest{Name: "Tech", Slug: "Tech"}, "slug"},
		{"slug with spaces", &models.CreateCategoryRequest{Name: "Tech", Slug: "tech news"}, "slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateCreateCategory(tt.req)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("Expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) == 0 {
				t.Fatal("Expected a validation error")
			}
			if errs.First().Field != tt.wantField {
				t.Errorf("Expected field %q, got %q", tt.wantField, errs.First().Field)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	errs := validation.ValidateLogin(&models.LoginRequest{})
	if len(errs) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(errs))
	}
	if errs.First().Field != "email" {
		t.Errorf("Expected email first, got %q", errs.First().Field)
	}

	errs = validation.ValidateLogin(&models.LoginRequest{Email: "a@b.com", Password: "pw"})
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}
