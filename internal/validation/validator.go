package validation

import (
	"regexp"
	"strings"

	"github.com/news-cms-api/internal/models"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Errors is a list of validation errors. It implements error so services
// can surface the first failing field to the caller.
type Errors []ValidationError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return e[0].Message
}

// First returns the first failing field's error
func (e Errors) First() ValidationError {
	return e[0]
}

// ValidateCreateArticle validates a create-article payload. ID,
// createdAt and views are system-assigned and not part of the input.
func ValidateCreateArticle(req *models.CreateArticleRequest) Errors {
	var errs Errors

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(req.Content) == "" {
		errs = append(errs, ValidationError{Field: "content", Message: "content is required"})
	}
	if strings.TrimSpace(req.Summary) == "" {
		errs = append(errs, ValidationError{Field: "summary", Message: "summary is required"})
	}
	if strings.TrimSpace(req.CoverImageURL) == "" {
		errs = append(errs, ValidationError{Field: "coverImageUrl", Message: "coverImageUrl is required"})
	}
	if req.CategoryID <= 0 {
		errs = append(errs, ValidationError{Field: "categoryId", Message: "categoryId must be a positive integer", Value: req.CategoryID})
	}
	if strings.TrimSpace(req.AuthorID) == "" {
		errs = append(errs, ValidationError{Field: "authorId", Message: "authorId is required"})
	}

	return errs
}

// ValidateUpdateArticle validates a partial article update. Absent
// fields are fine; supplied fields must still be well-formed.
func ValidateUpdateArticle(req *models.UpdateArticleRequest) Errors {
	var errs Errors

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "title must not be empty"})
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		errs = append(errs, ValidationError{Field: "content", Message: "content must not be empty"})
	}
	if req.Summary != nil && strings.TrimSpace(*req.Summary) == "" {
		errs = append(errs, ValidationError{Field: "summary", Message: "summary must not be empty"})
	}
	if req.CoverImageURL != nil && strings.TrimSpace(*req.CoverImageURL) == "" {
		errs = append(errs, ValidationError{Field: "coverImageUrl", Message: "coverImageUrl must not be empty"})
	}
	if req.CategoryID != nil && *req.CategoryID <= 0 {
		errs = append(errs, ValidationError{Field: "categoryId", Message: "categoryId must be a positive integer", Value: *req.CategoryID})
	}
	if req.AuthorID != nil && strings.TrimSpace(*req.AuthorID) == "" {
		errs = append(errs, ValidationError{Field: "authorId", Message: "authorId must not be empty"})
	}

	return errs
}

// ValidateCreateCategory validates a create-category payload
func ValidateCreateCategory(req *models.CreateCategoryRequest) Errors {
	var errs Errors

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	}
	if req.Slug == "" {
		errs = append(errs, ValidationError{Field: "slug", Message: "slug is required"})
	} else if !slugRegex.MatchString(req.Slug) {
		errs = append(errs, ValidationError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: req.Slug})
	}

	return errs
}

// ValidateLogin validates a login payload
func ValidateLogin(req *models.LoginRequest) Errors {
	var errs Errors

	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "email is required"})
	}
	if req.Password == "" {
		errs = append(errs, ValidationError{Field: "password", Message: "password is required"})
	}

	return errs
}
