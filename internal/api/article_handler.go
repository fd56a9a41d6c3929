package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// List handles GET /api/articles?categorySlug=&isFeatured=&limit=&page=
func (h *ArticleHandler) List(c *gin.Context) {
	result, err := h.services.Article.List(c.Request.Context(), service.ArticleListParams{
		CategorySlug: c.Query("categorySlug"),
		IsFeatured:   c.Query("isFeatured"),
		Page:         c.Query("page"),
		Limit:        c.Query("limit"),
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		respondServiceError(c, err, "Article not found")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get handles GET /api/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	article, err := h.services.Article.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Article not found")
		return
	}

	c.JSON(http.StatusOK, article)
}

// Create handles POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Article not found")
		return
	}

	c.JSON(http.StatusCreated, article)
}

// Update handles PUT /api/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	article, err := h.services.Article.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err, "Article not found")
		return
	}

	c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /api/articles/:id. Deleting an id that no
// longer exists still reports success.
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.services.Article.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Article not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// RecordView handles POST /api/articles/:id/view
func (h *ArticleHandler) RecordView(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.services.Article.RecordView(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Article not found")
		return
	}

	c.Status(http.StatusOK)
}
