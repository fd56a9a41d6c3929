package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-cms-api/internal/config"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// AuthHandler handles the session endpoints. Everything else in the API
// only consumes the verified identity these produce.
type AuthHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, session, err := h.services.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		respondServiceError(c, err, "User not found")
		return
	}

	maxAge := int(h.cfg.Auth.SessionTTL.Seconds())
	c.SetCookie(SessionCookie, session.ID, maxAge, "/", "", h.cfg.Auth.SecureCookie, true)
	c.JSON(http.StatusOK, user.Public())
}

// Logout handles POST /api/auth/logout. Logging out without a session
// is not an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		if err := h.services.Auth.Logout(c.Request.Context(), token); err != nil {
			h.log.Error().Err(err).Msg("Failed to discard session")
		}
	}

	c.SetCookie(SessionCookie, "", -1, "/", "", h.cfg.Auth.SecureCookie, true)
	c.Status(http.StatusNoContent)
}

// CurrentUser handles GET /api/auth/user
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, _ := currentUser(c)
	c.JSON(http.StatusOK, user.Public())
}
