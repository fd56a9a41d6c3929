package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/news-cms-api/internal/config"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/repository"
	"github.com/news-cms-api/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// cleanupInterval controls how often expired sessions are purged
const cleanupInterval = time.Hour

// authService is the concrete implementation of AuthService
type authService struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	sessionTTL time.Duration
	log        zerolog.Logger
	stopChan   chan struct{}
}

func newAuthService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) AuthService {
	return &authService{
		users:      repos.User,
		sessions:   repos.Session,
		sessionTTL: cfg.Auth.SessionTTL,
		log:        log.With().Str("service", "auth").Logger(),
		stopChan:   make(chan struct{}),
	}
}

// Login verifies the credentials and issues a new session. The error is
// identical for unknown email and wrong password.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, *models.Session, error) {
	if errs := validation.ValidateLogin(req); len(errs) > 0 {
		return nil, nil, errs
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("User logged in")
	return user, session, nil
}

// Logout discards the session. Unknown tokens are ignored.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Verify resolves a session token to its user. Expired or unknown
// sessions yield ErrNotFound.
func (s *authService) Verify(ctx context.Context, sessionID string) (*models.User, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Expired() {
		return nil, ErrNotFound
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// StartCleanup runs a background loop that purges expired sessions
func (s *authService) StartCleanup(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", cleanupInterval).Msg("Session cleanup started")

	for {
		select {
		case <-s.stopChan:
			s.log.Info().Msg("Session cleanup stopped")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.sessions.DeleteExpired(ctx)
			if err != nil {
				s.log.Error().Err(err).Msg("Failed to purge expired sessions")
				continue
			}
			if n > 0 {
				s.log.Info().Int64("count", n).Msg("Purged expired sessions")
			}
		}
	}
}

// StopCleanup signals the cleanup loop to stop
func (s *authService) StopCleanup() {
	close(s.stopChan)
}
