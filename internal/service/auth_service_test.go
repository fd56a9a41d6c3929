package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/service"
	"golang.org/x/crypto/bcrypt"
)

func seedEditor(t *testing.T, users interface {
	Upsert(ctx context.Context, user *models.User) error
}, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		ID:           "editor-1",
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := users.Upsert(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestLogin_IssuesVerifiableSession(t *testing.T) {
	services, repos := setupServices()
	seedEditor(t, repos.User, "editor@example.com", "secret123")

	user, session, err := services.Auth.Login(context.Background(), &models.LoginRequest{
		Email:    "editor@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.ID != "editor-1" {
		t.Errorf("unexpected user: %s", user.ID)
	}
	if session.ID == "" || session.ExpiresAt.Before(time.Now()) {
		t.Error("session should carry a token and a future expiry")
	}

	verified, err := services.Auth.Verify(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if verified.ID != user.ID {
		t.Errorf("Verify resolved wrong user: %s", verified.ID)
	}
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	services, repos := setupServices()
	seedEditor(t, repos.User, "editor@example.com", "secret123")

	tests := []struct {
		name            string
		email, password string
	}{
		{"wrong password", "editor@example.com", "wrong"},
		{"unknown email", "ghost@example.com", "secret123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := services.Auth.Login(context.Background(), &models.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			})
			if !errors.Is(err, service.ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestVerify_ExpiredSessionIsInvalid(t *testing.T) {
	services, repos := setupServices()
	seedEditor(t, repos.User, "editor@example.com", "secret123")

	repos.Session.Create(context.Background(), &models.Session{
		ID:        "stale-token",
		UserID:    "editor-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	_, err := services.Auth.Verify(context.Background(), "stale-token")
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound for expired session, got %v", err)
	}
}

func TestLogout_DiscardsSession(t *testing.T) {
	services, repos := setupServices()
	seedEditor(t, repos.User, "editor@example.com", "secret123")

	_, session, err := services.Auth.Login(context.Background(), &models.LoginRequest{
		Email:    "editor@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := services.Auth.Logout(context.Background(), session.ID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := services.Auth.Verify(context.Background(), session.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected session to be gone, got %v", err)
	}
}
