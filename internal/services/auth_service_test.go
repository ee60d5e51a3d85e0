package services

import (
	"testing"
	"time"

	"github.com/chirp-social/chirp/internal/security"
	"github.com/chirp-social/chirp/pkg/errors"
)

const testJWTSecret = "test-secret-key-at-least-32-chars!!"

func newAuthFixture() (*AuthService, *fakeUserDirectory) {
	users := newFakeUserDirectory()
	return NewAuthService(users, testJWTSecret, time.Hour), users
}

func TestRegister(t *testing.T) {
	svc, users := newAuthFixture()

	view, err := svc.Register("alice", "alice@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if view.Username != "alice" {
		t.Errorf("Username = %q, want alice", view.Username)
	}

	stored, err := users.GetUserByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if stored.PasswordHash == "s3cret-pass" {
		t.Error("password stored in plain text")
	}
	if !security.CheckPassword(stored.PasswordHash, "s3cret-pass") {
		t.Error("stored hash does not match the password")
	}
}

func TestRegister_DuplicateAccount(t *testing.T) {
	svc, users := newAuthFixture()
	users.addUser("alice", "alice@example.com")

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"username taken", "alice", "other@example.com"},
		{"email taken", "other", "alice@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(tt.username, tt.email, "s3cret-pass")
			if !errors.Is(err, errors.ErrCodeAlreadyExists) {
				t.Errorf("Register() error = %v, want code %s", err, errors.ErrCodeAlreadyExists)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture()
	if _, err := svc.Register("alice", "alice@example.com", "s3cret-pass"); err != nil {
		t.Fatal(err)
	}

	token, view, err := svc.Login("alice@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if view.Username != "alice" {
		t.Errorf("Username = %q, want alice", view.Username)
	}

	claims, err := security.ValidateJWT(token, testJWTSecret)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("token username = %q, want alice", claims.Username)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newAuthFixture()
	if _, err := svc.Register("alice", "alice@example.com", "s3cret-pass"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "s3cret-pass"},
		{"wrong password", "alice@example.com", "wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(tt.email, tt.password)
			if !errors.Is(err, errors.ErrCodeUnauthorized) {
				t.Errorf("Login() error = %v, want code %s", err, errors.ErrCodeUnauthorized)
			}
		})
	}
}
