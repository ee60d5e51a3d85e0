package security

import (
	"testing"
	"time"
)

const testSecret = "test_secret_key_minimum_32_chars"

func TestGenerateJWT(t *testing.T) {
	tests := []struct {
		name     string
		userID   uint
		username string
	}{
		{
			name:     "Regular user",
			userID:   1,
			username: "alice",
		},
		{
			name:     "Another user",
			userID:   2,
			username: "bob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateJWT(tt.userID, tt.username, testSecret, time.Hour)
			if err != nil {
				t.Fatalf("GenerateJWT() error = %v", err)
			}

			if token == "" {
				t.Error("GenerateJWT() returned empty token")
			}

			claims, err := ValidateJWT(token, testSecret)
			if err != nil {
				t.Fatalf("ValidateJWT() error = %v", err)
			}

			if claims.UserID != tt.userID {
				t.Errorf("UserID = %d, want %d", claims.UserID, tt.userID)
			}

			if claims.Username != tt.username {
				t.Errorf("Username = %q, want %q", claims.Username, tt.username)
			}

			if claims.ID == "" {
				t.Error("token has no jti claim")
			}
		})
	}
}

func TestValidateJWT_InvalidToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "Empty token",
			token: "",
		},
		{
			name:  "Invalid format",
			token: "invalid.token.here",
		},
		{
			name:  "Random string",
			token: "randomstring",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateJWT(tt.token, testSecret)
			if err == nil {
				t.Error("ValidateJWT() expected error for invalid token, got nil")
			}
		})
	}
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, "alice", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ValidateJWT(token, "a_different_secret_key_32_chars!"); err == nil {
		t.Error("ValidateJWT() accepted a token signed with another secret")
	}
}

func TestValidateJWT_ExpiredToken(t *testing.T) {
	token, err := GenerateJWT(1, "alice", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ValidateJWT(token, testSecret); err == nil {
		t.Error("ValidateJWT() accepted an expired token")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	userID := uint(42)
	username := "alice"
	ttl := 24 * time.Hour

	token, err := GenerateJWT(userID, username, testSecret, ttl)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ValidateJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateJWT() error = %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %d, want %d", claims.UserID, userID)
	}

	if claims.Username != username {
		t.Errorf("Username = %q, want %q", claims.Username, username)
	}

	if claims.ExpiresAt.Time.Before(time.Now()) {
		t.Error("Token already expired")
	}

	expectedExpiry := time.Now().Add(ttl)
	if claims.ExpiresAt.Time.After(expectedExpiry.Add(time.Minute)) {
		t.Error("Token expiry is further out than the requested TTL")
	}
}
