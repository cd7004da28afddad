package utils

import (
	"testing"
	"time"
)

const (
	testAccessSecret  = "test-access-secret-at-least-32-characters!"
	testRefreshSecret = "test-refresh-secret-at-least-32-characters!"
)

func newTestManager() *JWTManager {
	return NewJWTManager(testAccessSecret, testRefreshSecret, 15*time.Minute, 7*24*time.Hour)
}

func TestIssuePairAndVerify(t *testing.T) {
	manager := newTestManager()

	pair, err := manager.IssuePair("user-123")
	if err != nil {
		t.Fatalf("Failed to issue token pair: %v", err)
	}

	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("Expected both tokens to be non-empty")
	}

	if pair.AccessToken == pair.RefreshToken {
		t.Error("Expected access and refresh tokens to differ")
	}

	userID, err := manager.VerifyAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("Failed to verify access token: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("Expected user ID 'user-123', got '%s'", userID)
	}

	userID, err = manager.VerifyRefresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Failed to verify refresh token: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("Expected user ID 'user-123', got '%s'", userID)
	}
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	manager := newTestManager()

	pair, err := manager.IssuePair("user-123")
	if err != nil {
		t.Fatalf("Failed to issue token pair: %v", err)
	}

	if _, err := manager.VerifyAccess(pair.RefreshToken); err == nil {
		t.Error("Expected refresh token to fail access verification")
	}

	if _, err := manager.VerifyRefresh(pair.AccessToken); err == nil {
		t.Error("Expected access token to fail refresh verification")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	manager := newTestManager()
	other := NewJWTManager(
		"other-access-secret-at-least-32-chars!!",
		"other-refresh-secret-at-least-32-chars!",
		15*time.Minute, 7*24*time.Hour,
	)

	pair, err := manager.IssuePair("user-123")
	if err != nil {
		t.Fatalf("Failed to issue token pair: %v", err)
	}

	if _, err := other.VerifyAccess(pair.AccessToken); err == nil {
		t.Error("Expected verification with a different secret to fail")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager(testAccessSecret, testRefreshSecret, -1*time.Minute, -1*time.Minute)

	pair, err := manager.IssuePair("user-123")
	if err != nil {
		t.Fatalf("Failed to issue token pair: %v", err)
	}

	if _, err := manager.VerifyAccess(pair.AccessToken); err == nil {
		t.Error("Expected expired access token to fail verification")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := newTestManager()

	if _, err := manager.VerifyAccess("not-a-token"); err == nil {
		t.Error("Expected malformed token to fail verification")
	}
}

func TestAccessExpirySeconds(t *testing.T) {
	manager := newTestManager()

	if got := manager.AccessExpirySeconds(); got != 900 {
		t.Errorf("Expected 900 seconds, got %d", got)
	}
}
