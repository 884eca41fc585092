package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour, "agency-cms")

	token, expiresAt, err := m.GenerateAccessToken("admin", RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if time.Until(expiresAt) <= 59*time.Minute {
		t.Errorf("expiresAt = %v, want about one hour from now", expiresAt)
	}

	claims, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.Role != RoleAdmin || claims.Subject != "admin" || claims.Issuer != "agency-cms" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestManager_RejectsForeignTokens(t *testing.T) {
	m := NewManager("test-secret", time.Hour, "agency-cms")
	token, _, err := m.GenerateAccessToken("admin", RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	otherSecret := NewManager("other-secret", time.Hour, "agency-cms")
	if _, err := otherSecret.ValidateAccessToken(token); err == nil {
		t.Error("token signed with another secret was accepted")
	}

	otherIssuer := NewManager("test-secret", time.Hour, "someone-else")
	if _, err := otherIssuer.ValidateAccessToken(token); err == nil {
		t.Error("token from another issuer was accepted")
	}

	if _, err := m.ValidateAccessToken("not-a-token"); err == nil {
		t.Error("garbage token was accepted")
	}
}

func TestManager_Expired(t *testing.T) {
	m := NewManager("test-secret", time.Minute, "agency-cms")
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := m.GenerateAccessToken("admin", RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	m.now = time.Now
	if _, err := m.ValidateAccessToken(token); !errors.Is(err, ErrExpired) {
		t.Errorf("ValidateAccessToken() error = %v, want ErrExpired", err)
	}
}
