package auth

import (
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 8*time.Hour)

	raw, err := issuer.Issue("org-123", "ONG Exemplo")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	subject, err := issuer.Verify(raw)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if subject != "org-123" {
		t.Errorf("subject = %q, want %q", subject, "org-123")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	raw, err := NewTokenIssuer("secret-a", time.Hour).Issue("org-123", "ONG")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := NewTokenIssuer("secret-b", time.Hour).Verify(raw); err == nil {
		t.Error("Verify() accepted a token signed with another secret")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	raw, err := NewTokenIssuer("secret", -time.Minute).Issue("org-123", "ONG")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := NewTokenIssuer("secret", -time.Minute).Verify(raw); err == nil {
		t.Error("Verify() accepted an expired token")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := NewTokenIssuer("secret", time.Hour).Verify("not.a.token"); err == nil {
		t.Error("Verify() accepted garbage")
	}
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("S3nh@forte")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if strings.Contains(hash, "S3nh@forte") {
		t.Error("hash contains the plaintext password")
	}

	if !CheckPassword(hash, "S3nh@forte") {
		t.Error("CheckPassword() rejected the right password")
	}
	if CheckPassword(hash, "errada") {
		t.Error("CheckPassword() accepted the wrong password")
	}
}
