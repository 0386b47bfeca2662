package token

import (
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour, 7*24*time.Hour)

	signed, err := issuer.Issue(Claims{Username: "admin"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	claims, err := issuer.Parse(signed)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("expected username admin, got %q", claims.Username)
	}
	if claims.Issuer != "fithub-api" {
		t.Errorf("expected issuer fithub-api, got %q", claims.Issuer)
	}
}

func TestIssueRefresh_CarriesClaims(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour, 7*24*time.Hour)

	signed, err := issuer.IssueRefresh(Claims{Email: "user@example.com", UserID: "abc123"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	claims, err := issuer.Parse(signed)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("expected email claim, got %q", claims.Email)
	}
	if claims.UserID != "abc123" {
		t.Errorf("expected user id claim, got %q", claims.UserID)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour, 0)
	other := NewIssuer("other-secret", time.Hour, 0)

	signed, err := issuer.Issue(Claims{Username: "admin"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := other.Parse(signed); err == nil {
		t.Error("expected parse with wrong secret to fail")
	}
}

func TestParse_ExpiredToken(t *testing.T) {
	issuer := &Issuer{secret: "test-secret", expiration: -time.Minute, refreshExpiration: time.Hour}

	signed, err := issuer.Issue(Claims{Username: "admin"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := issuer.Parse(signed); err == nil {
		t.Error("expected expired token to fail validation")
	}
}

func TestNewIssuer_DefaultExpirations(t *testing.T) {
	issuer := NewIssuer("test-secret", 0, 0)

	if issuer.expiration != time.Hour {
		t.Errorf("expected 1h default, got %v", issuer.expiration)
	}
	if issuer.refreshExpiration != 7*24*time.Hour {
		t.Errorf("expected 168h default, got %v", issuer.refreshExpiration)
	}
}
