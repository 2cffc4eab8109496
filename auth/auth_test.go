package auth

import (
	"testing"
	"time"

	"twohtsounds/middleware"
)

func TestIssueAdminTokenRoundTrip(t *testing.T) {
	tokenString, err := IssueAdminToken(time.Now())
	if err != nil {
		t.Fatalf("IssueAdminToken: %v", err)
	}

	claims, err := middleware.ValidateJWT("Bearer " + tokenString)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if !claims.IsAdmin() {
		t.Fatalf("expected admin role, got %v", claims.Role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	tokenString, err := IssueAdminToken(time.Now().Add(-24 * time.Hour))
	if err != nil {
		t.Fatalf("IssueAdminToken: %v", err)
	}

	if _, err := middleware.ValidateJWT("Bearer " + tokenString); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestMalformedAuthorizationHeader(t *testing.T) {
	for _, header := range []string{"", "Bearer", "Basic abc", "garbage"} {
		if _, err := middleware.ValidateJWT(header); err == nil {
			t.Fatalf("expected %q to be rejected", header)
		}
	}
}

func TestCheckAdminPasswordFallback(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_PASSWORD", "topsecret")

	if !checkAdminPassword("topsecret") {
		t.Fatal("expected configured password to be accepted")
	}
	if checkAdminPassword("wrong") {
		t.Fatal("expected wrong password to be rejected")
	}
}
