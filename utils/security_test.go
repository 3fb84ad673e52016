package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHashIdentityDeterministic(t *testing.T) {
	first := HashIdentity("198.51.100.4", "salt-a")
	second := HashIdentity("198.51.100.4", "salt-a")
	if first != second {
		t.Fatal("same address and salt must hash identically")
	}
	if len(first) != 64 {
		t.Fatalf("digest length = %d, want 64 hex chars", len(first))
	}
}

func TestHashIdentitySaltMatters(t *testing.T) {
	if HashIdentity("198.51.100.4", "salt-a") == HashIdentity("198.51.100.4", "salt-b") {
		t.Fatal("different salts must not be comparable")
	}
	if HashIdentity("198.51.100.4", "salt-a") == HashIdentity("198.51.100.5", "salt-a") {
		t.Fatal("different addresses must hash differently")
	}
}

func TestFingerprintBytes(t *testing.T) {
	a := FingerprintBytes([]byte("evidence"))
	b := FingerprintBytes([]byte("evidence"))
	c := FingerprintBytes([]byte("evidence2"))
	if a != b {
		t.Fatal("identical bytes must fingerprint identically")
	}
	if a == c {
		t.Fatal("different bytes must fingerprint differently")
	}
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(32)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("token length = %d, want 64", len(token))
	}

	other, err := GenerateToken(32)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if token == other {
		t.Fatal("tokens must not repeat")
	}
}

func TestSecureCompare(t *testing.T) {
	if !SecureCompare("abc", "abc") {
		t.Fatal("equal strings should compare true")
	}
	if SecureCompare("abc", "abd") {
		t.Fatal("different strings should compare false")
	}
	if SecureCompare("abc", "abcd") {
		t.Fatal("different lengths should compare false")
	}
}

func TestClientIPHeaderPrecedence(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = "192.0.2.10:4711"

	if got := ClientIP(req); got != "192.0.2.10" {
		t.Fatalf("remote addr fallback = %q", got)
	}

	req.Header.Set("X-Real-IP", "203.0.113.9")
	if got := ClientIP(req); got != "203.0.113.9" {
		t.Fatalf("x-real-ip = %q", got)
	}

	req.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
	if got := ClientIP(req); got != "198.51.100.1" {
		t.Fatalf("x-forwarded-for should win and take the first entry, got %q", got)
	}
}
