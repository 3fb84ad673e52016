// utils/security.go - Identity hashing and request security helpers
package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
)

// HashIdentity derives the opaque identifier stored in place of a raw
// network address. The salt is a process-wide secret; the same address and
// salt always produce the same digest, different salts are never comparable.
func HashIdentity(rawAddress, salt string) string {
	sum := sha256.Sum256([]byte(rawAddress + salt))
	return hex.EncodeToString(sum[:])
}

// FingerprintBytes computes the content fingerprint of an uploaded file.
// It is always taken over the original bytes, before any transformation.
func FingerprintBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// GenerateToken returns a hex-encoded random token of the given byte length.
func GenerateToken(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// SecureCompare performs a constant-time string comparison.
func SecureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// ClientIP extracts the client address from the request, honoring proxy
// headers in order of preference.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// Take the first address if multiple are present
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
	return host
}
