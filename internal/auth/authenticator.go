// Package auth gates the admin surface: a pluggable credential check plus
// short-lived session tokens that do not survive a restart.
package auth

import (
	"crypto/subtle"
	"strings"
)

// Authenticator decides whether a credential opens an admin session.
type Authenticator interface {
	Verify(credential string) bool
}

// SharedSecret accepts a single plaintext secret. Surrounding whitespace
// of the candidate is ignored; the rest must match exactly.
type SharedSecret struct {
	secret []byte
}

// NewSharedSecret creates an Authenticator for secret.
func NewSharedSecret(secret string) *SharedSecret {
	return &SharedSecret{secret: []byte(secret)}
}

func (s *SharedSecret) Verify(credential string) bool {
	if len(s.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(credential)), s.secret) == 1
}
