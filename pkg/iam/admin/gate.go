// Package admin implements the shared-secret admin gate.
//
// Without a token secret the gate only answers whether a password is correct and the
// client remembers the result; admin endpoints are not re-checked per request. Setting
// ADMIN_TOKEN_SECRET makes login issue signed session tokens, and ADMIN_ENFORCE_TOKEN
// turns on per-request verification of those tokens.
package admin

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Gate checks passwords against the single configured admin secret
type Gate struct {
	password     string
	passwordHash string
}

// NewGate creates a gate. When passwordHash is set it takes precedence over password.
func NewGate(password, passwordHash string) *Gate {
	return &Gate{
		password:     password,
		passwordHash: passwordHash,
	}
}

// Configured reports whether any secret is set
func (g *Gate) Configured() bool {
	return g.password != "" || g.passwordHash != ""
}

// Login reports whether password matches the configured secret.
// An unconfigured gate rejects every password, including the empty one.
func (g *Gate) Login(password string) bool {
	if g.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(password)) == nil
	}
	if g.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(g.password), []byte(password)) == 1
}
