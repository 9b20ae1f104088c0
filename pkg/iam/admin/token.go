package admin

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer  = "vatalique"
	tokenSubject = "admin"
	ScopeAdmin   = "careers:admin"
)

// Claims carried by an admin session token
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 admin session tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service. Returns nil when secret is empty so callers
// can treat a nil service as "tokens disabled".
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if secret == "" {
		return nil
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a new admin token and returns it with its expiry
func (s *TokenService) Issue() (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		Scope: ScopeAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   tokenSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify parses raw and checks signature, issuer, expiry and scope
func (s *TokenService) Verify(raw string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken()
	}
	if claims.Scope != ScopeAdmin || claims.Subject != tokenSubject {
		return nil, ErrInvalidToken()
	}
	return &claims, nil
}
