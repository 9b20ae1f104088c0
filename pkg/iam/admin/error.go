package admin

import (
	"net/http"

	"github.com/Abraxas-365/vatalique/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ADMIN")

// Error codes
var (
	CodeInvalidPassword = ErrRegistry.Register("INVALID_PASSWORD", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid password")
	CodeTokenRequired   = ErrRegistry.Register("TOKEN_REQUIRED", errx.TypeAuthentication, http.StatusUnauthorized, "Admin token required")
	CodeInvalidToken    = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired admin token")
	CodeInvalidBody     = ErrRegistry.Register("INVALID_BODY", errx.TypeValidation, http.StatusBadRequest, "Invalid request body")
)

// Helper functions
func ErrInvalidPassword() *errx.Error {
	return ErrRegistry.New(CodeInvalidPassword)
}

func ErrTokenRequired() *errx.Error {
	return ErrRegistry.New(CodeTokenRequired)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrInvalidBody() *errx.Error {
	return ErrRegistry.New(CodeInvalidBody)
}
