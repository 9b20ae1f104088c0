package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNew(t *testing.T) {
	reg := NewRegistry("THING")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Thing not found")

	assert.Equal(t, Code("THING_NOT_FOUND"), code)

	err := reg.New(code).WithDetail("id", "42")
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, "Thing not found", err.Message)
	assert.Equal(t, "42", err.Details["id"])

	// Each call returns an independent value
	other := reg.New(code)
	assert.Nil(t, other.Details)
}

func TestRegistryDuplicatePanics(t *testing.T) {
	reg := NewRegistry("DUP")
	reg.Register("X", TypeBusiness, http.StatusConflict, "x")
	assert.Panics(t, func() {
		reg.Register("X", TypeBusiness, http.StatusConflict, "x")
	})
}

func TestWrapAndInspect(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "failed to list jobs", TypeInternal)

	require.NotNil(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsType(err, TypeInternal))
	assert.Nil(t, Wrap(nil, "nothing", TypeInternal))
}

func TestIsMatchesCodeThroughWrapping(t *testing.T) {
	reg := NewRegistry("JOBX")
	code := reg.Register("GONE", TypeNotFound, http.StatusNotFound, "gone")

	wrapped := fmt.Errorf("repository: %w", reg.New(code).WithDetail("id", "a"))
	assert.True(t, errors.Is(wrapped, reg.New(code)))
	assert.True(t, IsCode(wrapped, code))
	assert.False(t, IsType(wrapped, TypeValidation))
}

func TestToHTTPResponseHidesInternalDetails(t *testing.T) {
	internal := Wrap(errors.New("pq: relation missing"), "failed", TypeInternal).WithDetail("query", "SELECT")
	body := internal.ToHTTPResponse()
	assert.NotContains(t, body, "details")
	assert.Equal(t, "failed", body["error"])

	validation := New("bad input", TypeValidation).WithDetail("field", "title")
	body = validation.ToHTTPResponse()
	assert.Equal(t, map[string]any{"field": "title"}, body["details"])
}
