package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinels for errors.Is matching across layers.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")
)

// AuthError reports rejected credentials, an invalid or expired token,
// or a failed refresh. Detail carries the server's message verbatim
// when one was provided.
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string {
	return e.Detail
}

func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthorized
}

// ValidationError reports input the server rejected: malformed or
// conflicting registration data, a bad reset token, a refused password.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// NetworkError wraps a request that could not be completed at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrUnavailable
}

// apiError is the error body shape every endpoint uses.
type apiError struct {
	Detail string `json:"detail"`
}

// errorDetail extracts the server's detail message from an error body,
// falling back to the given generic message.
func errorDetail(body []byte, fallback string) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err == nil && e.Detail != "" {
		return e.Detail
	}
	return fallback
}

// responseError maps a non-2xx response to the error taxonomy.
func responseError(status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{Detail: errorDetail(body, "invalid authentication credentials")}
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return &ValidationError{Detail: errorDetail(body, "request rejected")}
	default:
		return fmt.Errorf("api error: status %d: %s", status, errorDetail(body, http.StatusText(status)))
	}
}
