package service

import (
	"errors"
	"strings"
)

var (
	// ErrUnauthenticated means the identity assertion was absent or failed
	// verification.
	ErrUnauthenticated = errors.New("unauthenticated: missing or invalid token")

	// ErrForbidden means the identity is valid but lacks the capability. It
	// deliberately says nothing about whether the underlying resource exists.
	ErrForbidden = errors.New("forbidden: insufficient permissions")
)

type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}
