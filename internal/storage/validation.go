package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrProtectedRow     = errors.New("row is protected and cannot be deleted")
	ErrNotFound         = errors.New("not found")
	ErrInvalidPriority  = errors.New("priority must be between 1 and 999")
	ErrReservedCategory = errors.New("category name is reserved")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty or whitespace-only.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validatePriority ensures a priority value is in range.
func validatePriority(priority int) error {
	if priority < 1 || priority > 999 {
		return fmt.Errorf("%w: got %d", ErrInvalidPriority, priority)
	}
	return nil
}
