package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks initialization inputs that are missing or
	// cannot be satisfied (absent base directory, keyword not found in the
	// working directory, neither argument given).
	ErrConfiguration = errors.New("configuration error")
	// ErrNotInitialized marks accessors called before Initialize.
	ErrNotInitialized = errors.New("configuration not initialized")
	// ErrNotFound marks lookups of names absent from the resolved table.
	ErrNotFound = errors.New("not found")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for errors.Is classification. The marker should
// be one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrConfiguration
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "configuration failure"
	}
	return strings.Join(parts, ": ")
}
