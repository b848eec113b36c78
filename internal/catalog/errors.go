package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFileAccess = errors.New("file access error")
	ErrSchema     = errors.New("schema error")
	ErrField      = errors.New("field error")
	ErrLocked     = errors.New("catalog locked")
)

// FieldError reports a product that lacks a usable name or image.
type FieldError struct {
	Index  int
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: product %d: %s %s", ErrField, e.Index, e.Field, e.Reason)
}

// Is matches ErrField so callers can classify with errors.Is.
func (e *FieldError) Is(target error) bool {
	return target == ErrField
}

// wrap tags err with marker while keeping the path and operation in the message.
func wrap(marker error, path, operation string, err error) error {
	detail := buildDetail(path, operation)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(path, operation string) string {
	parts := make([]string, 0, 2)
	if path = strings.TrimSpace(path); path != "" {
		parts = append(parts, path)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if len(parts) == 0 {
		return "catalog failure"
	}
	return strings.Join(parts, ": ")
}
