package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidCode = errors.New("invalid code")
	ErrEmptyScan   = errors.New("no Johnny Decimal folders found")
)

// NotFoundError reports a code the index does not know
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found in index", e.Code)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
