package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every catalog error wraps exactly one of these so callers can
// classify failures with errors.Is.
var (
	// ErrValidation indicates input that violates field constraints.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates a referenced aggregate does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBusinessRule indicates a request that is well-formed but breaks a catalog rule.
	ErrBusinessRule = errors.New("business rule violated")
)

// Domain errors for Book aggregate
var (
	// ErrBookNotFound indicates that no book has the given id or isbn.
	ErrBookNotFound = fmt.Errorf("book %w", ErrNotFound)

	// ErrBookAlreadyExists indicates an attempt to create a book whose ISBN is taken.
	ErrBookAlreadyExists = fmt.Errorf("%w: book already exists", ErrBusinessRule)

	// ErrIsbnTaken indicates an update that would move a book onto another book's ISBN.
	ErrIsbnTaken = fmt.Errorf("%w: another book already has this isbn", ErrBusinessRule)

	// ErrBookDoesNotExist is returned by delete, which treats a missing book as a rule violation.
	ErrBookDoesNotExist = fmt.Errorf("%w: book does not exist", ErrBusinessRule)

	// ErrDuplicateAuthor indicates the same author was attached to a book twice.
	ErrDuplicateAuthor = fmt.Errorf("%w: author already exists", ErrBusinessRule)

	// ErrNegativePrice indicates a base price below zero.
	ErrNegativePrice = fmt.Errorf("%w: price cannot be negative", ErrBusinessRule)
)

// Domain errors for references
var (
	ErrPublisherNotFound = fmt.Errorf("publisher %w", ErrNotFound)
	ErrAuthorNotFound    = fmt.Errorf("author %w", ErrNotFound)

	// ErrSlugTaken indicates a publisher or author slug already used by another row.
	ErrSlugTaken = fmt.Errorf("%w: slug already taken", ErrBusinessRule)
)

// Domain errors for paging
var (
	// ErrInvalidPageRequest indicates a page number or page size below 1.
	ErrInvalidPageRequest = fmt.Errorf("%w: page and size must be at least 1", ErrValidation)

	// ErrPageOverflow indicates a page holding more items than its size allows.
	ErrPageOverflow = errors.New("page holds more items than its size")
)

// Violation is a single failed field constraint.
type Violation struct {
	Field   string
	Message string
}

// ValidationError lists every violated constraint of one input, in field order.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// HasField reports whether any violation concerns the named field.
func (e *ValidationError) HasField(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}
