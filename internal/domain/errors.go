package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by the repository, service and delivery layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("invalid input")
	ErrPersistence        = errors.New("persistence failure")
	ErrReferenceViolation = errors.New("referenced venue or artist does not exist")
	ErrHasShows           = errors.New("record still has shows")
)

// ValidationError lists every problem found in a submitted form.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError returns nil when problems is empty.
func NewValidationError(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

// PersistenceError is returned when the store rejected a mutation and the
// transaction was rolled back. Error() is safe to show to end users; the
// underlying cause is available through errors.Unwrap.
type PersistenceError struct {
	Entity string // "Venue", "Artist" or "Show"
	Name   string
	Action string // "listed", "updated", "deleted"
	Err    error
}

func (e *PersistenceError) Error() string {
	action := e.Action
	if action == "" {
		action = "listed"
	}
	return fmt.Sprintf("An error occurred. %s %s could not be %s.", e.Entity, e.Name, action)
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
