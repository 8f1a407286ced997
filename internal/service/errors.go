package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blog-api/internal/models"
)

var (
	// ErrNotFound means the requested entity does not exist
	ErrNotFound = errors.New("resource not found")
	// ErrForbidden means the caller is not allowed to perform the operation
	ErrForbidden = errors.New("admin access required")
)

// ValidationError lists the request fields that failed presence checks
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// StoreError wraps any failure reported by the data access layer
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
