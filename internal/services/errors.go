package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gstledger/ledger-api/internal/repository"
)

// Common service errors
var (
	ErrNotFound       = repository.ErrNotFound
	ErrDuplicate      = repository.ErrDuplicate
	ErrValidation     = errors.New("validation failed")
	ErrUnknownParty   = errors.New("party does not exist")
	ErrPersistence    = errors.New("persistence failure")
	ErrLoadInProgress = errors.New("snapshot load already in progress")
)

// PersistenceError wraps a failed backend call. It matches both ErrPersistence
// and the underlying driver or repository error.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}

func persistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// ValidationError reports per-field input problems
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
