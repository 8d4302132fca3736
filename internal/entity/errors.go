package entity

import (
	"errors"
	"fmt"
)

// Domain errors shared by the store, the quiz engine and the CLI.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateName      = errors.New("vocabulary name already exists")
	ErrDuplicateWord      = errors.New("word already exists in vocabulary")
	ErrAlreadyExists      = errors.New("word already exists in target vocabulary")
	ErrNotFound           = errors.New("not found")
	ErrVocabularyNotFound = fmt.Errorf("vocabulary %w", ErrNotFound)
	ErrWordNotFound       = fmt.Errorf("word %w", ErrNotFound)
	ErrEmptyPool          = errors.New("no eligible words for study session")
	ErrSessionNotRunning  = errors.New("study session is not running")
)

// Fields reported by InvalidValueError.
const (
	FieldStudyMode = "study mode"
	FieldWordType  = "word type"
)

// InvalidValueError is a user supplied value outside a fixed set. It matches ErrInvalidInput.
type InvalidValueError struct {
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidInput }

// StorageError wraps an unexpected failure of the underlying database engine.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError wraps err unless it is nil or already a domain error.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsDomainError(err) {
		return err
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// IsDomainError reports whether err is one of the recoverable domain errors.
func IsDomainError(err error) bool {
	for _, target := range []error{
		ErrInvalidInput, ErrDuplicateName, ErrDuplicateWord, ErrAlreadyExists,
		ErrNotFound, ErrEmptyPool, ErrSessionNotRunning,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
