// Package errdefs defines the error taxonomy shared by the registry core.
//
// Each failure class has a sentinel that callers can match with errors.Is,
// and a typed error carrying the details. A store read that finds nothing
// reports ErrNotFound; a buffer that is present but does not decode reports
// ErrCorruptRecord. The two are never conflated.
package errdefs

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrUnauthorized is returned when the calling principal's role does not
	// permit the attempted operation.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a record is absent from the ledger.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when a create targets an occupied key.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrValidation is returned when an argument or requested transition is
	// invalid (unknown transaction code, bad status value, insufficient funds).
	ErrValidation = errors.New("validation failed")

	// ErrInvariant is returned when stored state violates a registry
	// invariant, such as a property owned by an unapproved user.
	ErrInvariant = errors.New("invariant violated")

	// ErrCorruptRecord is returned when a ledger buffer exists but cannot be
	// decoded into its entity type.
	ErrCorruptRecord = errors.New("corrupt record")
)

// UnauthorizedError reports a role check failure.
type UnauthorizedError struct {
	Role      string
	Operation string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("role %q is not permitted to invoke %s", e.Role, e.Operation)
}

func (e *UnauthorizedError) Is(target error) bool {
	return target == ErrUnauthorized
}

// NotFoundError reports an absent record.
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError reports a duplicate create.
type AlreadyExistsError struct {
	Type   string
	Key    string
	Detail string
}

func (e *AlreadyExistsError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s with key %q already exists: %s", e.Type, e.Key, e.Detail)
	}
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError reports an invalid argument or transition.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// InvariantError reports stored state that breaks a registry invariant.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: %s", e.Message)
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

// CorruptRecordError reports a present but undecodable ledger buffer.
type CorruptRecordError struct {
	Type  string
	Key   string
	Cause error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("%s record at key %q is corrupt: %v", e.Type, e.Key, e.Cause)
}

func (e *CorruptRecordError) Is(target error) bool {
	return target == ErrCorruptRecord
}

func (e *CorruptRecordError) Unwrap() error {
	return e.Cause
}

// Constructor helpers

func NewUnauthorizedError(role, operation string) error {
	return &UnauthorizedError{Role: role, Operation: operation}
}

func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

func NewAlreadyExistsError(entityType, key, detail string) error {
	return &AlreadyExistsError{Type: entityType, Key: key, Detail: detail}
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func NewInvariantError(message string) error {
	return &InvariantError{Message: message}
}

func NewCorruptRecordError(entityType, key string, cause error) error {
	return &CorruptRecordError{Type: entityType, Key: key, Cause: cause}
}

// Predicates

// IsUnauthorized checks if an error is an authorization failure.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is a duplicate create error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvariant checks if an error is an invariant violation.
func IsInvariant(err error) bool {
	return errors.Is(err, ErrInvariant)
}

// IsCorruptRecord checks if an error is a corrupt record error.
func IsCorruptRecord(err error) bool {
	return errors.Is(err, ErrCorruptRecord)
}
