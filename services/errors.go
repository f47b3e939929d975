package services

import "fmt"

// Error taxonomy for the analytics core and the ledger facade.
//
//   - ValidationError: malformed caller input (timeframe, limit, category).
//   - DomainError: a violated precondition, i.e. a caller bug. Fatal to the
//     request, never allowed to corrupt cached state.
//   - NotFoundError: the referenced record does not exist or does not belong
//     to the requesting owner. The two cases are deliberately
//     indistinguishable to the caller.
//
// Arithmetic edge cases (zero income, zero days remaining, zero previous
// period) are not errors: they resolve to 0 via safeRatio.

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func NewDomainError(op, reason string) *DomainError {
	return &DomainError{Op: op, Reason: reason}
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError covers uniqueness violations, e.g. a second budget for
// the same (owner, category) pair.
type ConflictError struct {
	Resource string
	Reason   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Resource, e.Reason)
}
