package errors

import (
	"errors"
	"fmt"
)

// Domain errors shared across services and handlers
var (
	ErrNotFound         = errors.New("resource not found")
	ErrCouponNotFound   = errors.New("coupon not found")
	ErrCouponCodeExists = errors.New("coupon code already exists")
)

// ValidationError reports a client-input problem detected before any
// storage work begins
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation builds a ValidationError from a format string
func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ReferenceKind distinguishes ID references from email references in
// existence-check failures
type ReferenceKind string

const (
	KindIDs    ReferenceKind = "IDs"
	KindEmails ReferenceKind = "emails"
)

// ReferenceError reports that one or more referenced identifiers do not
// resolve to existing documents. Field names the offending request field.
type ReferenceError struct {
	Field string
	Kind  ReferenceKind
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("one or more %s provided in %s do not exist", e.Kind, e.Field)
}

// IsReference reports whether err is a ReferenceError
func IsReference(err error) bool {
	var re *ReferenceError
	return errors.As(err, &re)
}
