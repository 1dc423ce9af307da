// File: services/scheduling/errors.go
package scheduling

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Kind classifies a scheduling failure so transport layers can map it to a
// status code without string matching.
type Kind string

const (
	KindInvalidInput          Kind = "InvalidInput"
	KindSlotUnavailable       Kind = "SlotUnavailable"
	KindSlotAlreadyBooked     Kind = "SlotAlreadyBooked"
	KindNotFound              Kind = "NotFound"
	KindForbidden             Kind = "Forbidden"
	KindAlreadyCancelled      Kind = "AlreadyCancelled"
	KindDuplicateAvailability Kind = "DuplicateAvailability"
	KindStoreUnavailable      Kind = "StoreUnavailable"
	KindInternal              Kind = "Internal"
)

// Error is the engine's failure type.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a scheduling error with the given kind and message.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the failure kind from err, or KindInternal for anything
// that is not a scheduling error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// storeErr wraps an unexpected repository error. Timeouts become
// StoreUnavailable (safe for the caller to retry); anything else is internal.
func storeErr(op string, err error) *Error {
	kind := KindInternal
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		kind = KindStoreUnavailable
	}
	return &Error{Kind: kind, Message: op + " failed", Err: err}
}
