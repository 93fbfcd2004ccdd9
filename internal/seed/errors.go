package seed

import (
	"errors"
	"fmt"
)

// Kind classifies a seeding failure for the response payload.
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindConnectivity  Kind = "connectivity"
	KindReferential   Kind = "referential_integrity"
	KindUnknown       Kind = "unknown"
)

// Error is a classified seeding failure carrying a user-facing message
// and a remediation suggestion.
type Error struct {
	Kind       Kind
	Message    string
	Suggestion string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrConfiguration reports a missing connection target.
func ErrConfiguration() *Error {
	return &Error{
		Kind:       KindConfiguration,
		Message:    "MONGODB_URI is not configured",
		Suggestion: "Set MONGODB_URI to your MongoDB connection string (for example in a .env file) and restart the service.",
	}
}

// ErrConnectivity reports a failure to reach or select a server.
func ErrConnectivity(err error) *Error {
	return &Error{
		Kind:       KindConnectivity,
		Message:    "could not connect to the database within the configured timeout",
		Suggestion: "Check that MongoDB is running, the connection string is correct, and the host allows connections from this machine.",
		Err:        err,
	}
}

// ErrReferential reports an invoice whose customer reference does not
// resolve within the seeding batch.
func ErrReferential(index int, customerID string) *Error {
	return &Error{
		Kind:       KindReferential,
		Message:    fmt.Sprintf("invoice %d references unknown customer %q", index, customerID),
		Suggestion: "Fix the source data so every invoice customer reference matches a customer identifier, then run the seed again.",
	}
}

// Classify wraps err into a classified Error, passing through errors
// that already carry a classification.
func Classify(err error) *Error {
	var serr *Error
	if errors.As(err, &serr) {
		return serr
	}
	return &Error{
		Kind:       KindUnknown,
		Message:    "seeding failed unexpectedly",
		Suggestion: "Check the service logs for details and run the seed again.",
		Err:        err,
	}
}
