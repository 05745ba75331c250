package checkout

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindMissingField      Kind = "missingField"
	KindInvalidAmount     Kind = "invalidAmount"
	KindProviderRejected  Kind = "providerRejected"
	KindUnexpectedFailure Kind = "unexpectedFailure"
)

// Error is returned by every checkout operation. Message is safe to show to
// the caller.
type Error struct {
	Kind    Kind
	Field   string
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

// ClientError reports whether the failure is the caller's or the provider's
// rejection of the caller's data.
func (e *Error) ClientError() bool {
	return e.Kind != KindUnexpectedFailure
}

func NewMissingFieldError(field string) error {
	return &Error{
		Kind:    KindMissingField,
		Field:   field,
		Message: "Missing required field: " + field,
	}
}

func NewInvalidAmountError(err error) error {
	return &Error{
		Kind:    KindInvalidAmount,
		Field:   "totalPrice",
		Message: "Invalid totalPrice format",
		Err:     err,
	}
}

func NewProviderRejectedError(msg string, err error) error {
	return &Error{
		Kind:    KindProviderRejected,
		Message: "Stripe error: " + msg,
		Err:     err,
	}
}

func NewUnexpectedError(err error) error {
	return &Error{
		Kind:    KindUnexpectedFailure,
		Message: "Server error: " + err.Error(),
		Err:     err,
	}
}

// AsError unwraps err into a checkout error. Anything else is treated as an
// unexpected failure.
func AsError(err error) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return NewUnexpectedError(err).(*Error)
}
