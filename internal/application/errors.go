package application

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Handlers translate them to
// HTTP statuses; none of them leak internal identifiers or storage
// details.
var (
	ErrNotFound              = errors.New("resource not found")
	ErrForbidden             = errors.New("operation not permitted for this user")
	ErrRegistrationDisabled  = errors.New("registration is disabled for this event")
	ErrPaymentIntentMismatch = errors.New("payment intent does not match the registration")
	ErrNotEditable           = errors.New("registration can no longer be edited")
)

// InvalidSchemaError reports config authoring problems per field so a
// vendor can fix every offending field at once.
type InvalidSchemaError struct {
	Fields map[string]string
}

func (e *InvalidSchemaError) Error() string {
	return fmt.Sprintf("invalid registration schema (%d field problems)", len(e.Fields))
}

// ValidationFailedError collects every failing field of a submission
// rather than stopping at the first, so the form can re-render all of
// them together.
type ValidationFailedError struct {
	Fields map[string]string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("submission validation failed (%d field problems)", len(e.Fields))
}
