// internal/domain/checkout/errors.go
package checkout

import "fmt"

// ValidationError is raised before any network call; the remote store
// was never contacted and resubmitting with corrected input is safe.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid checkout request: %s: %s", e.Field, e.Reason)
}

// HeaderCreationError means the remote store rejected or could not
// create the order header. Nothing was persisted; the whole submission
// can be retried from scratch.
type HeaderCreationError struct {
	Err error
}

func (e *HeaderCreationError) Error() string {
	return fmt.Sprintf("order header creation failed, nothing was persisted: %v", e.Err)
}

func (e *HeaderCreationError) Unwrap() error {
	return e.Err
}

// ItemsCreationError means the header exists but its lines do not: the
// order is an orphaned header. Resubmitting would create a duplicate
// header, so HeaderID is carried for caller-level reconciliation.
type ItemsCreationError struct {
	HeaderID string
	Err      error
}

func (e *ItemsCreationError) Error() string {
	return fmt.Sprintf("order items creation failed for order %s, header exists without lines: %v", e.HeaderID, e.Err)
}

func (e *ItemsCreationError) Unwrap() error {
	return e.Err
}
