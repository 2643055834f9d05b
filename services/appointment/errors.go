package appointment

import "fmt"

// ActionError is a domain-rule violation detected before any network call.
// Message is user-facing.
type ActionError struct {
	Code    string
	Message string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewNotCancellableError reports a cancel attempt on an appointment that is
// already cancelled or completed.
func NewNotCancellableError(status string) error {
	return &ActionError{
		Code:    "notCancellable",
		Message: fmt.Sprintf("This appointment cannot be cancelled because it is already %s.", status),
	}
}

// NewNotFoundError reports an action on an appointment the viewer's list
// does not contain.
func NewNotFoundError(id string) error {
	return &ActionError{
		Code:    "notFound",
		Message: fmt.Sprintf("Appointment %s was not found.", id),
	}
}
