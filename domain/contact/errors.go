package contact

import "errors"

var (
	// ErrSubmissionFailed wraps whatever the Sender reported. It is the
	// only failure a visitor ever sees ("Error Sending Message").
	ErrSubmissionFailed = errors.New("submission failed")

	ErrNotIdle      = errors.New("contact form is not idle")
	ErrFormLocked   = errors.New("contact form fields are locked")
	ErrUnknownField = errors.New("unknown contact form field")
	ErrMissingField = errors.New("required contact form field is empty")
)
