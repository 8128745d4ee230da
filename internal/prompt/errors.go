package prompt

import "errors"

var (
	// ErrInvalidConfiguration is returned before any I/O when the prompt
	// cannot be built from its configuration.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOperationCanceled is returned when the user presses the cancel key.
	ErrOperationCanceled = errors.New("operation canceled by user")
)
