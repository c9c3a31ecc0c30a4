package session

import "errors"

// Sentinel errors for the session package.
var (
	// ErrInitialFrame indicates the first frame could not be read.
	// Fatal at startup; the loop is never entered.
	ErrInitialFrame = errors.New("session: cannot read initial frame from camera")

	// ErrWriteFailed indicates a captured frame could not be written.
	// The session stays live and the trigger is re-armed.
	ErrWriteFailed = errors.New("session: image write failed")
)
