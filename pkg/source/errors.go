package source

import "errors"

// Sentinel errors for the source package.
var (
	// ErrOpenFailed indicates the camera device or stream could not
	// be opened. Fatal at startup.
	ErrOpenFailed = errors.New("source: cannot open camera")

	// ErrFrameRead indicates a frame could not be read. The session's
	// read policy decides whether this ends the session.
	ErrFrameRead = errors.New("source: frame read failed")

	// ErrClosed indicates a read on a closed source.
	ErrClosed = errors.New("source: closed")
)
