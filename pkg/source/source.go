// Package source abstracts the camera feed for the capture session.
// A source is either a local video device (webcam) or a networked
// stream such as a phone running an IP webcam app.
package source

import "gocv.io/x/gocv"

// Kind identifies what backs a source. The mid-session read failure
// policy differs between kinds: a local device that stops delivering
// frames is gone, while a network stream drops frames transiently.
type Kind string

const (
	KindDevice Kind = "device"
	KindStream Kind = "stream"
)

// ReadPolicy decides what the session does when a mid-session frame
// read fails.
type ReadPolicy int

const (
	// PolicyTerminate ends the session on read failure.
	PolicyTerminate ReadPolicy = iota

	// PolicyRetry logs a warning, skips the iteration and keeps going.
	PolicyRetry
)

// Source is the camera collaborator.
type Source interface {
	// Open acquires the underlying device or stream.
	Open() error

	// Read fetches the next frame into dst. The returned error is
	// ErrFrameRead (wrapped) on failure; the caller applies its
	// read policy.
	Read(dst *gocv.Mat) error

	// Kind reports what backs this source.
	Kind() Kind

	// Close releases the device or stream.
	Close() error
}

// PolicyFor returns the default read policy for a source kind:
// local devices terminate, network streams retry.
func PolicyFor(k Kind) ReadPolicy {
	if k == KindStream {
		return PolicyRetry
	}
	return PolicyTerminate
}

// ParsePolicy maps a config string onto a read policy, falling back to
// the kind default for an empty string.
func ParsePolicy(s string, k Kind) ReadPolicy {
	switch s {
	case "retry":
		return PolicyRetry
	case "terminate":
		return PolicyTerminate
	default:
		return PolicyFor(k)
	}
}
