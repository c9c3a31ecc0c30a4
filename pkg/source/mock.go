package source

import (
	"gocv.io/x/gocv"
)

// Mock is a synthetic frame source for testing. It yields a fixed
// number of blank frames of a given size, with optional per-read
// failures, then reports end of stream.
type Mock struct {
	width  int
	height int
	frames int
	kind   Kind

	// FailAt marks read indices (0-based) that return ErrFrameRead
	// without consuming a frame.
	FailAt map[int]bool

	// OpenErr, if set, is returned by Open.
	OpenErr error

	reads  int
	served int
	opened bool
}

// NewMock creates a mock source yielding n frames of the given size.
func NewMock(width, height, n int, kind Kind) *Mock {
	return &Mock{
		width:  width,
		height: height,
		frames: n,
		kind:   kind,
		FailAt: make(map[int]bool),
	}
}

// Open implements Source.
func (m *Mock) Open() error {
	if m.OpenErr != nil {
		return m.OpenErr
	}
	m.opened = true
	return nil
}

// Read implements Source. Scripted failures fire by read index; once
// the frame budget is exhausted every read fails (end of stream).
func (m *Mock) Read(dst *gocv.Mat) error {
	if !m.opened {
		return ErrClosed
	}

	idx := m.reads
	m.reads++

	if m.FailAt[idx] {
		return ErrFrameRead
	}
	if m.served >= m.frames {
		return ErrFrameRead
	}
	m.served++

	frame := gocv.NewMatWithSize(m.height, m.width, gocv.MatTypeCV8UC3)
	defer frame.Close()
	frame.CopyTo(dst)
	return nil
}

// Reads returns how many times Read has been called.
func (m *Mock) Reads() int {
	return m.reads
}

// Served returns how many frames were successfully delivered.
func (m *Mock) Served() int {
	return m.served
}

// Kind implements Source.
func (m *Mock) Kind() Kind {
	return m.kind
}

// Close implements Source.
func (m *Mock) Close() error {
	m.opened = false
	return nil
}
