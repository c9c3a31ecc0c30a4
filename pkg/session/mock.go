package session

import (
	"image"

	"gocv.io/x/gocv"
)

// MockDisplay is a scripted Display for testing. Keys and clicks are
// delivered by WaitKey call index, mirroring how highgui dispatches
// pending events synchronously inside the poll.
type MockDisplay struct {
	// Keys holds the key code returned by each WaitKey call in order;
	// exhausted entries return -1 (no key).
	Keys []int

	// ClicksAt maps a WaitKey call index to pointer-down events
	// delivered to the click handler during that poll.
	ClicksAt map[int][]image.Point

	handler func(x, y int)
	calls   int

	// Shown counts frames presented.
	Shown int
}

// NewMockDisplay creates a display with no scripted input.
func NewMockDisplay() *MockDisplay {
	return &MockDisplay{
		ClicksAt: make(map[int][]image.Point),
	}
}

// Show implements Display.
func (d *MockDisplay) Show(frame gocv.Mat) {
	d.Shown++
}

// WaitKey implements Display, delivering any scripted clicks for this
// call before returning the scripted key.
func (d *MockDisplay) WaitKey(ms int) int {
	idx := d.calls
	d.calls++

	if d.handler != nil {
		for _, pt := range d.ClicksAt[idx] {
			d.handler(pt.X, pt.Y)
		}
	}

	if idx < len(d.Keys) {
		return d.Keys[idx]
	}
	return -1
}

// SetClickHandler implements Display.
func (d *MockDisplay) SetClickHandler(fn func(x, y int)) {
	d.handler = fn
}

// Close implements Display.
func (d *MockDisplay) Close() error {
	return nil
}
