package session

import (
	"gocv.io/x/gocv"
)

// cv::EVENT_LBUTTONDOWN
const mouseLeftButtonDown = 1

// Display is the window/input collaborator. Events are delivered
// synchronously from within WaitKey, so handler and loop body never
// interleave concurrently.
type Display interface {
	// Show presents a frame on the display surface.
	Show(frame gocv.Mat)

	// WaitKey polls for input for at most the given interval in
	// milliseconds and returns the pressed key code, or -1.
	WaitKey(ms int) int

	// SetClickHandler registers a pointer-down handler receiving
	// window coordinates.
	SetClickHandler(fn func(x, y int))

	// Close releases the display surface.
	Close() error
}

// Window is a Display backed by an OpenCV highgui window.
type Window struct {
	win *gocv.Window
}

// NewWindow opens a named display window.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// Show implements Display.
func (w *Window) Show(frame gocv.Mat) {
	w.win.IMShow(frame)
}

// WaitKey implements Display. Pending mouse events are dispatched to
// the registered handler during this call.
func (w *Window) WaitKey(ms int) int {
	return w.win.WaitKey(ms)
}

// SetClickHandler implements Display, filtering for left button down.
func (w *Window) SetClickHandler(fn func(x, y int)) {
	w.win.SetMouseHandler(func(event int, x int, y int, flags int, userdata interface{}) {
		if event == mouseLeftButtonDown {
			fn(x, y)
		}
	}, nil)
}

// Close implements Display.
func (w *Window) Close() error {
	return w.win.Close()
}
