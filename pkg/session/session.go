// Package session owns the live capture loop: acquire a frame, draw
// the alignment guides and capture control, present it, and persist a
// single still when the operator triggers a capture.
package session

import (
	"context"
	"fmt"
	"image"
	"sync/atomic"

	"gocv.io/x/gocv"

	"github.com/dermaview/clinical-capture/internal/log"
	"github.com/dermaview/clinical-capture/pkg/overlay"
	"github.com/dermaview/clinical-capture/pkg/source"
)

// State of the session. Frozen is terminal: once a still is written,
// further capture triggers are ignored.
type State int

const (
	Live State = iota
	Frozen
)

func (s State) String() string {
	if s == Frozen {
		return "frozen"
	}
	return "live"
}

// Feedback banners shown per state.
const (
	liveMessage   = "Align coin and lesion in guides"
	frozenMessage = "CAPTURED SUCCESSFULLY - Press Q to exit"
)

const (
	keySpace = 32
	keyQuitL = 'q'
	keyQuitU = 'Q'
)

// pollInterval is the display input poll in milliseconds; it bounds
// how long one loop iteration can block.
const pollInterval = 1

// trigger is the capture request flag. It is set by input handlers
// (click handler, remote trigger) and read-then-cleared by the loop,
// so one press fires at most one capture.
type trigger struct {
	fired atomic.Bool
}

func (t *trigger) fire() {
	t.fired.Store(true)
}

func (t *trigger) consume() bool {
	return t.fired.Swap(false)
}

// Session is the capture loop. Create with New, run with Run.
type Session struct {
	src    source.Source
	disp   Display
	store  *Store
	policy source.ReadPolicy

	renderer *overlay.Renderer
	button   image.Rectangle
	trig     trigger
	state    State
	lastPath string

	// OnFrame, if set, receives each annotated frame encoded as JPEG.
	// Used by the remote preview server.
	OnFrame func(jpeg []byte)

	// OnReady, if set, is called once the first frame has fixed the
	// session's frame dimensions.
	OnReady func(width, height int)

	// OnStateChange, if set, is called when the session freezes.
	OnStateChange func(state State)
}

// New creates a session over an opened source and a display.
func New(src source.Source, disp Display, store *Store, policy source.ReadPolicy) *Session {
	return &Session{
		src:    src,
		disp:   disp,
		store:  store,
		policy: policy,
	}
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// LastCapturePath returns the path of the written still, if any.
func (s *Session) LastCapturePath() string {
	return s.lastPath
}

// RequestCapture arms the capture trigger, equivalent to a button
// click or spacebar press. Safe to call from other goroutines.
func (s *Session) RequestCapture() {
	s.trig.fire()
}

// Run executes the capture loop until the quit key is pressed, the
// source ends (per the read policy), or ctx is cancelled. The first
// frame read fixes the frame dimensions for the whole session.
func (s *Session) Run(ctx context.Context) error {
	frame := gocv.NewMat()
	defer frame.Close()

	if err := s.src.Read(&frame); err != nil {
		return fmt.Errorf("%w: %v", ErrInitialFrame, err)
	}

	width, height := frame.Cols(), frame.Rows()
	s.renderer = overlay.NewRenderer(width, height)
	s.button = ButtonRect(width, height)
	log.Info("camera initialized", "width", width, "height", height)
	if s.OnReady != nil {
		s.OnReady(width, height)
	}

	s.disp.SetClickHandler(func(x, y int) {
		if image.Pt(x, y).In(s.button) {
			s.trig.fire()
		}
	})

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		if err := s.src.Read(&frame); err != nil {
			if s.policy == source.PolicyRetry {
				log.Warn("frame dropped", "err", err)
				continue
			}
			log.Info("camera stream ended", "err", err)
			return nil
		}

		if quit := s.iterate(frame); quit {
			return nil
		}
	}
}

// iterate renders and presents one frame, then handles input.
// Returns true when the session should end.
func (s *Session) iterate(frame gocv.Mat) bool {
	annotated := s.renderer.DrawGuides(frame)
	defer annotated.Close()

	if s.state == Frozen {
		s.renderer.DrawFeedback(&annotated, frozenMessage, overlay.ColorFrozen)
	} else {
		s.renderer.DrawFeedback(&annotated, liveMessage, overlay.ColorLive)

		// Recompute the control region each frame so hit testing
		// always matches what is on screen.
		s.button = ButtonRect(frame.Cols(), frame.Rows())
		drawButton(&annotated, s.button)
	}

	s.publish(annotated)
	s.disp.Show(annotated)
	key := s.disp.WaitKey(pollInterval)

	if s.state == Frozen {
		// Stale or repeated triggers are discarded while frozen.
		s.trig.consume()
		return key == keyQuitL || key == keyQuitU
	}

	if s.trig.consume() || key == keySpace {
		if err := s.capture(annotated); err != nil {
			// Stay live with the trigger cleared so the
			// operator can retry.
			log.Error("capture failed", "err", err)
		}
	}

	return key == keyQuitL || key == keyQuitU
}

// capture persists the annotated frame and freezes the session.
func (s *Session) capture(annotated gocv.Mat) error {
	path, err := s.store.Save(annotated, s.renderer.Config())
	if err != nil {
		return err
	}

	s.lastPath = path
	s.state = Frozen
	log.Info("image captured", "path", path)
	if s.OnStateChange != nil {
		s.OnStateChange(Frozen)
	}
	return nil
}

// publish encodes the annotated frame for the preview callback.
func (s *Session) publish(annotated gocv.Mat) {
	if s.OnFrame == nil {
		return
	}

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, annotated)
	if err != nil {
		log.Debug("preview encode failed", "err", err)
		return
	}
	defer buf.Close()

	jpeg := make([]byte, len(buf.GetBytes()))
	copy(jpeg, buf.GetBytes())
	s.OnFrame(jpeg)
}
