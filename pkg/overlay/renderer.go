package overlay

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Drawing palette. OpenCV conventions from the clinical protocol:
// green guides, cyan frozen banner.
var (
	ColorGuide  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorLive   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorFrozen = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

const guideThickness = 2

// Renderer draws the static guides and feedback text for one frame size.
type Renderer struct {
	width  int
	height int
	cfg    Config
}

// NewRenderer computes the guide geometry for the given frame size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		cfg:    Compute(width, height),
	}
}

// Config returns the computed guide geometry.
func (r *Renderer) Config() Config {
	return r.cfg
}

// DrawGuides returns a copy of frame with the coin circle and lesion box
// drawn on it. The input frame is not modified. The caller owns the
// returned Mat and must Close it.
func (r *Renderer) DrawGuides(frame gocv.Mat) gocv.Mat {
	annotated := frame.Clone()

	gocv.Circle(&annotated, r.cfg.CoinCenter, r.cfg.CoinRadius, ColorGuide, guideThickness)
	gocv.Rectangle(&annotated, r.cfg.LesionBox, ColorGuide, guideThickness)

	return annotated
}

// DrawFeedback draws the top banner in the given color plus the two
// static labels next to the guides. Draws in place on frame.
func (r *Renderer) DrawFeedback(frame *gocv.Mat, message string, c color.RGBA) {
	// Main instruction at top
	gocv.PutText(frame, message, image.Pt(50, 40), gocv.FontHersheySimplex, 0.7, c, 2)

	// Coin label above the circle
	coinLabel := image.Pt(
		r.cfg.CoinCenter.X-80,
		r.cfg.CoinCenter.Y-r.cfg.CoinRadius-15,
	)
	gocv.PutText(frame, "Align coin inside circle", coinLabel, gocv.FontHersheySimplex, 0.5, ColorGuide, 1)

	// Lesion label above the box
	lesionLabel := image.Pt(r.cfg.LesionBox.Min.X, r.cfg.LesionBox.Min.Y-10)
	gocv.PutText(frame, "Place lesion here", lesionLabel, gocv.FontHersheySimplex, 0.5, ColorGuide, 1)
}
