package session

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Capture button dimensions: fixed size, horizontally centered,
// 100px margin from the bottom edge.
const (
	buttonWidth        = 200
	buttonHeight       = 60
	buttonBottomMargin = 100
	buttonLabel        = "CAPTURE"
)

var (
	buttonFill   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	buttonBorder = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	buttonText   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// ButtonRect returns the capture button bounding rectangle for the
// given frame size.
func ButtonRect(width, height int) image.Rectangle {
	x := (width - buttonWidth) / 2
	y := height - buttonBottomMargin
	return image.Rect(x, y, x+buttonWidth, y+buttonHeight)
}

// drawButton renders the capture control: green fill, white border,
// centered black label. Draws in place on frame.
func drawButton(frame *gocv.Mat, rect image.Rectangle) {
	gocv.Rectangle(frame, rect, buttonFill, -1)
	gocv.Rectangle(frame, rect, buttonBorder, 3)

	size := gocv.GetTextSize(buttonLabel, gocv.FontHersheyDuplex, 1.2, 3)
	org := image.Pt(
		rect.Min.X+(rect.Dx()-size.X)/2,
		rect.Min.Y+(rect.Dy()+size.Y)/2,
	)
	gocv.PutText(frame, buttonLabel, org, gocv.FontHersheyDuplex, 1.2, buttonText, 3)
}
