// Package overlay renders static clinical alignment guides on camera
// frames: a circle for the reference coin and a rectangle for the lesion.
// Guide positions are frame-relative so they work at any resolution.
package overlay

import "image"

// coinGapPx separates the lesion box from the coin circle.
// 2mm at a nominal 96 DPI, ~7px regardless of resolution.
const coinGapPx = 7

// Config holds the computed guide geometry for one frame size.
// It is immutable after Compute and identical for identical inputs.
type Config struct {
	CoinCenter image.Point     `json:"coin_center"`
	CoinRadius int             `json:"coin_radius"`
	LesionBox  image.Rectangle `json:"lesion_box"`
}

// Compute derives the guide geometry from the frame dimensions.
// Pure function: no state, same inputs always yield the same Config.
func Compute(width, height int) Config {
	// Lesion box: 20% x 30% of the frame, anchored at (25%, 35%).
	lesionW := int(0.20 * float64(width))
	lesionH := int(0.30 * float64(height))
	lesionX1 := int(0.25 * float64(width))
	lesionY1 := int(0.35 * float64(height))

	lesionBox := image.Rect(lesionX1, lesionY1, lesionX1+lesionW, lesionY1+lesionH)

	// Coin circle sits to the right of the lesion box, vertically centered.
	radius := int(0.08 * float64(width))
	center := image.Pt(lesionBox.Max.X+coinGapPx+radius, height/2)

	return Config{
		CoinCenter: center,
		CoinRadius: radius,
		LesionBox:  lesionBox,
	}
}

// Gap returns the fixed pixel gap between the lesion box and the coin.
func Gap() int {
	return coinGapPx
}
