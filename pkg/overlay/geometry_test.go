package overlay

import (
	"image"
	"testing"
)

var testSizes = []struct {
	name          string
	width, height int
}{
	{"vga", 640, 480},
	{"720p", 1280, 720},
	{"1080p", 1920, 1080},
	{"4k", 3840, 2160},
	{"portrait", 480, 640},
	{"tiny", 100, 100},
}

func TestComputeDeterministic(t *testing.T) {
	for _, tc := range testSizes {
		t.Run(tc.name, func(t *testing.T) {
			a := Compute(tc.width, tc.height)
			b := Compute(tc.width, tc.height)

			if a != b {
				t.Errorf("Compute(%d, %d) not deterministic: %+v vs %+v",
					tc.width, tc.height, a, b)
			}
		})
	}
}

func TestLesionBoxInsideFrame(t *testing.T) {
	for _, tc := range testSizes {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Compute(tc.width, tc.height)
			frame := image.Rect(0, 0, tc.width, tc.height)

			if !cfg.LesionBox.In(frame) {
				t.Errorf("lesion box %v outside %dx%d frame",
					cfg.LesionBox, tc.width, tc.height)
			}
		})
	}
}

func TestLesionBoxProportions(t *testing.T) {
	cfg := Compute(640, 480)

	if got := cfg.LesionBox.Dx(); got != 128 {
		t.Errorf("expected lesion width 128 (20%% of 640), got %d", got)
	}
	if got := cfg.LesionBox.Dy(); got != 144 {
		t.Errorf("expected lesion height 144 (30%% of 480), got %d", got)
	}
	if cfg.LesionBox.Min.X != 160 {
		t.Errorf("expected lesion x1 160 (25%% of 640), got %d", cfg.LesionBox.Min.X)
	}
	if cfg.LesionBox.Min.Y != 168 {
		t.Errorf("expected lesion y1 168 (35%% of 480), got %d", cfg.LesionBox.Min.Y)
	}
}

func TestGuidesNeverOverlap(t *testing.T) {
	for _, tc := range testSizes {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Compute(tc.width, tc.height)

			leftmost := cfg.CoinCenter.X - cfg.CoinRadius
			if leftmost <= cfg.LesionBox.Max.X {
				t.Errorf("coin leftmost point %d not right of lesion box edge %d",
					leftmost, cfg.LesionBox.Max.X)
			}
			if got := leftmost - cfg.LesionBox.Max.X; got != Gap() {
				t.Errorf("expected gap %d between guides, got %d", Gap(), got)
			}
		})
	}
}

func TestCoinGeometry(t *testing.T) {
	cfg := Compute(640, 480)

	if cfg.CoinRadius != 51 {
		t.Errorf("expected coin radius 51 (8%% of 640), got %d", cfg.CoinRadius)
	}
	if cfg.CoinCenter.Y != 240 {
		t.Errorf("expected coin centered vertically at 240, got %d", cfg.CoinCenter.Y)
	}
	wantX := cfg.LesionBox.Max.X + Gap() + cfg.CoinRadius
	if cfg.CoinCenter.X != wantX {
		t.Errorf("expected coin center x %d, got %d", wantX, cfg.CoinCenter.X)
	}
}
