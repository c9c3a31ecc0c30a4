package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"gocv.io/x/gocv"

	"github.com/dermaview/clinical-capture/pkg/overlay"
)

func testFrame(t *testing.T) gocv.Mat {
	t.Helper()

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { frame.Close() })
	return frame
}

func TestStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "captured_images")
	store := NewStore(dir)
	frame := testFrame(t)

	path, err := store.Save(frame, overlay.Compute(640, 480))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected output dir to exist: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected capture file to exist: %v", err)
	}
}

func TestStoreReusesExistingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "captured_images")
	frame := testFrame(t)
	ov := overlay.Compute(640, 480)

	if _, err := NewStore(dir).Save(frame, ov); err != nil {
		t.Fatalf("first session save failed: %v", err)
	}
	// A second session targeting the same directory must not error.
	if _, err := NewStore(dir).Save(frame, ov); err != nil {
		t.Fatalf("second session save failed: %v", err)
	}
}

func TestStoreFilenamePattern(t *testing.T) {
	store := NewStore(t.TempDir())
	store.now = func() time.Time {
		return time.Date(2026, 8, 30, 14, 22, 5, 0, time.UTC)
	}
	frame := testFrame(t)

	path, err := store.Save(frame, overlay.Compute(640, 480))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	name := filepath.Base(path)
	if name != "capture_20260830-142205.png" {
		t.Errorf("unexpected filename %q", name)
	}
	if !regexp.MustCompile(`^capture_\d{8}-\d{6}\.png$`).MatchString(name) {
		t.Errorf("filename %q does not match capture_<YYYYMMDD-HHMMSS>.png", name)
	}
}

func TestStoreMetadataSidecar(t *testing.T) {
	store := NewStore(t.TempDir())
	frame := testFrame(t)
	ov := overlay.Compute(640, 480)

	path, err := store.Save(frame, ov)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(path[:len(path)-len(".png")] + ".json")
	if err != nil {
		t.Fatalf("failed to read sidecar: %v", err)
	}

	var meta CaptureMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("failed to decode sidecar: %v", err)
	}

	if meta.SessionID != store.SessionID() {
		t.Errorf("sidecar session ID %q, want %q", meta.SessionID, store.SessionID())
	}
	if meta.Width != 640 || meta.Height != 480 {
		t.Errorf("sidecar dimensions %dx%d, want 640x480", meta.Width, meta.Height)
	}
	if meta.Overlay != ov {
		t.Errorf("sidecar overlay %+v, want %+v", meta.Overlay, ov)
	}
}

func TestStoreWriteFailure(t *testing.T) {
	// A file where the directory should be makes MkdirAll fail.
	tmp := t.TempDir()
	blocked := filepath.Join(tmp, "captured_images")
	if err := os.WriteFile(blocked, []byte("x"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	frame := testFrame(t)
	if _, err := NewStore(blocked).Save(frame, overlay.Compute(640, 480)); err == nil {
		t.Error("expected error when output directory cannot be created")
	}
}
