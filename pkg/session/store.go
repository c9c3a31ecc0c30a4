package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/dermaview/clinical-capture/pkg/overlay"
)

// CaptureMeta is the sidecar record written next to each still so a
// capture can be audited against the guide geometry it was taken with.
type CaptureMeta struct {
	SessionID  string         `json:"session_id"`
	CapturedAt string         `json:"captured_at"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Overlay    overlay.Config `json:"overlay"`
}

// Store persists captured frames as timestamped PNGs in an output
// directory, creating the directory on first use.
type Store struct {
	dir       string
	sessionID string

	now func() time.Time
}

// NewStore creates a store writing into dir. Each store carries a
// fresh session ID recorded in the capture metadata.
func NewStore(dir string) *Store {
	return &Store{
		dir:       dir,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
}

// SessionID returns the ID stamped into capture metadata.
func (s *Store) SessionID() string {
	return s.sessionID
}

// Dir returns the output directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the annotated frame as capture_<YYYYMMDD-HHMMSS>.png plus
// a metadata sidecar, and returns the image path. The directory is
// created if absent; an existing directory is reused.
func (s *Store) Save(frame gocv.Mat, ov overlay.Config) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("%w: create %s: %v", ErrWriteFailed, s.dir, err)
	}

	ts := s.now()
	name := fmt.Sprintf("capture_%s.png", ts.Format("20060102-150405"))
	path := filepath.Join(s.dir, name)

	if ok := gocv.IMWrite(path, frame); !ok {
		return "", fmt.Errorf("%w: %s", ErrWriteFailed, path)
	}

	meta := CaptureMeta{
		SessionID:  s.sessionID,
		CapturedAt: ts.Format(time.RFC3339),
		Width:      frame.Cols(),
		Height:     frame.Rows(),
		Overlay:    ov,
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: encode metadata: %v", ErrWriteFailed, err)
	}
	metaPath := path[:len(path)-len(".png")] + ".json"
	if err := os.WriteFile(metaPath, data, 0644); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWriteFailed, metaPath, err)
	}

	return path, nil
}
