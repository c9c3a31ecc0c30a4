package source

import (
	"fmt"
	"strings"

	"gocv.io/x/gocv"
)

// Camera is a Source backed by an OpenCV VideoCapture. It handles both
// local devices (by index) and network streams (by URL).
type Camera struct {
	kind   Kind
	device int
	url    string

	cap *gocv.VideoCapture
}

// NewDevice creates a source for a local video device index.
func NewDevice(index int) *Camera {
	return &Camera{kind: KindDevice, device: index}
}

// NewStream creates a source for a network stream URL. The URL is
// normalized so bare "host:port" phone-app addresses work.
func NewStream(url string) *Camera {
	return &Camera{kind: KindStream, url: NormalizeStreamURL(url)}
}

// Open acquires the capture handle.
func (c *Camera) Open() error {
	var (
		cap *gocv.VideoCapture
		err error
	)
	if c.kind == KindStream {
		cap, err = gocv.OpenVideoCapture(c.url)
	} else {
		cap, err = gocv.OpenVideoCapture(c.device)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	if !cap.IsOpened() {
		cap.Close()
		return fmt.Errorf("%w: %s", ErrOpenFailed, c.Describe())
	}

	c.cap = cap
	return nil
}

// Read fetches the next frame into dst.
func (c *Camera) Read(dst *gocv.Mat) error {
	if c.cap == nil {
		return ErrClosed
	}
	if ok := c.cap.Read(dst); !ok || dst.Empty() {
		return fmt.Errorf("%w: %s", ErrFrameRead, c.Describe())
	}
	return nil
}

// Kind reports what backs this source.
func (c *Camera) Kind() Kind {
	return c.kind
}

// Describe returns a human-readable identifier for logs.
func (c *Camera) Describe() string {
	if c.kind == KindStream {
		return c.url
	}
	return fmt.Sprintf("device %d", c.device)
}

// Close releases the capture handle.
func (c *Camera) Close() error {
	if c.cap == nil {
		return nil
	}
	err := c.cap.Close()
	c.cap = nil
	return err
}

// NormalizeStreamURL fixes up phone camera addresses entered as bare
// "192.168.1.100:8080" into the full IP Webcam video URL.
func NormalizeStreamURL(url string) string {
	url = strings.TrimSpace(url)
	if !strings.HasPrefix(url, "http") {
		url = "http://" + url
	}
	if !strings.HasSuffix(url, "/video") {
		url = url + "/video"
	}
	return url
}
