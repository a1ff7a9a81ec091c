package chart

import (
	"errors"
	"io"
	"sync"

	"github.com/muesli/termenv"
)

var (
	ErrCanvasClosed   = errors.New("chart: canvas closed")
	ErrHandleReleased = errors.New("chart: handle released")
)

// Canvas owns at most one live chart handle. Rendering again releases the
// previous handle before the new one is created.
type Canvas struct {
	mu      sync.Mutex
	width   int
	profile termenv.Profile
	live    *Handle
	serial  int
	closed  bool

	released int
}

type CanvasOption func(*Canvas)

// WithProfile forces a colour profile; termenv.Ascii disables colour.
func WithProfile(p termenv.Profile) CanvasOption {
	return func(c *Canvas) {
		c.profile = p
	}
}

// WithWidth sets the maximum bar length in cells.
func WithWidth(w int) CanvasOption {
	return func(c *Canvas) {
		if w > 0 {
			c.width = w
		}
	}
}

func NewCanvas(opts ...CanvasOption) *Canvas {
	c := &Canvas{
		width:   defaultWidth,
		profile: termenv.ColorProfile(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

const defaultWidth = 32

// Render releases the live handle, if any, and draws data as kind.
func (c *Canvas) Render(kind Kind, data Data) (*Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrCanvasClosed
	}
	c.releaseLocked()

	c.serial++
	h := &Handle{
		id:   c.serial,
		kind: kind,
		text: render(kind, data, c.width, c.profile),
	}
	c.live = h
	return h, nil
}

// Live is the current handle, or nil.
func (c *Canvas) Live() *Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live
}

// Released reports how many handles this canvas has released.
func (c *Canvas) Released() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.released
}

// Close releases the live handle. Rendering after Close fails.
func (c *Canvas) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.releaseLocked()
	c.closed = true
	return nil
}

func (c *Canvas) releaseLocked() {
	if c.live == nil {
		return
	}
	c.live.release()
	c.live = nil
	c.released++
}

// Handle is one rendered chart.
type Handle struct {
	mu       sync.Mutex
	id       int
	kind     Kind
	text     string
	released bool
}

func (h *Handle) ID() int    { return h.id }
func (h *Handle) Kind() Kind { return h.kind }

// String is the rendered chart, or "" once released.
func (h *Handle) String() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return ""
	}
	return h.text
}

// Draw writes the chart to w.
func (h *Handle) Draw(w io.Writer) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return ErrHandleReleased
	}
	_, err := io.WriteString(w, h.text)
	return err
}

func (h *Handle) Released() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.released
}

func (h *Handle) release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.released = true
	h.text = ""
}
