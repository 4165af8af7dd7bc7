package render

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/syncx"
)

// State is the engine lifecycle state.
type State int32

const (
	// StateUninitialized means Initialize has not run yet.
	StateUninitialized State = iota
	// StateReady means a browser is up and captures are accepted.
	StateReady
	// StateDisabled means the browser could not be launched or was shut
	// down. Captures fail fast with ErrUnavailable.
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateDisabled:
		return "disabled"
	default:
		return "uninitialized"
	}
}

// Supported screenshot formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

const defaultJPEGQuality = 85

// CaptureRequest describes a single screenshot.
type CaptureRequest struct {
	HTML     string
	CSS      string
	Viewport string // preset name; unknown names resolve to desktop
	Format   string // png (default) or jpeg
	Quality  int    // jpeg only; defaults to 85
}

// ResponsiveSet holds one data URL per responsive preset. An entry is nil
// when that preset's capture failed.
type ResponsiveSet struct {
	Desktop *string `json:"desktop"`
	Tablet  *string `json:"tablet"`
	Mobile  *string `json:"mobile"`
}

// browser is the handle the engine drives. The production implementation
// talks to headless Chrome; tests substitute a fake.
type browser interface {
	capturePage(ctx context.Context, doc string, vp Viewport, format string, quality int) ([]byte, error)
	close() error
}

// Engine renders HTML documents to screenshots through a headless browser.
// The browser process is shared; each capture runs in its own tab. All
// methods are safe for concurrent use.
type Engine struct {
	cfg      *Config
	launchFn func(*Config) (browser, error)
	gate     syncx.Limit

	mu      sync.RWMutex
	state   State
	handle  browser
	cleaned bool
}

// EngineOption customises engine construction.
type EngineOption func(*Engine)

func withLaunchFn(fn func(*Config) (browser, error)) EngineOption {
	return func(e *Engine) { e.launchFn = fn }
}

// NewEngine constructs an engine in the uninitialized state. A nil config
// falls back to defaults.
func NewEngine(cfg *Config, opts ...EngineOption) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Engine{
		cfg:      cfg,
		launchFn: launchChrome,
		gate:     syncx.NewLimit(cfg.MaxConcurrentCaptures),
		state:    StateUninitialized,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize launches the shared browser. It never returns an error: a
// launch failure disables the engine for the life of the process and the
// rest of the service keeps working without previews. Only the first call
// in the uninitialized state does anything.
func (e *Engine) Initialize(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateUninitialized || e.cleaned {
		return
	}

	handle, err := e.launchFn(e.cfg)
	if err != nil {
		logx.WithContext(ctx).Errorf("render: browser launch failed, previews disabled: %v", err)
		e.state = StateDisabled
		return
	}
	e.handle = handle
	e.state = StateReady
	logx.WithContext(ctx).Infow("render: engine ready",
		logx.Field("maxConcurrentCaptures", e.cfg.MaxConcurrentCaptures))
}

// Ready reports whether captures are currently accepted.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state == StateReady
}

// GetState returns the current lifecycle state.
func (e *Engine) GetState() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Capture renders the request's document at the requested viewport and
// returns raw image bytes. A per-capture failure does not change engine
// state.
func (e *Engine) Capture(ctx context.Context, req *CaptureRequest) ([]byte, error) {
	if req == nil {
		return nil, errors.New("render: capture request is required")
	}
	handle, err := e.readyHandle()
	if err != nil {
		return nil, err
	}

	format, quality, err := normalizeFormat(req.Format, req.Quality)
	if err != nil {
		return nil, err
	}
	vp := ViewportFor(req.Viewport)
	doc := ComposeDocument(req.HTML, req.CSS)

	e.gate.Borrow()
	defer func() {
		_ = e.gate.Return()
	}()

	img, err := handle.capturePage(ctx, doc, vp, format, quality)
	if err != nil {
		return nil, &CaptureError{Viewport: vp.Name, Cause: err}
	}
	return img, nil
}

// CaptureDataURL renders like Capture and encodes the result as a base64
// data URL ready for embedding.
func (e *Engine) CaptureDataURL(ctx context.Context, req *CaptureRequest) (string, error) {
	img, err := e.Capture(ctx, req)
	if err != nil {
		return "", err
	}
	format, _, _ := normalizeFormat(req.Format, req.Quality)
	return encodeDataURL(format, img), nil
}

// CaptureResponsive renders the document at every responsive preset. Presets
// are captured sequentially; a failing preset yields a nil entry and the
// remaining presets are still attempted. Only engine unavailability fails
// the whole call.
func (e *Engine) CaptureResponsive(ctx context.Context, html, css string) (*ResponsiveSet, error) {
	if _, err := e.readyHandle(); err != nil {
		return nil, err
	}

	set := &ResponsiveSet{}
	for _, vp := range ResponsiveViewports() {
		url, err := e.CaptureDataURL(ctx, &CaptureRequest{
			HTML:     html,
			CSS:      css,
			Viewport: vp.Name,
			Format:   FormatPNG,
		})
		if err != nil {
			logx.WithContext(ctx).Errorf("render: responsive capture failed for %s: %v", vp.Name, err)
			continue
		}
		switch vp.Name {
		case ViewportDesktop:
			set.Desktop = &url
		case ViewportTablet:
			set.Tablet = &url
		case ViewportMobile:
			set.Mobile = &url
		}
	}
	return set, nil
}

// Cleanup shuts the browser down and permanently disables the engine. It is
// idempotent and safe to call in any state.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cleaned {
		return
	}
	e.cleaned = true
	if e.handle != nil {
		if err := e.handle.close(); err != nil {
			logx.Errorf("render: browser shutdown: %v", err)
		}
		e.handle = nil
	}
	e.state = StateDisabled
}

func (e *Engine) readyHandle() (browser, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state != StateReady || e.handle == nil {
		return nil, ErrUnavailable
	}
	return e.handle, nil
}

func normalizeFormat(format string, quality int) (string, int, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatPNG:
		return FormatPNG, 0, nil
	case FormatJPEG, "jpg":
		if quality <= 0 || quality > 100 {
			quality = defaultJPEGQuality
		}
		return FormatJPEG, quality, nil
	default:
		return "", 0, fmt.Errorf("render: unsupported format %q", format)
	}
}

func encodeDataURL(format string, img []byte) string {
	return "data:image/" + format + ";base64," + base64.StdEncoding.EncodeToString(img)
}
