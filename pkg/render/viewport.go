package render

// Viewport describes the emulated screen a page is captured at.
type Viewport struct {
	Name     string
	Width    int64
	Height   int64
	Scale    float64
	FullPage bool
}

// Viewport preset names accepted by capture requests.
const (
	ViewportDesktop = "desktop"
	ViewportTablet  = "tablet"
	ViewportMobile  = "mobile"
)

var viewportPresets = map[string]Viewport{
	ViewportDesktop: {Name: ViewportDesktop, Width: 1920, Height: 1080, Scale: 1, FullPage: true},
	ViewportTablet:  {Name: ViewportTablet, Width: 768, Height: 1024, Scale: 2, FullPage: true},
	ViewportMobile:  {Name: ViewportMobile, Width: 375, Height: 667, Scale: 2, FullPage: true},
}

// ViewportFor resolves a preset name to its viewport. Unknown names resolve
// to the desktop preset so a capture request never fails on the name alone.
func ViewportFor(name string) Viewport {
	if vp, ok := viewportPresets[name]; ok {
		return vp
	}
	return viewportPresets[ViewportDesktop]
}

// ResponsiveViewports returns the presets captured by CaptureResponsive, in
// the order they are attempted.
func ResponsiveViewports() []Viewport {
	return []Viewport{
		viewportPresets[ViewportDesktop],
		viewportPresets[ViewportTablet],
		viewportPresets[ViewportMobile],
	}
}
