package render

import "testing"

func TestViewportForPresets(t *testing.T) {
	tests := []struct {
		name   string
		width  int64
		height int64
		scale  float64
	}{
		{ViewportDesktop, 1920, 1080, 1},
		{ViewportTablet, 768, 1024, 2},
		{ViewportMobile, 375, 667, 2},
	}
	for _, tt := range tests {
		vp := ViewportFor(tt.name)
		if vp.Width != tt.width || vp.Height != tt.height || vp.Scale != tt.scale {
			t.Fatalf("%s = %+v", tt.name, vp)
		}
		if !vp.FullPage {
			t.Fatalf("%s must capture full page", tt.name)
		}
	}
}

func TestViewportForUnknownFallsBackToDesktop(t *testing.T) {
	for _, name := range []string{"", "watch", "DESKTOP"} {
		if vp := ViewportFor(name); vp.Name != ViewportDesktop {
			t.Fatalf("ViewportFor(%q) = %+v, want desktop", name, vp)
		}
	}
}

func TestResponsiveViewportsOrder(t *testing.T) {
	got := ResponsiveViewports()
	want := []string{ViewportDesktop, ViewportTablet, ViewportMobile}
	if len(got) != len(want) {
		t.Fatalf("viewports = %v", got)
	}
	for i, vp := range got {
		if vp.Name != want[i] {
			t.Fatalf("viewport[%d] = %q, want %q", i, vp.Name, want[i])
		}
	}
}
