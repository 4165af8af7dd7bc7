package render

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

// Exercises a real headless Chrome. Gated because CI workers do not always
// ship a browser; run with SITEGEN_CHROME_TESTS=1 locally.
func TestEngineAgainstRealChrome(t *testing.T) {
	if os.Getenv("SITEGEN_CHROME_TESTS") != "1" {
		t.Skip("set SITEGEN_CHROME_TESTS=1 to run browser integration tests")
	}

	cfg := DefaultConfig()
	cfg.SettleDelay = 100 * time.Millisecond
	e := NewEngine(cfg)
	e.Initialize(context.Background())
	defer e.Cleanup()

	if !e.Ready() {
		t.Fatal("engine not ready; is Chrome installed?")
	}

	img, err := e.Capture(context.Background(), &CaptureRequest{
		HTML:     "<h1>integration</h1>",
		CSS:      "h1{color:#10B981}",
		Viewport: ViewportMobile,
	})
	if err != nil {
		t.Fatalf("Capture error: %v", err)
	}
	if len(img) == 0 {
		t.Fatal("empty screenshot")
	}

	url, err := e.CaptureDataURL(context.Background(), &CaptureRequest{HTML: "<p>hi</p>"})
	if err != nil {
		t.Fatalf("CaptureDataURL error: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("url prefix = %q", url[:32])
	}
}
