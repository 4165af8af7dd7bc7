package render

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// chromeBrowser drives a shared headless Chrome process. Each capture opens
// a fresh tab so page state never leaks between calls.
type chromeBrowser struct {
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	navTimeout time.Duration
	settle     time.Duration
}

func launchChrome(cfg *Config) (browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Run with no actions forces the process to start now, so a broken
	// Chrome install surfaces at launch instead of on the first capture.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("start chrome: %w", err)
	}

	return &chromeBrowser{
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		navTimeout:    cfg.NavigationTimeout,
		settle:        cfg.SettleDelay,
	}, nil
}

func (b *chromeBrowser) capturePage(ctx context.Context, doc string, vp Viewport, format string, quality int) ([]byte, error) {
	tabCtx, tabCancel := chromedp.NewContext(b.browserCtx)
	defer tabCancel()

	// The tab lives on the browser context, not the caller's. Propagate
	// caller cancellation by hand.
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	runCtx, cancel := context.WithTimeout(tabCtx, b.navTimeout)
	defer cancel()

	// Armed only once the document is set, so the about:blank navigation's
	// own networkIdle cannot satisfy the wait.
	var armed atomic.Bool
	idle := make(chan struct{}, 1)
	chromedp.ListenTarget(runCtx, networkIdleListener(&armed, idle))

	var img []byte
	err := chromedp.Run(runCtx,
		emulation.SetDeviceMetricsOverride(vp.Width, vp.Height, vp.Scale, false),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if err := page.SetLifecycleEventsEnabled(true).Do(ctx); err != nil {
				return err
			}
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			armed.Store(true)
			return page.SetDocumentContent(tree.Frame.ID, doc).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		// DOM-ready fires the moment the markup is set; linked stylesheets
		// and images are still in flight until the page goes network idle.
		chromedp.ActionFunc(func(ctx context.Context) error {
			return awaitSignal(ctx, idle)
		}),
		chromedp.Sleep(b.settle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			params := page.CaptureScreenshot().
				WithCaptureBeyondViewport(vp.FullPage)
			if format == FormatJPEG {
				params = params.WithFormat(page.CaptureScreenshotFormatJpeg).
					WithQuality(int64(quality))
			} else {
				params = params.WithFormat(page.CaptureScreenshotFormatPng)
			}
			var err error
			img, err = params.Do(ctx)
			return err
		}),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	return img, nil
}

// networkIdleListener signals idle once the page reports no in-flight
// network activity. Events arriving before arming are ignored.
func networkIdleListener(armed *atomic.Bool, idle chan<- struct{}) func(ev interface{}) {
	return func(ev interface{}) {
		e, ok := ev.(*page.EventLifecycleEvent)
		if !ok || e.Name != "networkIdle" || !armed.Load() {
			return
		}
		select {
		case idle <- struct{}{}:
		default:
		}
	}
}

// awaitSignal blocks until ch delivers or ctx ends, whichever comes first.
func awaitSignal(ctx context.Context, ch <-chan struct{}) error {
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *chromeBrowser) close() error {
	b.browserCancel()
	b.allocCancel()
	return nil
}
