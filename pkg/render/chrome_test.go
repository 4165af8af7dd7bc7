package render

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chromedp/cdproto/page"
)

func TestNetworkIdleListener(t *testing.T) {
	var armed atomic.Bool
	idle := make(chan struct{}, 1)
	listen := networkIdleListener(&armed, idle)

	// The blank-page navigation goes idle before the document is set; that
	// event must not count.
	listen(&page.EventLifecycleEvent{Name: "networkIdle"})
	select {
	case <-idle:
		t.Fatal("events before arming must be ignored")
	default:
	}

	armed.Store(true)
	listen(&page.EventLifecycleEvent{Name: "load"})
	listen("unrelated event")
	select {
	case <-idle:
		t.Fatal("only networkIdle may signal")
	default:
	}

	listen(&page.EventLifecycleEvent{Name: "networkIdle"})
	listen(&page.EventLifecycleEvent{Name: "networkIdle"}) // repeat must not block
	select {
	case <-idle:
	default:
		t.Fatal("networkIdle after arming must signal")
	}
}

func TestAwaitSignal(t *testing.T) {
	ch := make(chan struct{}, 1)
	ch <- struct{}{}
	if err := awaitSignal(context.Background(), ch); err != nil {
		t.Fatalf("awaitSignal error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := awaitSignal(ctx, make(chan struct{})); err == nil {
		t.Fatal("awaitSignal must fail when the bound expires before idle")
	}
}
