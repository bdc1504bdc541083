package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRefresherSkipsTickWhileLoading(t *testing.T) {
	api := &fakeAPI{}
	o := newTestOrchestrator(api)
	r := NewRefresher(o, time.Second, zerolog.Nop())

	o.Store().Pending(StreamPopular)
	r.tick(context.Background())

	if got := api.calls.Load(); got != 0 {
		t.Errorf("tick should be skipped while a fetch is in flight, got %d calls", got)
	}
}

func TestRefresherSkipsTickWhenExhausted(t *testing.T) {
	api := &fakeAPI{}
	o := newTestOrchestrator(api)
	o.SetMaxPage(1)
	r := NewRefresher(o, time.Second, zerolog.Nop())

	r.tick(context.Background())

	if got := api.calls.Load(); got != 0 {
		t.Errorf("tick should be skipped when every stream is exhausted, got %d calls", got)
	}
}

func TestRefresherTickLoadsNextPages(t *testing.T) {
	api := &fakeAPI{}
	o := newTestOrchestrator(api)
	r := NewRefresher(o, time.Second, zerolog.Nop())

	r.tick(context.Background())

	for _, stream := range AllStreams() {
		if got := o.Page(stream); got != 2 {
			t.Errorf("expected %s advanced to page 2, got %d", stream, got)
		}
	}
}

func TestRefresherStopsOnCancel(t *testing.T) {
	api := &fakeAPI{}
	o := newTestOrchestrator(api)
	r := NewRefresher(o, 5*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.Start(ctx)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop after cancellation")
	}
}
