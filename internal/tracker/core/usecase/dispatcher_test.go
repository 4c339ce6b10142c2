package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"konjac/internal/tracker/core/usecase"
)

type fakeBeacon struct {
	Accept bool
	urls   []string
	bodies [][]byte
}

func (f *fakeBeacon) SendBeacon(url string, body []byte) bool {
	f.urls = append(f.urls, url)
	f.bodies = append(f.bodies, body)
	return f.Accept
}

type fakeTransport struct {
	SendFn func(ctx context.Context, url string, body []byte) error
	calls  int
	bodies [][]byte
}

func (f *fakeTransport) Send(ctx context.Context, url string, body []byte) error {
	f.calls++
	f.bodies = append(f.bodies, body)
	if f.SendFn != nil {
		return f.SendFn(ctx, url, body)
	}
	return nil
}

// syncLauncher runs tasks inline so tests can observe them.
func syncLauncher(task func()) { task() }

func TestDispatch_PrefersBeacon(t *testing.T) {
	beacon := &fakeBeacon{Accept: true}
	transport := &fakeTransport{}

	d := usecase.NewDispatcher(beacon, transport, syncLauncher)
	d.Dispatch("https://c.test/track-analytics", map[string]any{"type": "pageview"})

	if len(beacon.urls) != 1 {
		t.Fatalf("expected 1 beacon call, got %d", len(beacon.urls))
	}
	if transport.calls != 0 {
		t.Fatalf("expected transport untouched, got %d calls", transport.calls)
	}

	var got map[string]any
	if err := json.Unmarshal(beacon.bodies[0], &got); err != nil {
		t.Fatalf("beacon body is not json: %v", err)
	}
	if got["type"] != "pageview" {
		t.Fatalf("unexpected body: %s", beacon.bodies[0])
	}
}

func TestDispatch_RejectedBeaconIsNotRetried(t *testing.T) {
	beacon := &fakeBeacon{Accept: false}
	transport := &fakeTransport{}

	d := usecase.NewDispatcher(beacon, transport, syncLauncher)
	d.Dispatch("u", map[string]any{})

	if len(beacon.urls) != 1 || transport.calls != 0 {
		t.Fatalf("expected a single beacon attempt, got beacon=%d transport=%d", len(beacon.urls), transport.calls)
	}
}

func TestDispatch_FallsBackToTransport(t *testing.T) {
	transport := &fakeTransport{}

	d := usecase.NewDispatcher(nil, transport, syncLauncher)
	d.Dispatch("u", map[string]any{"a": 1})

	if transport.calls != 1 {
		t.Fatalf("expected 1 transport call, got %d", transport.calls)
	}
}

func TestDispatch_TransportErrorIsSwallowed(t *testing.T) {
	transport := &fakeTransport{
		SendFn: func(ctx context.Context, url string, body []byte) error {
			return errors.New("network down")
		},
	}

	d := usecase.NewDispatcher(nil, transport, syncLauncher)
	d.Dispatch("u", map[string]any{})

	if transport.calls != 1 {
		t.Fatalf("expected 1 transport call, got %d", transport.calls)
	}
}

func TestDispatch_TransportPanicIsSwallowed(t *testing.T) {
	transport := &fakeTransport{
		SendFn: func(ctx context.Context, url string, body []byte) error {
			panic("boom")
		},
	}

	d := usecase.NewDispatcher(nil, transport, syncLauncher)
	d.Dispatch("u", map[string]any{})
}

func TestDispatch_UnserializablePayloadIsDropped(t *testing.T) {
	transport := &fakeTransport{}

	d := usecase.NewDispatcher(nil, transport, syncLauncher)
	d.Dispatch("u", map[string]any{"bad": math.Inf(1)})

	if transport.calls != 0 {
		t.Fatalf("expected no transport call, got %d", transport.calls)
	}
}

func TestDispatch_NoTransportAtAll(t *testing.T) {
	d := usecase.NewDispatcher(nil, nil, nil)
	d.Dispatch("u", map[string]any{})
}

func TestDispatch_DefaultLauncherIsAsync(t *testing.T) {
	release := make(chan struct{})
	done := make(chan struct{})
	transport := &fakeTransport{
		SendFn: func(ctx context.Context, url string, body []byte) error {
			<-release
			close(done)
			return nil
		},
	}

	d := usecase.NewDispatcher(nil, transport, nil)
	d.Dispatch("u", map[string]any{})

	// Dispatch returned while Send is still blocked.
	close(release)
	<-done
}
