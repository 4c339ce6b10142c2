package usecase

import (
	"sync"
	"sync/atomic"
	"time"

	"konjac/internal/tracker/core/domain"
	"konjac/internal/tracker/core/ports"
)

// Clock returns the current wall-clock time.
type Clock func() time.Time

// PayloadDispatcher is satisfied by *Dispatcher.
type PayloadDispatcher interface {
	Dispatch(url string, payload any)
}

// NavigationTracker sends one pageview per observed navigation: the initial
// load, every programmatic push and every back/forward gesture.
type NavigationTracker struct {
	cfg        domain.TrackerConfig
	env        ports.Environment
	dispatcher PayloadDispatcher
	now        Clock

	mu        sync.Mutex
	installed bool
	cleanup   []func()

	closed atomic.Bool
}

// NewNavigationTracker does not touch env; call Install to hook it.
// A nil env turns the tracker into a no-op.
func NewNavigationTracker(cfg domain.TrackerConfig, env ports.Environment, d PayloadDispatcher, now Clock) *NavigationTracker {
	if now == nil {
		now = time.Now
	}
	return &NavigationTracker{
		cfg:        cfg,
		env:        env,
		dispatcher: d,
		now:        now,
	}
}

// Install hooks navigation and records the initial pageview. Only the first
// call on a tracker has any effect.
func (t *NavigationTracker) Install() {
	if t.env == nil || t.closed.Load() {
		return
	}

	t.mu.Lock()
	if t.installed {
		t.mu.Unlock()
		return
	}
	t.installed = true

	if sub, ok := t.env.(ports.NavigationSubscriber); ok {
		t.cleanup = append(t.cleanup, sub.SubscribeNavigation(t.onNavigate))
	} else {
		t.wrapPushState()
	}
	t.cleanup = append(t.cleanup, t.env.AddPopStateListener(t.onNavigate))
	t.mu.Unlock()

	t.TrackPageview()
}

// wrapPushState decorates the push primitive. The original always runs first
// with the caller's arguments and its result is returned untouched.
func (t *NavigationTracker) wrapPushState() {
	h := t.env.History()
	if h == nil {
		return
	}
	original := h.PushState()
	if original == nil {
		return
	}

	h.SetPushState(func(args ...any) any {
		ret := original(args...)
		t.onNavigate()
		return ret
	})
}

func (t *NavigationTracker) onNavigate() {
	if t.closed.Load() {
		return
	}
	t.TrackPageview()
}

// TrackPageview builds a pageview for the current location and dispatches it.
// It never fails.
func (t *NavigationTracker) TrackPageview() {
	if t.env == nil || t.closed.Load() {
		return
	}
	defer func() { _ = recover() }()

	p := domain.PageviewPayload{
		SiteKey:   t.cfg.SiteKey,
		Type:      domain.TypePageview,
		Timestamp: domain.FormatTimestamp(t.now()),
		URL:       t.env.Location(),
		Referrer:  t.env.Referrer(),
	}
	t.dispatcher.Dispatch(t.cfg.TrackURL(), p)
}

// Installed reports whether Install hooked an environment.
func (t *NavigationTracker) Installed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.installed
}

// Close stops all further pageviews. The wrapped push primitive stays in
// place and keeps delegating to the original.
func (t *NavigationTracker) Close() {
	if !t.closed.CompareAndSwap(false, true) {
		return
	}

	t.mu.Lock()
	cleanup := t.cleanup
	t.cleanup = nil
	t.mu.Unlock()

	for _, fn := range cleanup {
		if fn != nil {
			fn()
		}
	}
}
