// Package headless is an in-memory browser session: a history stack with
// pushState/replaceState and back/forward traversal that fires popstate.
package headless

import (
	"net/url"
	"sync"

	"konjac/internal/tracker/core/ports"
)

type entry struct {
	state any
	url   string
}

// Window is safe for use from multiple goroutines, but listeners and the push
// primitive are always invoked without the lock held.
type Window struct {
	mu       sync.Mutex
	entries  []entry
	index    int
	referrer string
	push     ports.PushStateFunc

	listeners map[int]func()
	nextID    int

	beacon ports.BeaconPort
}

type Option func(*Window)

// WithReferrer sets document.referrer for the session.
func WithReferrer(ref string) Option {
	return func(w *Window) { w.referrer = ref }
}

// WithBeacon exposes a beacon primitive, as navigator.sendBeacon would.
func WithBeacon(b ports.BeaconPort) Option {
	return func(w *Window) { w.beacon = b }
}

// NewWindow opens a session on startURL.
func NewWindow(startURL string, opts ...Option) *Window {
	w := &Window{
		entries:   []entry{{url: startURL}},
		listeners: map[int]func(){},
	}
	w.push = w.nativePushState
	for _, opt := range opts {
		opt(w)
	}
	return w
}

var _ ports.Environment = (*Window)(nil)

func (w *Window) Location() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entries[w.index].url
}

func (w *Window) Referrer() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.referrer
}

// State returns the state object of the current entry.
func (w *Window) State() any {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entries[w.index].state
}

// Index is the position of the current entry.
func (w *Window) Index() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.index
}

// Len is history.length.
func (w *Window) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

// Beacon returns the configured beacon, or nil.
func (w *Window) Beacon() ports.BeaconPort { return w.beacon }

func (w *Window) History() ports.History { return (*history)(w) }

func (w *Window) AddPopStateListener(fn func()) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	return func() {
		w.mu.Lock()
		delete(w.listeners, id)
		w.mu.Unlock()
	}
}

// PushState calls whatever is currently installed as history.pushState,
// exactly like page script would.
func (w *Window) PushState(state any, title, rawURL string) any {
	w.mu.Lock()
	fn := w.push
	w.mu.Unlock()
	return fn(state, title, rawURL)
}

// ReplaceState swaps the current entry without creating a new one and
// without notifying anyone.
func (w *Window) ReplaceState(state any, rawURL string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	cur := w.entries[w.index]
	w.entries[w.index] = entry{state: state, url: w.resolve(cur.url, rawURL)}
}

func (w *Window) Back()    { w.Go(-1) }
func (w *Window) Forward() { w.Go(1) }

// Go moves delta entries through the history. Out of range moves are ignored;
// otherwise popstate listeners fire once.
func (w *Window) Go(delta int) {
	w.mu.Lock()
	target := w.index + delta
	if delta == 0 || target < 0 || target >= len(w.entries) {
		w.mu.Unlock()
		return
	}
	w.index = target
	listeners := make([]func(), 0, len(w.listeners))
	for _, fn := range w.listeners {
		listeners = append(listeners, fn)
	}
	w.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// nativePushState is the unwrapped primitive: (state, title, url?) -> nil.
func (w *Window) nativePushState(args ...any) any {
	var state any
	var rawURL string
	if len(args) > 0 {
		state = args[0]
	}
	if len(args) > 2 {
		rawURL, _ = args[2].(string)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	cur := w.entries[w.index].url
	w.entries = append(w.entries[:w.index+1], entry{state: state, url: w.resolve(cur, rawURL)})
	w.index++
	return nil
}

// resolve applies ref relative to base. An empty ref keeps the current URL.
func (w *Window) resolve(base, ref string) string {
	if ref == "" {
		return base
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return base
	}
	return b.ResolveReference(r).String()
}

type history Window

func (h *history) PushState() ports.PushStateFunc {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.push
}

func (h *history) SetPushState(fn ports.PushStateFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.push = fn
}
