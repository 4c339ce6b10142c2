//go:build js

package konjac

import (
	"context"

	"konjac/internal/tracker/adapters/http/nethttp"
	"konjac/internal/tracker/core/ports"
)

// net/http is backed by fetch() in the browser.
func defaultClients() (ports.TransportPort, ports.QuerierPort) {
	c := nethttp.NewClient(nil)
	return c, c
}

// The browser already has navigator.sendBeacon; the fallback queue simply
// forwards to the transport on a goroutine.
type forwardQueue struct {
	t ports.TransportPort
}

func newBeaconQueue(t ports.TransportPort, _ int) *forwardQueue { return &forwardQueue{t: t} }

func (q *forwardQueue) SendBeacon(url string, body []byte) bool {
	go func() {
		defer func() { _ = recover() }()
		_ = q.t.Send(context.Background(), url, body)
	}()
	return true
}

func (q *forwardQueue) Close(context.Context) error { return nil }
