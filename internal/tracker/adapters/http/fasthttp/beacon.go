package fasthttp

import (
	"context"
	"sync"

	"konjac/internal/tracker/core/ports"
)

const DefaultBeaconQueueSize = 64

type beaconItem struct {
	url  string
	body []byte
}

// BeaconQueue is the native counterpart of navigator.sendBeacon: SendBeacon
// never blocks, and queued payloads keep being delivered until Close returns.
type BeaconQueue struct {
	transport ports.TransportPort

	mu     sync.RWMutex
	closed bool
	items  chan beaconItem

	done     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

// NewBeaconQueue starts the delivery worker. size <= 0 uses DefaultBeaconQueueSize.
func NewBeaconQueue(transport ports.TransportPort, size int) *BeaconQueue {
	if size <= 0 {
		size = DefaultBeaconQueueSize
	}
	q := &BeaconQueue{
		transport: transport,
		items:     make(chan beaconItem, size),
		done:      make(chan struct{}),
		stop:      make(chan struct{}),
	}
	go q.run()
	return q
}

var _ ports.BeaconPort = (*BeaconQueue)(nil)

// SendBeacon reports false when the queue is full or closed; the payload is
// then dropped.
func (q *BeaconQueue) SendBeacon(url string, body []byte) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return false
	}
	select {
	case q.items <- beaconItem{url: url, body: body}:
		return true
	default:
		return false
	}
}

func (q *BeaconQueue) run() {
	defer close(q.done)
	for {
		select {
		case it, ok := <-q.items:
			if !ok {
				return
			}
			q.deliver(it)
		case <-q.stop:
			return
		}
	}
}

func (q *BeaconQueue) deliver(it beaconItem) {
	defer func() { _ = recover() }()
	_ = q.transport.Send(context.Background(), it.url, it.body)
}

// Close stops accepting payloads and waits for the queued ones to be sent.
// When ctx ends first the remainder is abandoned and ctx.Err is returned.
func (q *BeaconQueue) Close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.items)
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		q.stopOnce.Do(func() { close(q.stop) })
		return ctx.Err()
	}
}
