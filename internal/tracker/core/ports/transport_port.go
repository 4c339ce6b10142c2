package ports

import "context"

// BeaconPort is a non-blocking delivery primitive that survives page unload.
// SendBeacon reports whether the payload was queued.
type BeaconPort interface {
	SendBeacon(url string, body []byte) bool
}

// TransportPort is the asynchronous fallback used when no beacon is available.
type TransportPort interface {
	Send(ctx context.Context, url string, body []byte) error
}

// Response is the raw outcome of a query call.
type Response struct {
	StatusCode int
	Status     string // status text, e.g. "Internal Server Error"
	Body       []byte
	BodyErr    error // set when the body could not be read
}

type QuerierPort interface {
	PostJSON(ctx context.Context, url string, body []byte) (*Response, error)
}
