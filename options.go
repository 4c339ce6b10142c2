package konjac

import (
	"time"

	"konjac/internal/tracker/core/ports"
	"konjac/internal/tracker/core/usecase"
)

type settings struct {
	env             ports.Environment
	beacon          ports.BeaconPort
	beaconQueueSize int
	transport       ports.TransportPort
	querier         ports.QuerierPort
	launch          usecase.Launcher
	now             func() time.Time
}

// Option configures a Client.
type Option func(*settings)

// WithEnvironment enables navigation tracking on env. Without it the client
// behaves as in a non-browser context.
func WithEnvironment(env ports.Environment) Option {
	return func(s *settings) { s.env = env }
}

// WithBeacon sets the preferred non-blocking delivery primitive.
func WithBeacon(b ports.BeaconPort) Option {
	return func(s *settings) { s.beacon = b }
}

// WithBeaconQueue gives the client its own beacon queue of the given size,
// flushed by Close. Ignored when WithBeacon is also used.
func WithBeaconQueue(size int) Option {
	return func(s *settings) { s.beaconQueueSize = size }
}

// WithTransport replaces the asynchronous fallback transport.
func WithTransport(t ports.TransportPort) Option {
	return func(s *settings) { s.transport = t }
}

// WithQuerier replaces the client used by FetchAnalytics.
func WithQuerier(q ports.QuerierPort) Option {
	return func(s *settings) { s.querier = q }
}

// WithLauncher controls how fallback sends are scheduled.
func WithLauncher(l usecase.Launcher) Option {
	return func(s *settings) { s.launch = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}
