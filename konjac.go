// Package konjac is a best-effort analytics client: pageviews on every SPA
// navigation, manually reported events, and a query call for recent records.
package konjac

import (
	"context"
	"errors"
	"sync"
	"time"

	"konjac/internal/tracker/core/domain"
	"konjac/internal/tracker/core/ports"
	"konjac/internal/tracker/core/usecase"
)

var ErrMissingAPIKey = errors.New("konjac: api key is required")

// Options mirrors the public configuration surface.
type Options struct {
	// APIKey is the per-site key, sent raw.
	APIKey string
	// Endpoint is the collector base URL. Trailing slashes are ignored.
	Endpoint string
}

type (
	Record        = domain.Record
	QueryError    = usecase.QueryError
	Environment   = ports.Environment
	History       = ports.History
	PushStateFunc = ports.PushStateFunc
	Beacon        = ports.BeaconPort
	Transport     = ports.TransportPort
	Querier       = ports.QuerierPort
	Response      = ports.Response
	Launcher      = usecase.Launcher
)

type FetchParams struct {
	Limit int // defaults to 100
}

type Client struct {
	cfg      domain.TrackerConfig
	tracker  *usecase.NavigationTracker
	reporter *usecase.EventReporter
	fetchUC  *usecase.FetchAnalyticsUseCase

	closers   []func(context.Context) error
	closeOnce sync.Once
}

// New builds a client. When an environment is supplied the navigation tracker
// is installed right away, which records the initial pageview.
func New(opts Options, options ...Option) (*Client, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	s := settings{now: time.Now}
	for _, o := range options {
		o(&s)
	}

	c := &Client{cfg: domain.NewTrackerConfig(opts.APIKey, opts.Endpoint)}

	if s.transport == nil || s.querier == nil {
		t, q := defaultClients()
		if s.transport == nil {
			s.transport = t
		}
		if s.querier == nil {
			s.querier = q
		}
	}
	if s.beacon == nil && s.beaconQueueSize > 0 {
		q := newBeaconQueue(s.transport, s.beaconQueueSize)
		s.beacon = q
		c.closers = append(c.closers, q.Close)
	}

	d := usecase.NewDispatcher(s.beacon, s.transport, s.launch)
	c.tracker = usecase.NewNavigationTracker(c.cfg, s.env, d, s.now)
	c.reporter = usecase.NewEventReporter(c.cfg, d, s.now)
	c.fetchUC = usecase.NewFetchAnalyticsUseCase(c.cfg, s.querier)

	c.tracker.Install()

	return c, nil
}

// Init is the one-line initializer.
func Init(opts Options, options ...Option) (*Client, error) {
	return New(opts, options...)
}

func (c *Client) SiteKey() string  { return c.cfg.SiteKey }
func (c *Client) Endpoint() string { return c.cfg.BaseURL }

// Tracking reports whether navigation hooks are installed.
func (c *Client) Tracking() bool { return c.tracker.Installed() }

// TrackPageview records a pageview for the current location. Without an
// environment there is no location and nothing is sent.
func (c *Client) TrackPageview() { c.tracker.TrackPageview() }

// TrackEvent reports a named event with optional metadata. It never fails.
func (c *Client) TrackEvent(name string, data map[string]any) {
	c.reporter.TrackEvent(name, data)
}

// FetchAnalytics returns the latest records for this site.
func (c *Client) FetchAnalytics(ctx context.Context, p FetchParams) ([]Record, error) {
	return c.fetchUC.Execute(ctx, usecase.FetchAnalyticsInput{Limit: p.Limit})
}

// Close detaches navigation hooks and flushes the beacon queue, if the client
// owns one, until ctx is done.
func (c *Client) Close(ctx context.Context) error {
	var errs []error
	c.closeOnce.Do(func() {
		c.tracker.Close()
		for _, fn := range c.closers {
			if err := fn(ctx); err != nil {
				errs = append(errs, err)
			}
		}
	})
	return errors.Join(errs...)
}
