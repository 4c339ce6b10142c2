package domain

import (
	"strings"
	"time"
)

const (
	DefaultEndpoint = "https://api.konjac.io"

	TrackPath = "/track-analytics"
	FetchPath = "/fetch-analytics"

	TypePageview = "pageview"
	TypeEvent    = "event"

	// DefaultFetchLimit is used when the caller does not ask for a limit.
	DefaultFetchLimit = 100
)

// TrackerConfig is fixed at construction time.
type TrackerConfig struct {
	SiteKey string
	BaseURL string
}

// NewTrackerConfig strips trailing slashes from endpoint and falls back to
// DefaultEndpoint when it is empty.
func NewTrackerConfig(siteKey, endpoint string) TrackerConfig {
	base := strings.TrimRight(endpoint, "/")
	if endpoint == "" {
		base = DefaultEndpoint
	}
	return TrackerConfig{SiteKey: siteKey, BaseURL: base}
}

func (c TrackerConfig) TrackURL() string { return c.BaseURL + TrackPath }

func (c TrackerConfig) FetchURL() string { return c.BaseURL + FetchPath }

// PageviewPayload is built fresh for every navigation and dropped after dispatch.
type PageviewPayload struct {
	SiteKey   string `json:"apiKey"`
	Type      string `json:"type"`
	Timestamp string `json:"ts"`
	URL       string `json:"url"`
	Referrer  string `json:"referrer"`
}

// EventPayload is the manually reported counterpart of PageviewPayload.
type EventPayload struct {
	SiteKey   string         `json:"apiKey"`
	Type      string         `json:"type"`
	Timestamp string         `json:"ts"`
	Event     string         `json:"event"`
	Data      map[string]any `json:"data"`
}

type FetchRequest struct {
	SiteKey string `json:"apiKey"`
	Limit   int    `json:"limit"`
}

// Record is one row returned by the fetch endpoint. Its shape is owned by the server.
type Record = map[string]any

// FormatTimestamp renders t as UTC ISO-8601 with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
