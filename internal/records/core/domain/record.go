package domain

import "time"

// Record is a stored pageview or event as returned to the site owner.
type Record struct {
	ID         string
	Type       string
	EventName  string
	URL        string
	Referrer   string
	Data       map[string]any
	OccurredAt time.Time
	ReceivedAt time.Time
}
