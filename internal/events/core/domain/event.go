package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypePageview = "pageview"
	TypeEvent    = "event"
)

// Event is one stored pageview or custom event.
type Event struct {
	ID          uuid.UUID
	SiteKeyHash string
	Type        string
	EventName   string // only for TypeEvent
	URL         string // only for TypePageview
	Referrer    string
	Data        map[string]any
	OccurredAt  time.Time // client clock
	ReceivedAt  time.Time // server clock
}
