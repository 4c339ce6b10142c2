package usecase

import (
	"time"

	"konjac/internal/tracker/core/domain"
)

type EventReporter struct {
	cfg        domain.TrackerConfig
	dispatcher PayloadDispatcher
	now        Clock
}

func NewEventReporter(cfg domain.TrackerConfig, d PayloadDispatcher, now Clock) *EventReporter {
	if now == nil {
		now = time.Now
	}
	return &EventReporter{cfg: cfg, dispatcher: d, now: now}
}

// TrackEvent reports a named event. A nil data map is sent as an empty object.
func (r *EventReporter) TrackEvent(name string, data map[string]any) {
	defer func() { _ = recover() }()

	if data == nil {
		data = map[string]any{}
	}

	p := domain.EventPayload{
		SiteKey:   r.cfg.SiteKey,
		Type:      domain.TypeEvent,
		Timestamp: domain.FormatTimestamp(r.now()),
		Event:     name,
		Data:      data,
	}
	r.dispatcher.Dispatch(r.cfg.TrackURL(), p)
}
