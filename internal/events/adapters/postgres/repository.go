package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"konjac/internal/events/core/domain"
	"konjac/internal/events/core/ports"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// SQL template
const insertEventSQL = `
INSERT INTO analytics_events (
    id,
    site_key_hash,
    type,
    event_name,
    url,
    referrer,
    data,
    occurred_at,
    received_at
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8, $9
);
`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) error {
	dataJSON, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("encode event data: %w", err)
	}

	_, err = r.db.ExecContext(ctx, insertEventSQL,
		e.ID,
		e.SiteKeyHash,
		e.Type,
		nullable(e.EventName),
		nullable(e.URL),
		nullable(e.Referrer),
		dataJSON,
		e.OccurredAt,
		e.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

// nullable stores empty strings as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
