package postgres

import (
	"context"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS analytics_events (
    id            UUID        PRIMARY KEY,
    site_key_hash TEXT        NOT NULL,
    type          TEXT        NOT NULL CHECK (type IN ('pageview', 'event')),
    event_name    TEXT,
    url           TEXT,
    referrer      TEXT,
    data          JSONB       NOT NULL DEFAULT '{}'::jsonb,
    occurred_at   TIMESTAMPTZ NOT NULL,
    received_at   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analytics_events_site_time
    ON analytics_events (site_key_hash, occurred_at DESC);
`

// EnsureSchema creates the events table and its index when missing.
func EnsureSchema(ctx context.Context, db DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
