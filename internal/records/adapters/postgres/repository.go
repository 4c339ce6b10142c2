package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"konjac/internal/records/core/domain"
	"konjac/internal/records/core/ports"

	"github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type RecordRepository struct {
	db DB
}

func NewRecordRepository(db DB) *RecordRepository {
	return &RecordRepository{db: db}
}

var _ ports.RecordReaderPort = (*RecordRepository)(nil)

func (r *RecordRepository) ListRecords(ctx context.Context, f ports.RecordFilter) ([]domain.Record, error) {
	where := "site_key_hash = $1"
	args := []any{f.SiteKeyHash}
	argIndex := 2

	if len(f.Types) > 0 {
		where += fmt.Sprintf(" AND type = ANY($%d)", argIndex)
		args = append(args, pq.Array(f.Types))
		argIndex++
	}

	query := fmt.Sprintf(`
SELECT
    id,
    type,
    event_name,
    url,
    referrer,
    data,
    occurred_at,
    received_at
FROM analytics_events
WHERE %s
ORDER BY occurred_at DESC, received_at DESC
LIMIT $%d`, where, argIndex)
	args = append(args, f.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.Record, 0, f.Limit)

	for rows.Next() {
		var (
			rec                      domain.Record
			eventName, url, referrer sql.NullString
			data                     []byte
			occurredAt, receivedAt   time.Time
		)

		if err := rows.Scan(&rec.ID, &rec.Type, &eventName, &url, &referrer, &data, &occurredAt, &receivedAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}

		rec.EventName = eventName.String
		rec.URL = url.String
		rec.Referrer = referrer.String
		rec.OccurredAt = occurredAt.UTC()
		rec.ReceivedAt = receivedAt.UTC()

		rec.Data = map[string]any{}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &rec.Data); err != nil {
				return nil, fmt.Errorf("decode record data: %w", err)
			}
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
