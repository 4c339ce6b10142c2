package ports

import (
	"context"

	"konjac/internal/records/core/domain"
)

type RecordFilter struct {
	SiteKeyHash string
	Limit       int
	Types       []string // optional; empty means all
}

type RecordReaderPort interface {
	ListRecords(ctx context.Context, f RecordFilter) ([]domain.Record, error)
}
