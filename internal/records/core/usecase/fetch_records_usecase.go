package usecase

import (
	"context"
	"errors"

	"konjac/internal/records/core/domain"
	"konjac/internal/records/core/ports"
	"konjac/internal/sitekey"
)

const (
	DefaultLimit    = 100
	DefaultMaxLimit = 1000
)

var (
	ErrInvalidQuery = errors.New("invalid analytics query")
	ErrInvalidType  = errors.New("invalid record type filter")
)

type FetchRecordsInput struct {
	APIKey string
	Limit  int      // <= 0 means DefaultLimit
	Types  []string // "pageview" / "event"
}

type FetchRecordsUseCase struct {
	reader   ports.RecordReaderPort
	maxLimit int
}

// NewFetchRecordsUseCase caps every query at maxLimit (DefaultMaxLimit when <= 0).
func NewFetchRecordsUseCase(reader ports.RecordReaderPort, maxLimit int) *FetchRecordsUseCase {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return &FetchRecordsUseCase{reader: reader, maxLimit: maxLimit}
}

// Execute validates the input, turns it into a filter and returns the newest
// records first.
func (uc *FetchRecordsUseCase) Execute(ctx context.Context, in FetchRecordsInput) ([]domain.Record, error) {
	if in.APIKey == "" {
		return nil, ErrInvalidQuery
	}

	for _, t := range in.Types {
		if t != "pageview" && t != "event" {
			return nil, ErrInvalidType
		}
	}

	limit := in.Limit
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > uc.maxLimit:
		limit = uc.maxLimit
	}

	filter := ports.RecordFilter{
		SiteKeyHash: sitekey.Hash(in.APIKey),
		Limit:       limit,
		Types:       in.Types,
	}

	records, err := uc.reader.ListRecords(ctx, filter)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.Record{}
	}

	return records, nil
}
