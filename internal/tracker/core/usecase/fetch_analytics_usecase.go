package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"konjac/internal/tracker/core/domain"
	"konjac/internal/tracker/core/ports"
)

var (
	ErrNoQuerier     = errors.New("no querier configured")
	ErrDecodeRecords = errors.New("decode analytics records")
)

// QueryError is returned when the fetch endpoint answers with a non-2xx status.
type QueryError struct {
	StatusCode int
	Body       string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("konjac fetch analytics: %d %s", e.StatusCode, e.Body)
}

type FetchAnalyticsInput struct {
	Limit int // <= 0 means domain.DefaultFetchLimit
}

type FetchAnalyticsUseCase struct {
	cfg     domain.TrackerConfig
	querier ports.QuerierPort
}

func NewFetchAnalyticsUseCase(cfg domain.TrackerConfig, querier ports.QuerierPort) *FetchAnalyticsUseCase {
	return &FetchAnalyticsUseCase{cfg: cfg, querier: querier}
}

// Execute posts the query and decodes the returned records. This is the only
// client call whose failures reach the caller.
func (uc *FetchAnalyticsUseCase) Execute(ctx context.Context, in FetchAnalyticsInput) ([]domain.Record, error) {
	if uc.querier == nil {
		return nil, ErrNoQuerier
	}

	limit := in.Limit
	if limit <= 0 {
		limit = domain.DefaultFetchLimit
	}

	body, err := json.Marshal(domain.FetchRequest{SiteKey: uc.cfg.SiteKey, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("encode fetch request: %w", err)
	}

	resp, err := uc.querier.PostJSON(ctx, uc.cfg.FetchURL(), body)
	if err != nil {
		return nil, fmt.Errorf("fetch analytics request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := string(resp.Body)
		if resp.BodyErr != nil {
			text = resp.Status
		}
		return nil, &QueryError{StatusCode: resp.StatusCode, Body: text}
	}

	var records []domain.Record
	if err := json.Unmarshal(resp.Body, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeRecords, err)
	}
	if records == nil {
		records = []domain.Record{}
	}

	return records, nil
}
