package usecase

import (
	"context"
	"errors"
	"time"

	"konjac/internal/events/core/domain"
	"konjac/internal/events/core/ports"
	"konjac/internal/sitekey"

	"github.com/google/uuid"
)

var (
	ErrInvalidEvent     = errors.New("invalid event")
	ErrUnknownType      = errors.New("unknown event type")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

type StoreEventUseCase struct {
	repo  ports.EventRepositoryPort
	now   func() time.Time
	newID func() uuid.UUID
}

func NewStoreEventUseCase(repo ports.EventRepositoryPort) *StoreEventUseCase {
	return &StoreEventUseCase{
		repo:  repo,
		now:   time.Now,
		newID: uuid.New,
	}
}

// StoreEventInput is the decoded track-analytics body.
type StoreEventInput struct {
	APIKey    string
	Type      string
	Timestamp string // ISO-8601 from the client
	URL       string
	Referrer  string
	EventName string
	Data      map[string]any
}

func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (uuid.UUID, error) {
	occurredAt, err := uc.validateInput(in)
	if err != nil {
		return uuid.Nil, err
	}

	if in.Data == nil {
		in.Data = map[string]any{}
	}

	e := &domain.Event{
		ID:          uc.newID(),
		SiteKeyHash: sitekey.Hash(in.APIKey),
		Type:        in.Type,
		EventName:   in.EventName,
		URL:         in.URL,
		Referrer:    in.Referrer,
		Data:        in.Data,
		OccurredAt:  occurredAt,
		ReceivedAt:  uc.now().UTC(),
	}

	if err := uc.repo.InsertEvent(ctx, e); err != nil {
		return uuid.Nil, err
	}

	return e.ID, nil
}

func (uc *StoreEventUseCase) validateInput(in StoreEventInput) (time.Time, error) {
	if in.APIKey == "" {
		return time.Time{}, ErrInvalidEvent
	}

	switch in.Type {
	case domain.TypePageview:
		if in.URL == "" {
			return time.Time{}, ErrInvalidEvent
		}
	case domain.TypeEvent:
		if in.EventName == "" {
			return time.Time{}, ErrInvalidEvent
		}
	default:
		return time.Time{}, ErrUnknownType
	}

	// Clients send toISOString() output; RFC 3339 covers it.
	ts, err := time.Parse(time.RFC3339Nano, in.Timestamp)
	if err != nil {
		return time.Time{}, ErrInvalidTimestamp
	}

	return ts.UTC(), nil
}
