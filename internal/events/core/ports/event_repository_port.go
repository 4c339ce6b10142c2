package ports

import (
	"context"

	"konjac/internal/events/core/domain"
)

type EventRepositoryPort interface {
	InsertEvent(ctx context.Context, e *domain.Event) error
}
