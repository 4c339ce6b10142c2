package fiber

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"konjac/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StoreEventUseCase interface {
	Execute(ctx context.Context, in usecase.StoreEventInput) (uuid.UUID, error)
}

type EventHandler struct {
	storeUC StoreEventUseCase
}

func NewEventHandler(storeUC StoreEventUseCase) *EventHandler {
	return &EventHandler{storeUC: storeUC}
}

// TrackAnalytics godoc
// @Summary Track a pageview or custom event
// @Description Stores a single record sent by the konjac client. Beacon requests
// @Description arrive as text/plain, so the body is decoded regardless of Content-Type.
// @Tags Events
// @Accept json
// @Accept plain
// @Produce json
// @Param request body TrackRequest true "Track payload"
// @Success 202 {object} TrackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /track-analytics [post]
func (h *EventHandler) TrackAnalytics(c *fiber.Ctx) error {
	var req TrackRequest

	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	input := usecase.StoreEventInput{
		APIKey:    req.APIKey,
		Type:      req.Type,
		Timestamp: req.Timestamp,
		URL:       req.URL,
		Referrer:  req.Referrer,
		EventName: req.Event,
		Data:      req.Data,
	}

	id, err := h.storeUC.Execute(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEvent),
			errors.Is(err, usecase.ErrUnknownType),
			errors.Is(err, usecase.ErrInvalidTimestamp):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_event",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusAccepted).JSON(TrackResponse{
		Status: "accepted",
		ID:     id.String(),
	})
}
