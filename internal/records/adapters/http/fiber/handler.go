package fiber

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"konjac/internal/records/core/domain"
	"konjac/internal/records/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// Same layout the client uses for ts.
const isoMillis = "2006-01-02T15:04:05.000Z"

type FetchRecordsUseCase interface {
	Execute(ctx context.Context, in usecase.FetchRecordsInput) ([]domain.Record, error)
}

type RecordsHandler struct {
	uc FetchRecordsUseCase
}

func NewRecordsHandler(uc FetchRecordsUseCase) *RecordsHandler {
	return &RecordsHandler{uc: uc}
}

// FetchAnalytics godoc
// @Summary Fetch the latest records of a site
// @Description Returns up to limit pageviews/events, newest first
// @Tags Records
// @Accept json
// @Produce json
// @Param request body FetchRequest true "Query"
// @Success 200 {array} RecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /fetch-analytics [post]
func (h *RecordsHandler) FetchAnalytics(c *fiber.Ctx) error {
	var req FetchRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	in := usecase.FetchRecordsInput{
		APIKey: req.APIKey,
		Limit:  req.Limit,
		Types:  req.Types,
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidQuery),
			errors.Is(err, usecase.ErrInvalidType):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := make([]RecordResponse, 0, len(res))
	for _, r := range res {
		resp = append(resp, RecordResponse{
			ID:         r.ID,
			Type:       r.Type,
			Event:      r.EventName,
			URL:        r.URL,
			Referrer:   r.Referrer,
			Data:       r.Data,
			Timestamp:  r.OccurredAt.UTC().Format(isoMillis),
			ReceivedAt: r.ReceivedAt.UTC().Format(isoMillis),
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}
