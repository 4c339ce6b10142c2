package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"konjac/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type fakeStoreEventUseCase struct {
	ExecuteFunc      func(ctx context.Context, in usecase.StoreEventInput) (uuid.UUID, error)
	LastExecuteInput usecase.StoreEventInput
	called           bool
}

func (f *fakeStoreEventUseCase) Execute(ctx context.Context, in usecase.StoreEventInput) (uuid.UUID, error) {
	f.called = true
	f.LastExecuteInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return uuid.Nil, nil
}

var fixedID = uuid.MustParse("6f1c2a5e-8d34-4b7a-9a41-2f0b8e5d7c10")

// helper: create fiber app and routes
func setupTestApp(uc StoreEventUseCase) *fiber.App {
	app := fiber.New()
	h := NewEventHandler(uc)

	app.Post("/track-analytics", h.TrackAnalytics)

	return app
}

// helper: send raw body with the given content type
func doRequest(t *testing.T, app *fiber.App, contentType, body string) (*http.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/track-analytics", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func TestTrackAnalytics_Pageview(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (uuid.UUID, error) {
			return fixedID, nil
		},
	}

	app := setupTestApp(fakeUC)

	body := `{"apiKey":"site_123","type":"pageview","ts":"2025-12-07T10:00:00.000Z","url":"https://shop.test/","referrer":"https://google.com/"}`
	resp, respBody := doRequest(t, app, "application/json", body)

	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusAccepted, resp.StatusCode, string(respBody))
	}

	var respJSON map[string]any
	if err := json.Unmarshal(respBody, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if respJSON["status"] != "accepted" || respJSON["id"] != fixedID.String() {
		t.Errorf("unexpected response: %v", respJSON)
	}

	in := fakeUC.LastExecuteInput
	if in.APIKey != "site_123" || in.Type != "pageview" || in.URL != "https://shop.test/" ||
		in.Referrer != "https://google.com/" || in.Timestamp != "2025-12-07T10:00:00.000Z" {
		t.Errorf("unexpected usecase input: %+v", in)
	}
}

func TestTrackAnalytics_BeaconPlainText(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (uuid.UUID, error) {
			return fixedID, nil
		},
	}

	app := setupTestApp(fakeUC)

	body := `{"apiKey":"k","type":"event","ts":"2025-12-07T10:00:00.000Z","event":"signup","data":{"plan":"pro"}}`
	resp, respBody := doRequest(t, app, "text/plain;charset=UTF-8", body)

	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusAccepted, resp.StatusCode, string(respBody))
	}
	if fakeUC.LastExecuteInput.EventName != "signup" || fakeUC.LastExecuteInput.Data["plan"] != "pro" {
		t.Errorf("unexpected usecase input: %+v", fakeUC.LastExecuteInput)
	}
}

func TestTrackAnalytics_InvalidJSON(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, "application/json", `{"apiKey":`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}
	if fakeUC.called {
		t.Fatalf("usecase must not be called for invalid json")
	}
}

func TestTrackAnalytics_ValidationErrors(t *testing.T) {
	for _, uerr := range []error{usecase.ErrInvalidEvent, usecase.ErrUnknownType, usecase.ErrInvalidTimestamp} {
		fakeUC := &fakeStoreEventUseCase{
			ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (uuid.UUID, error) {
				return uuid.Nil, uerr
			},
		}

		app := setupTestApp(fakeUC)
		resp, body := doRequest(t, app, "application/json", `{"type":"pageview"}`)

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%v: expected status %d, got %d (body: %s)", uerr, http.StatusBadRequest, resp.StatusCode, string(body))
		}

		var respJSON map[string]any
		if err := json.Unmarshal(body, &respJSON); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if respJSON["error"] != "invalid_event" || respJSON["message"] != uerr.Error() {
			t.Errorf("unexpected response: %v", respJSON)
		}
	}
}

func TestTrackAnalytics_InternalError(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (uuid.UUID, error) {
			return uuid.Nil, errors.New("db error")
		},
	}

	app := setupTestApp(fakeUC)
	resp, body := doRequest(t, app, "application/json", `{"apiKey":"k","type":"pageview","url":"u","ts":"2025-12-07T10:00:00Z"}`)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusInternalServerError, resp.StatusCode, string(body))
	}

	var respJSON map[string]any
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if respJSON["error"] != "internal_server_error" {
		t.Errorf("expected error=internal_server_error, got %v", respJSON["error"])
	}
}
