package fasthttp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type capturedRequest struct {
	method      string
	path        string
	contentType string
	body        string
}

func newCaptureServer(t *testing.T, status int, reply string) (*httptest.Server, chan capturedRequest) {
	t.Helper()
	got := make(chan capturedRequest, 4)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got <- capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			body:        string(b),
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	return srv, got
}

func TestClient_Send(t *testing.T) {
	srv, got := newCaptureServer(t, http.StatusAccepted, "")

	c := NewClient(nil)
	if err := c.Send(context.Background(), srv.URL+"/track-analytics", []byte(`{"type":"pageview"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := <-got
	if req.method != http.MethodPost || req.path != "/track-analytics" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.contentType != "application/json" {
		t.Fatalf("expected json content type, got %q", req.contentType)
	}
	if req.body != `{"type":"pageview"}` {
		t.Fatalf("unexpected body: %s", req.body)
	}
}

func TestClient_PostJSON_ErrorStatus(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusInternalServerError, "oops")

	resp, err := NewClient(nil).PostJSON(context.Background(), srv.URL+"/fetch-analytics", []byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 500 || string(resp.Body) != "oops" {
		t.Fatalf("unexpected response: %d %q", resp.StatusCode, resp.Body)
	}
	if resp.Status != "Internal Server Error" {
		t.Fatalf("unexpected status text: %q", resp.Status)
	}
}

func TestClient_PostJSON_Success(t *testing.T) {
	srv, got := newCaptureServer(t, http.StatusOK, `[{"a":1}]`)

	resp, err := NewClient(nil).PostJSON(context.Background(), srv.URL+"/fetch-analytics", []byte(`{"apiKey":"k","limit":100}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 || string(resp.Body) != `[{"a":1}]` {
		t.Fatalf("unexpected response: %d %q", resp.StatusCode, resp.Body)
	}
	if req := <-got; req.body != `{"apiKey":"k","limit":100}` {
		t.Fatalf("unexpected request body: %s", req.body)
	}
}

func TestClient_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewClient(nil).Send(ctx, "http://127.0.0.1:1/track-analytics", nil); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestClient_UnreachableHost(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewClient(nil).PostJSON(ctx, "http://127.0.0.1:1/fetch-analytics", []byte(`{}`))
	if err == nil {
		t.Fatal("expected connection error")
	}
}
