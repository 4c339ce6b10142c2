// Package nethttp sends tracker payloads with net/http. Under GOOS=js it rides
// the browser's fetch API.
package nethttp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"konjac/internal/tracker/core/ports"
)

type Client struct {
	hc *http.Client
}

// NewClient wraps hc; nil means http.DefaultClient.
func NewClient(hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{hc: hc}
}

var (
	_ ports.TransportPort = (*Client)(nil)
	_ ports.QuerierPort   = (*Client)(nil)
)

func (c *Client) Send(ctx context.Context, url string, body []byte) error {
	resp, err := c.post(ctx, url, body)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

func (c *Client) PostJSON(ctx context.Context, url string, body []byte) (*ports.Response, error) {
	resp, err := c.post(ctx, url, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	out := &ports.Response{
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		out.BodyErr = err
	} else {
		out.Body = b
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", url, err)
	}
	return resp, nil
}
