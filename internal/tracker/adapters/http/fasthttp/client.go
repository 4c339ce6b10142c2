// Package fasthttp sends tracker payloads over valyala/fasthttp.
package fasthttp

import (
	"context"
	"fmt"
	"time"

	"konjac/internal/tracker/core/ports"

	"github.com/valyala/fasthttp"
)

const contentTypeJSON = "application/json"

// Client implements both the asynchronous transport and the query call.
type Client struct {
	hc *fasthttp.Client
}

// NewClient wraps hc. A nil hc gets a client with conservative timeouts.
func NewClient(hc *fasthttp.Client) *Client {
	if hc == nil {
		hc = &fasthttp.Client{
			Name:                "konjac-go",
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 30 * time.Second,
		}
	}
	return &Client{hc: hc}
}

var (
	_ ports.TransportPort = (*Client)(nil)
	_ ports.QuerierPort   = (*Client)(nil)
)

// Send posts body and discards the response.
func (c *Client) Send(ctx context.Context, url string, body []byte) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	buildPost(req, url, body)
	resp.SkipBody = true

	if err := c.do(ctx, req, resp); err != nil {
		return fmt.Errorf("send %s: %w", url, err)
	}
	return nil
}

func (c *Client) PostJSON(ctx context.Context, url string, body []byte) (*ports.Response, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	buildPost(req, url, body)

	if err := c.do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("post %s: %w", url, err)
	}

	code := resp.StatusCode()
	out := &ports.Response{
		StatusCode: code,
		Status:     fasthttp.StatusMessage(code),
	}

	// resp is returned to the pool, so the body has to be copied.
	b, err := resp.BodyUncompressed()
	if err != nil {
		out.BodyErr = err
	} else {
		out.Body = append([]byte(nil), b...)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		return c.hc.DoDeadline(req, resp, deadline)
	}
	return c.hc.Do(req, resp)
}

func buildPost(req *fasthttp.Request, url string, body []byte) {
	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(contentTypeJSON)
	req.SetBody(body)
}
