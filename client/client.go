package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/streamwire/ssekit/errors"
	"github.com/streamwire/ssekit/logger"
	"github.com/streamwire/ssekit/observability"
	"github.com/streamwire/ssekit/sse"
)

// Client subscribes to SSE endpoints over HTTP.
type Client struct {
	http *http.Client
	cfg  Config
	log  *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The supplied client
// must not enforce an overall request timeout: SSE responses are unbounded
// in duration and are bounded per-read instead.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates an SSE client.
func New(cfg Config, opts ...Option) *Client {
	cfg.ApplyDefaults()
	c := &Client{
		cfg: cfg,
		log: logger.Get("sse.client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: cfg.connectTimeout(),
			},
		}
	}
	return c
}

// Subscribe issues the SSE GET request against url and invokes callback
// for every event until the stream ends, the callback returns false, the
// context is canceled, or a read times out. Context cancellation counts
// as a clean stop and returns nil, as does callback-requested stop and
// server EOF; timeouts and transport failures return errors.
func (c *Client) Subscribe(ctx context.Context, url string, callback EventCallback) error {
	ctx, span := observability.StartSpan(ctx, observability.SpanStreamConsume)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrEndpoint, url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build SSE request: %w", err)
	}
	req.Header.Set("Accept", sse.MimeEventStream)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Connection", "keep-alive")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.ConnectionFailed(url).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.InvalidSseResponse(fmt.Sprintf("unexpected status %d", resp.StatusCode)).
			WithDetail("url", url)
	}

	// Header validation is advisory: proxies sometimes mutate headers, so
	// log and continue rather than abort an otherwise working stream.
	if !sse.IsValidResponse(resp.Header) {
		c.log.Warn("response headers are not a valid SSE response, continuing", logger.Fields(
			"url", url,
			"content_type", resp.Header.Get("Content-Type"),
			"cache_control", resp.Header.Get("Cache-Control"),
		))
	}

	src := NewBodySource(resp.Body, c.cfg.BufferSize)
	defer src.Close()

	reader := NewStreamReader(c.cfg.readTimeout())
	err = reader.Run(src, callback)

	// Cancellation surfaces as a body read error; treat it as a clean stop.
	if err != nil && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	return err
}
