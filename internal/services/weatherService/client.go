package weatherservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// ErrNoData is the only error FetchJSON returns. Transport failures, non-2xx
// statuses and undecodable bodies all collapse into it.
var ErrNoData = errors.New("no data")

// Client issues GET requests and decodes JSON bodies.
type Client struct {
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient returns a Client. A zero timeout leaves the http.Client default
// (no timeout). A nil logger discards debug output.
func NewClient(timeout time.Duration, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchJSON GETs rawURL and decodes the body. Numbers are kept as json.Number
// so callers can print them exactly as the provider sent them.
func (c *Client) FetchJSON(ctx context.Context, rawURL string) (any, error) {
	safeURL := redactURL(rawURL)

	doc, err := c.fetch(ctx, rawURL)
	if err != nil {
		c.logger.Printf("GET %s failed: %v", safeURL, err)
		return nil, ErrNoData
	}

	c.logger.Printf("GET %s ok", safeURL)
	return doc, nil
}

func (c *Client) fetch(ctx context.Context, rawURL string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", stripURL(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", stripURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("API error (status %d)", resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("failed to parse response: trailing data after JSON value")
	}

	return doc, nil
}

// stripURL drops the URL from a *url.Error, which repeats it in full with the
// key included.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// redactURL hides the appid query parameter so the API key never reaches a log.
func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<unparseable url>"
	}

	q := u.Query()
	if q.Has("appid") {
		q.Set("appid", "REDACTED")
		u.RawQuery = q.Encode()
	}

	return u.String()
}
