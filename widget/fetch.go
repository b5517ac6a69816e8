// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package widget

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps how much of a response the widget will read
const maxBodyBytes = 1 << 20

// Response is a completed network call. A non-OK response is not an error:
// the body still carries what the server had to say.
type Response struct {
	OK     bool
	Status int
	body   []byte
}

func NewResponse(status int, ok bool, body []byte) *Response {
	return &Response{OK: ok, Status: status, body: body}
}

// JSON decodes the response body into v
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Fetcher performs network calls against the activities API. url is
// relative to the API root.
type Fetcher interface {
	Fetch(ctx context.Context, method, url string) (*Response, error)
}

// FetcherFunc adapts a function to Fetcher
type FetcherFunc func(ctx context.Context, method, url string) (*Response, error)

func (f FetcherFunc) Fetch(ctx context.Context, method, url string) (*Response, error) {
	return f(ctx, method, url)
}

// HTTPFetcher talks to a running activities server
type HTTPFetcher struct {
	Client  *http.Client
	BaseURL string
}

func (f *HTTPFetcher) Fetch(ctx context.Context, method, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, f.BaseURL+url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	return NewResponse(resp.StatusCode, ok, body), nil
}
