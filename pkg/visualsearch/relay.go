package visualsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

// Response is the relay's view of an upstream HTTP response.
type Response struct {
	Ok     bool
	Status int
	Body   []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// Relay is the request-relay capability the search client goes through.
// Implementations become available asynchronously; callers must tolerate a
// startup race and poll Ready rather than assume immediate availability.
type Relay interface {
	Ready() bool
	Fetch(ctx context.Context, url string, headers map[string]string) (*Response, error)
}

// AwaitRelay polls the relay until it reports ready, up to timeout.
// Past the deadline it fails with a clear "not ready" error.
func AwaitRelay(ctx context.Context, relay Relay, timeout, interval time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if relay.Ready() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("relay service failed to initialize in time")
		}
		select {
		case <-time.After(interval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// HTTPRelay is the production relay: a plain HTTP client whose readiness is
// flipped asynchronously after construction.
type HTTPRelay struct {
	client *http.Client
	ready  atomic.Bool
}

func NewHTTPRelay() *HTTPRelay {
	r := &HTTPRelay{
		client: &http.Client{Timeout: 30 * time.Second},
	}
	// Readiness is signalled off the construction goroutine to preserve the
	// startup-race contract callers are written against.
	go r.ready.Store(true)
	return r
}

func (r *HTTPRelay) Ready() bool {
	return r.ready.Load()
}

func (r *HTTPRelay) Fetch(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("relay request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{
		Ok:     res.StatusCode >= 200 && res.StatusCode < 300,
		Status: res.StatusCode,
		Body:   body,
	}, nil
}
