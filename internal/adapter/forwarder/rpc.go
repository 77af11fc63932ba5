package forwarder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUpstreamTimeout is returned when the upstream endpoint does not
// answer within the configured timeout.
var ErrUpstreamTimeout = errors.New("upstream request timed out")

// RPCResult carries the upstream response verbatim: status, body and
// content type are passed through to the caller untouched.
type RPCResult struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// RPCForwarder relays JSON payloads to a fixed upstream endpoint.
type RPCForwarder struct {
	upstreamURL string
	httpClient  *http.Client
}

// NewRPCForwarder creates a forwarder for the given upstream URL.
func NewRPCForwarder(upstreamURL string, timeout time.Duration) *RPCForwarder {
	return &RPCForwarder{
		upstreamURL: upstreamURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Forward POSTs the payload to the upstream endpoint and returns its
// response verbatim. Timeouts are reported as ErrUpstreamTimeout; any
// other transport failure comes back as a plain error.
func (f *RPCForwarder) Forward(ctx context.Context, payload []byte) (*RPCResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.upstreamURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, ErrUpstreamTimeout
		}
		return nil, fmt.Errorf("failed to reach upstream: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	return &RPCResult{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
