package extraction

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
)

// Delegate forwards a raw document payload to a secondary extraction
// service and relays its response verbatim. It does not interpret the
// response body; routing decisions stay with the caller.
type Delegate struct {
	url     string
	client  *http.Client
	retries uint
}

// NewDelegate creates a delegate client for the given endpoint URL.
// Non-positive timeouts and retry counts fall back to sane minimums.
func NewDelegate(url string, timeout time.Duration, retries int) (*Delegate, error) {
	if url == "" {
		return nil, fmt.Errorf("delegate url is required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if retries < 1 {
		retries = 1
	}

	return &Delegate{
		url:     url,
		retries: uint(retries),
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Forward posts the payload unchanged and returns the delegate's status
// code and body. Network failures and 5xx responses are retried; any
// status below 500 is a definitive answer and is relayed as-is,
// including client errors.
func (d *Delegate) Forward(ctx context.Context, payload []byte) (int, []byte, error) {
	var status int
	var body []byte

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, "POST", d.url, bytes.NewReader(payload))
			if err != nil {
				return fmt.Errorf("creating request: %w", err)
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := d.client.Do(req)
			if err != nil {
				return fmt.Errorf("calling delegate service: %w", err)
			}
			defer resp.Body.Close()

			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("reading delegate response: %w", err)
			}

			if resp.StatusCode >= http.StatusInternalServerError {
				return fmt.Errorf("delegate service error (status %d): %s", resp.StatusCode, string(b))
			}

			status = resp.StatusCode
			body = b
			return nil
		},
		retry.Attempts(d.retries),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return 0, nil, err
	}

	return status, body, nil
}
