package ghl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/infra/metrics"
)

const userAgent = "ZoomWebinarIntegration/1.0"

// Client posts JSON payloads to a GoHighLevel inbound webhook trigger.
// One attempt per call; retry policy belongs to the caller.
type Client struct {
	webhookURL string
	http       *http.Client
}

func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// Send serializes payload and posts it. Any non-2xx status is an error.
// The response body is never interpreted; GHL inbound hooks return an
// opaque acknowledgement.
func (c *Client) Send(ctx context.Context, payload any) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ghl: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	metrics.RecordDeliveryAttempt()

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordIntegrationError("ghl")
		return fmt.Errorf("ghl: request failed: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordIntegrationError("ghl")
		return fmt.Errorf("ghl: webhook rejected (status %d)", resp.StatusCode)
	}

	return nil
}
