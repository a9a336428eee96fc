package webinarjam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

const defaultBaseURL = "https://api.webinarjam.com/webinarjam"

// APIError is a non-2xx answer from the WebinarJam API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("webinarjam api status %d: %s", e.StatusCode, e.Body)
}

// RejectionError means the API processed the request and refused it
// (status field != "success"). Retrying is pointless.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return "webinarjam rejected request: " + e.Reason
}

// Client talks to the WebinarJam API for one webinar/schedule pair.
type Client struct {
	apiKey     string
	webinarID  string
	scheduleID string
	baseURL    string
	http       *http.Client
}

func NewClient(apiKey, webinarID, scheduleID string) *Client {
	return &Client{
		apiKey:     apiKey,
		webinarID:  webinarID,
		scheduleID: scheduleID,
		baseURL:    defaultBaseURL,
		http:       &http.Client{Timeout: 15 * time.Second},
	}
}

// Register signs the contact up for the configured webinar schedule and
// returns the per-user room URLs. The WebinarJam fronting proxy burps 502s
// under load, so those (and transport errors) are retried with backoff;
// any other status is final.
func (c *Client) Register(ctx context.Context, firstName, lastName, email, phone string) (*RegisteredUser, error) {
	form := url.Values{}
	form.Set("api_key", c.apiKey)
	form.Set("webinar_id", c.webinarID)
	form.Set("schedule", c.scheduleID)
	form.Set("first_name", firstName)
	form.Set("last_name", lastName)
	form.Set("email", email)
	if phone != "" {
		form.Set("phone", phone)
	}

	body, err := retry.DoWithData(
		func() ([]byte, error) {
			return c.postForm(ctx, "/register", form)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(2*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("⚠️ webinarjam register retry %d for %s: %v", n+1, email, err)
		}),
	)
	if err != nil {
		return nil, err
	}

	var parsed registerResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("webinarjam register: invalid response: %w", err)
	}
	if parsed.Status != "success" {
		if parsed.Error == "" {
			parsed.Error = "unknown error"
		}
		return nil, &RejectionError{Reason: parsed.Error}
	}

	return &parsed.User, nil
}

// Registrants fetches one page of the registrant listing for the configured
// schedule. date_range=0 means "everything for this schedule".
func (c *Client) Registrants(ctx context.Context, page int) (*RegistrantsPage, error) {
	form := url.Values{}
	form.Set("api_key", c.apiKey)
	form.Set("webinar_id", c.webinarID)
	form.Set("schedule", c.scheduleID)
	form.Set("date_range", "0")
	form.Set("page", fmt.Sprint(page))

	body, err := c.postForm(ctx, "/registrants", form)
	if err != nil {
		return nil, err
	}

	var parsed registrantsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("webinarjam registrants: invalid response: %w", err)
	}
	if parsed.Status != "success" {
		msg := parsed.Message
		if msg == "" {
			msg = parsed.Error
		}
		return nil, &RejectionError{Reason: msg}
	}

	return &parsed.Registrants, nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}

func isRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusBadGateway
	}
	// transport errors, timeouts
	return true
}
