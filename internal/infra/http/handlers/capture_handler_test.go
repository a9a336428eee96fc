package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/entity"
	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/usecase"
)

// channelSender hands every delivered payload to the test goroutine.
type channelSender struct {
	delivered chan *entity.Lead
}

func (s *channelSender) Send(ctx context.Context, payload any) error {
	s.delivered <- payload.(*entity.Lead)
	return nil
}

func newCaptureForTest(sender usecase.WebhookSender) *CaptureHandler {
	extractor := usecase.NewLeadExtractor([]string{"webinar-registrant"}, "webinarjam_thank_you_page")
	dispatcher := usecase.NewDispatcher(sender)
	dispatcher.RetryDelay = 0
	return NewCaptureHandler(extractor, dispatcher)
}

func TestCaptureAcceptsAndDispatchesLead(t *testing.T) {
	sender := &channelSender{delivered: make(chan *entity.Lead, 1)}
	handler := newCaptureForTest(sender)

	req := httptest.NewRequest(http.MethodGet,
		"/capture?wj_lead_email=carl@example.com&wj_lead_first_name=Carl&wj_lead_last_name=Helgesson"+
			"&wj_lead_phone_country_code=%2B46&wj_lead_phone_number=701234567", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)

	var resp CaptureResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)

	select {
	case lead := <-sender.delivered:
		assert.Equal(t, "carl@example.com", lead.Email)
		assert.Equal(t, "Carl", lead.FirstName)
		assert.Equal(t, "Helgesson", lead.LastName)
		assert.Equal(t, "+46701234567", lead.Phone)
		assert.Equal(t, "SE", lead.Country)
	case <-time.After(2 * time.Second):
		t.Fatal("lead was never dispatched")
	}
}

func TestCaptureWithoutEmailIsSilent(t *testing.T) {
	sender := &channelSender{delivered: make(chan *entity.Lead, 1)}
	handler := newCaptureForTest(sender)

	req := httptest.NewRequest(http.MethodGet, "/capture?wj_lead_first_name=Carl", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	select {
	case <-sender.delivered:
		t.Fatal("nothing should be dispatched without an email")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCaptureRateLimitsPerIP(t *testing.T) {
	sender := &channelSender{delivered: make(chan *entity.Lead, 64)}
	handler := newCaptureForTest(sender)

	var lastCode int
	for i := 0; i < 31; i++ {
		req := httptest.NewRequest(http.MethodGet, "/capture?wj_lead_email=carl@example.com", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)
		lastCode = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)

	// A different client is unaffected.
	req := httptest.NewRequest(http.MethodGet, "/capture?wj_lead_email=other@example.com", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(2, 20*time.Millisecond)

	assert.True(t, rl.Allow("ip"))
	assert.True(t, rl.Allow("ip"))
	assert.False(t, rl.Allow("ip"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, rl.Allow("ip"))
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/capture", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	assert.Equal(t, "10.0.0.1:1234", getClientIP(req))

	req.Header.Set("X-Real-IP", "1.2.3.4")
	assert.Equal(t, "1.2.3.4", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "5.6.7.8")
	assert.Equal(t, "5.6.7.8", getClientIP(req))
}
