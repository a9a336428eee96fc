package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/infra/metrics"
	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/usecase"
)

// CaptureHandler serves the thank-you page beacon. The page redirects (or
// fires an image request) to /capture carrying the wj_lead_* query
// parameters; delivery to GHL happens in the background so the page never
// waits on the webhook.
type CaptureHandler struct {
	extractor   *usecase.LeadExtractor
	dispatcher  *usecase.Dispatcher
	rateLimiter *RateLimiter
}

func NewCaptureHandler(extractor *usecase.LeadExtractor, dispatcher *usecase.Dispatcher) *CaptureHandler {
	return &CaptureHandler{
		extractor:   extractor,
		dispatcher:  dispatcher,
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 req/min per IP
	}
}

type CaptureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (h *CaptureHandler) Handle(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(CaptureResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	params := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	lead, ok := h.extractor.Extract(params)
	if !ok {
		// No email parameter: by contract a silent no-op.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	metrics.RecordLeadCaptured(lead.Source)

	// Fire and forget. The browser may navigate away any moment; the
	// delivery loop must not be tied to the request context.
	go func() {
		if h.dispatcher.Dispatch(context.Background(), lead) {
			metrics.RecordDelivery("delivered")
		} else {
			metrics.RecordDelivery("exhausted")
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(CaptureResponse{Success: true})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
