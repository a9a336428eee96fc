package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"time"
)

type HealthHandler struct {
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{StartTime: time.Now()}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if os.Getenv("GHL_WEBHOOK_URL") != "" {
		deps["ghl_webhook"] = "configured"
	} else {
		deps["ghl_webhook"] = "not configured"
	}

	if os.Getenv("WEBINARJAM_API_KEY") != "" {
		deps["webinarjam"] = "configured"
	} else {
		deps["webinarjam"] = "not configured"
	}

	if os.Getenv("SMTP_HOST") != "" {
		deps["smtp_alerts"] = "configured"
	} else {
		deps["smtp_alerts"] = "not configured"
	}

	// The service cannot do its job without the webhook endpoint.
	status := "healthy"
	if deps["ghl_webhook"] == "not configured" {
		status = "degraded"
	}

	uptime := time.Since(h.StartTime).Round(time.Second).String()

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       uptime,
		Dependencies: deps,
	}

	w.Header().Set("Content-Type", "application/json")
	if status == "degraded" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	json.NewEncoder(w).Encode(response)
}
