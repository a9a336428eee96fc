package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/infra/http/handlers"
	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/infra/http/middleware"
	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/infra/integration/ghl"
	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/infra/integration/webinarjam"
	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/infra/mail"
	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/usecase"
)

func main() {
	godotenv.Load()

	webhookURL := os.Getenv("GHL_WEBHOOK_URL")
	if webhookURL == "" {
		log.Fatal("GHL_WEBHOOK_URL is required")
	}

	// 1. Outbound clients
	webhook := ghl.NewClient(webhookURL)

	// 2. Lead capture pipeline
	extractor := usecase.NewLeadExtractor(leadTags(), leadSource())
	dispatcher := usecase.NewDispatcher(webhook)
	if smtpHost := os.Getenv("SMTP_HOST"); smtpHost != "" {
		dispatcher.Alerts = mail.NewAlertSender(
			smtpHost,
			envInt("SMTP_PORT", 587),
			os.Getenv("SMTP_USER"),
			os.Getenv("SMTP_PASS"),
			os.Getenv("ALERT_FROM"),
			os.Getenv("ALERT_TO"),
		)
	}

	// 3. Handlers
	captureHandler := handlers.NewCaptureHandler(extractor, dispatcher)
	healthHandler := handlers.NewHealthHandler()

	// 4. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		// The capture beacon is called straight from thank-you pages.
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Get("/capture", captureHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// Registration endpoint only comes up when WebinarJam is configured.
	if apiKey := os.Getenv("WEBINARJAM_API_KEY"); apiKey != "" {
		wjClient := webinarjam.NewClient(
			apiKey,
			os.Getenv("WEBINARJAM_WEBINAR_ID"),
			os.Getenv("WEBINARJAM_WEBINAR_SCHEDULE_ID"),
		)
		registerUC := usecase.NewRegisterContactUseCase(wjClient, webhook)
		r.Post("/register", handlers.NewRegisterHandler(registerUC).Handle)
	} else {
		log.Println("⚠️ WEBINARJAM_API_KEY not set, /register disabled")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 Lead capture service listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

// leadTags reads the fixed tag set attached to every captured lead.
// Configurable so future campaigns can vary it without a rebuild.
func leadTags() []string {
	raw := os.Getenv("LEAD_TAGS")
	if raw == "" {
		return []string{"webinar-registrant", "masterclass-funnel"}
	}

	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func leadSource() string {
	if source := os.Getenv("LEAD_SOURCE"); source != "" {
		return source
	}
	return "webinarjam_thank_you_page"
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return fallback
}
