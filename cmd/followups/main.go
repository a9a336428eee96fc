package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/infra/integration/ghl"
	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/infra/integration/webinarjam"
	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/infra/worker"
	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/usecase"
)

// Pushes post-webinar engagement tags (high/low engagement, no-show,
// hot lead) for every registrant of one schedule into GHL. Runs one pass
// and exits; set FOLLOWUP_INTERVAL (e.g. "1h") to keep it running.
func main() {
	godotenv.Load()

	required := map[string]string{
		"WEBINARJAM_API_KEY":             os.Getenv("WEBINARJAM_API_KEY"),
		"WEBINARJAM_WEBINAR_ID":          os.Getenv("WEBINARJAM_WEBINAR_ID"),
		"WEBINARJAM_WEBINAR_SCHEDULE_ID": os.Getenv("WEBINARJAM_WEBINAR_SCHEDULE_ID"),
		"GHL_WEBHOOK_URL":                os.Getenv("GHL_WEBHOOK_URL"),
	}
	var missing []string
	for name, value := range required {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		log.Fatalf("❌ missing environment variables: %s", strings.Join(missing, ", "))
	}

	webinarID := required["WEBINARJAM_WEBINAR_ID"]
	scheduleID := required["WEBINARJAM_WEBINAR_SCHEDULE_ID"]

	wjClient := webinarjam.NewClient(required["WEBINARJAM_API_KEY"], webinarID, scheduleID)
	webhook := ghl.NewClient(required["GHL_WEBHOOK_URL"])

	processor := usecase.NewFollowupProcessor(wjClient, webhook, webinarID, scheduleID, followupTags())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if raw := os.Getenv("FOLLOWUP_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("❌ invalid FOLLOWUP_INTERVAL %q: %v", raw, err)
		}
		worker.NewFollowupWorker(processor, interval).Start(ctx)
		return
	}

	log.Printf("Processing followups for webinar %s schedule %s", webinarID, scheduleID)
	report, err := processor.Run(ctx)
	if err != nil {
		log.Fatalf("❌ followup pass aborted: %v (fetched=%d sent=%d)", err, report.Fetched, report.Sent)
	}
	log.Printf("✅ done: fetched=%d matched=%d sent=%d failed=%d",
		report.Fetched, report.Matched, report.Sent, report.Failed)
}

// followupTags selects which engagement groups get forwarded. The default
// matches the live funnel: high-engagement attendees get a different
// sequence pushed by a separate trigger.
func followupTags() []string {
	raw := os.Getenv("FOLLOWUP_TAGS")
	if raw == "" {
		return []string{usecase.TagLowEngagement, usecase.TagNoShow}
	}

	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
