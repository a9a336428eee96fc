package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/infra/integration/ghl"
	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/usecase"
)

// Replays a CSV export (columns: name,email,phone) through the webhook
// delivery loop. Used to retroactively push registrants that predate the
// capture script into GHL.
func main() {
	file := flag.String("file", "registrations.csv", "CSV file with name,email,phone columns")
	skipPersonal := flag.Bool("skip-personal", false, "skip consumer mailbox addresses (gmail, hotmail, ...)")
	flag.Parse()

	godotenv.Load()

	webhookURL := os.Getenv("GHL_WEBHOOK_URL")
	if webhookURL == "" {
		log.Fatal("GHL_WEBHOOK_URL is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("❌ cannot open %s: %v", *file, err)
	}
	defer f.Close()

	dispatcher := usecase.NewDispatcher(ghl.NewClient(webhookURL))
	processor := usecase.NewBackfillProcessor(dispatcher, backfillTags(), "csv_backfill")
	processor.SkipPersonal = *skipPersonal

	log.Printf("Backfilling leads from %s", *file)
	report, err := processor.Run(context.Background(), f)
	if err != nil {
		log.Fatalf("❌ backfill aborted: %v (rows=%d delivered=%d)", err, report.Rows, report.Delivered)
	}
	log.Printf("✅ done: rows=%d delivered=%d exhausted=%d skipped=%d",
		report.Rows, report.Delivered, report.Exhausted, report.Skipped)
}

func backfillTags() []string {
	raw := os.Getenv("LEAD_TAGS")
	if raw == "" {
		return []string{"webinar-registrant", "retroactive-import"}
	}

	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
