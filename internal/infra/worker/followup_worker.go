package worker

import (
	"context"
	"log"
	"time"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/usecase"
)

// FollowupWorker runs the follow-up processor on a schedule. One pass fires
// immediately on start, then every tick, until the context is cancelled.
type FollowupWorker struct {
	processor    *usecase.FollowupProcessor
	tickInterval time.Duration
}

func NewFollowupWorker(processor *usecase.FollowupProcessor, interval time.Duration) *FollowupWorker {
	return &FollowupWorker{
		processor:    processor,
		tickInterval: interval,
	}
}

func (w *FollowupWorker) Start(ctx context.Context) {
	log.Printf("🕒 Followup worker started (every %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Followup worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *FollowupWorker) runOnce(ctx context.Context) {
	report, err := w.processor.Run(ctx)
	if err != nil {
		log.Printf("❌ followup pass aborted: %v (fetched=%d sent=%d failed=%d)",
			err, report.Fetched, report.Sent, report.Failed)
		return
	}
	log.Printf("✅ followup pass done: fetched=%d matched=%d sent=%d failed=%d",
		report.Fetched, report.Matched, report.Sent, report.Failed)
}
