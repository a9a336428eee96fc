package usecase

import (
	"context"
	"log"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/google/uuid"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/entity"
)

const (
	// GHL occasionally drops inbound webhook calls; three tries with a
	// short pause recovers virtually all of them.
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 2 * time.Second
)

// Dispatcher posts a lead record to the webhook with bounded retry.
// Every failure is retried the same way: a 400 counts exactly like a 503 or
// a connection reset. GHL has returned transient 4xx on throttling, so no
// status is treated as permanent here.
type Dispatcher struct {
	Sender      WebhookSender
	MaxAttempts uint
	RetryDelay  time.Duration
	Alerts      AlertNotifier // optional
}

func NewDispatcher(sender WebhookSender) *Dispatcher {
	return &Dispatcher{
		Sender:      sender,
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
	}
}

// Dispatch delivers the lead, pausing RetryDelay between attempts (never
// after the last one). Returns true on any 2xx, false once attempts are
// exhausted. Nothing beyond the boolean escapes: failed deliveries are an
// operational concern, invisible to the registrant.
func (d *Dispatcher) Dispatch(ctx context.Context, lead *entity.Lead) bool {
	id := uuid.NewString()[:8]

	err := retry.Do(
		func() error {
			return d.Sender.Send(ctx, lead)
		},
		retry.Context(ctx),
		retry.Attempts(d.MaxAttempts),
		retry.Delay(d.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("⚠️ [dispatch %s] attempt %d/%d failed for %s: %v", id, n+1, d.MaxAttempts, lead.Email, err)
		}),
	)
	if err != nil {
		log.Printf("❌ [dispatch %s] gave up after %d attempts for %s: %v", id, d.MaxAttempts, lead.Email, err)
		if d.Alerts != nil {
			d.Alerts.NotifyDeliveryFailure(lead, int(d.MaxAttempts))
		}
		return false
	}

	log.Printf("✅ [dispatch %s] lead %s delivered", id, lead.Email)
	return true
}
