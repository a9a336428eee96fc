package usecase

import (
	"context"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/entity"
	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/infra/integration/webinarjam"
)

// WebhookSender posts a JSON payload to the GHL inbound webhook.
// Implemented by integration/ghl.Client.
type WebhookSender interface {
	Send(ctx context.Context, payload any) error
}

// WebinarAPI is the slice of the WebinarJam API the use cases need.
type WebinarAPI interface {
	Register(ctx context.Context, firstName, lastName, email, phone string) (*webinarjam.RegisteredUser, error)
	Registrants(ctx context.Context, page int) (*webinarjam.RegistrantsPage, error)
}

// AlertNotifier is called when a lead delivery exhausts all attempts.
// Purely operational; the end user never sees delivery failures.
type AlertNotifier interface {
	NotifyDeliveryFailure(lead *entity.Lead, attempts int)
}
