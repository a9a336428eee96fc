package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/infra/integration/webinarjam"
)

// RegisterContactUseCase signs a contact up for the configured WebinarJam
// schedule and forwards the resulting room URLs to the GHL webhook so the
// follow-up automation can reach the registrant.
type RegisterContactUseCase struct {
	Webinar WebinarAPI
	Webhook WebhookSender
}

func NewRegisterContactUseCase(webinar WebinarAPI, webhook WebhookSender) *RegisterContactUseCase {
	return &RegisterContactUseCase{
		Webinar: webinar,
		Webhook: webhook,
	}
}

func (uc *RegisterContactUseCase) Execute(ctx context.Context, input RegisterContactInput) (*RegisterContactOutput, error) {
	firstName, lastName := SplitFullName(input.Name)
	phone := DigitsOnly(input.Phone)

	user, err := uc.Webinar.Register(ctx, firstName, lastName, input.Email, phone)
	if err != nil {
		var rejection *webinarjam.RejectionError
		if errors.As(err, &rejection) {
			return nil, &DomainError{Code: "REGISTRATION_REJECTED", Message: rejection.Reason}
		}
		return nil, &TechnicalError{Code: "WEBINARJAM_UNAVAILABLE", Message: err.Error()}
	}

	log.Printf("✅ registered %s with WebinarJam (user_id=%d)", input.Email, int(user.UserID))

	// Best effort: the registration already happened, a webhook hiccup here
	// only costs the room URLs on the GHL contact.
	notification := registrationNotification{
		Email:         input.Email,
		UserID:        int(user.UserID),
		LiveRoomURL:   user.LiveRoomURL,
		ReplayRoomURL: user.ReplayRoomURL,
		ThankYouURL:   user.ThankYouURL,
	}
	if err := uc.Webhook.Send(ctx, notification); err != nil {
		log.Printf("⚠️ failed to forward registration of %s to GHL: %v", input.Email, err)
	}

	return &RegisterContactOutput{
		Message:       "Contact successfully registered for the webinar.",
		UserID:        int(user.UserID),
		LiveRoomURL:   user.LiveRoomURL,
		ReplayRoomURL: user.ReplayRoomURL,
		ThankYouURL:   user.ThankYouURL,
	}, nil
}
