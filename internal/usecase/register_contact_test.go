package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/infra/integration/webinarjam"
)

func registeredUser() *webinarjam.RegisteredUser {
	return &webinarjam.RegisteredUser{
		UserID:        webinarjam.FlexInt(42),
		LiveRoomURL:   "https://event.webinarjam.com/go/live/1/abc",
		ReplayRoomURL: "https://event.webinarjam.com/go/replay/1/abc",
		ThankYouURL:   "https://example.com/thank-you",
	}
}

func TestRegisterContactSplitsNameAndNormalizesPhone(t *testing.T) {
	api := &fakeWebinarAPI{user: registeredUser()}
	sender := &capturingSender{}
	uc := NewRegisterContactUseCase(api, sender)

	out, err := uc.Execute(context.Background(), RegisterContactInput{
		Name:  "Carl Helgesson",
		Email: "carl@example.com",
		Phone: "+46 (70) 123-45-67",
	})

	assert.NoError(t, err)
	assert.Equal(t, 42, out.UserID)
	assert.Equal(t, "https://event.webinarjam.com/go/live/1/abc", out.LiveRoomURL)
	assert.Equal(t, 1, api.regCalls)
}

func TestRegisterContactForwardsRoomURLsToWebhook(t *testing.T) {
	api := &fakeWebinarAPI{user: registeredUser()}
	sender := &capturingSender{}
	uc := NewRegisterContactUseCase(api, sender)

	_, err := uc.Execute(context.Background(), RegisterContactInput{
		Name:  "Carl Helgesson",
		Email: "carl@example.com",
	})

	assert.NoError(t, err)
	assert.Len(t, sender.payloads, 1)

	notification := sender.payloads[0].(registrationNotification)
	assert.Equal(t, "carl@example.com", notification.Email)
	assert.Equal(t, 42, notification.UserID)
	assert.Equal(t, "https://event.webinarjam.com/go/replay/1/abc", notification.ReplayRoomURL)
}

func TestRegisterContactWebhookFailureIsNotFatal(t *testing.T) {
	// The registration itself already succeeded; losing the room URLs on
	// the GHL side is only logged.
	api := &fakeWebinarAPI{user: registeredUser()}
	sender := &capturingSender{err: errors.New("ghl down")}
	uc := NewRegisterContactUseCase(api, sender)

	out, err := uc.Execute(context.Background(), RegisterContactInput{
		Name:  "Carl Helgesson",
		Email: "carl@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, 42, out.UserID)
}

func TestRegisterContactRejectionBecomesDomainError(t *testing.T) {
	api := &fakeWebinarAPI{regErr: &webinarjam.RejectionError{Reason: "Invalid schedule"}}
	uc := NewRegisterContactUseCase(api, &capturingSender{})

	_, err := uc.Execute(context.Background(), RegisterContactInput{
		Name:  "Carl Helgesson",
		Email: "carl@example.com",
	})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	assert.Contains(t, err.Error(), "Invalid schedule")
}

func TestRegisterContactTransportFailureBecomesTechnicalError(t *testing.T) {
	api := &fakeWebinarAPI{regErr: errors.New("connection reset")}
	sender := &capturingSender{}
	uc := NewRegisterContactUseCase(api, sender)

	_, err := uc.Execute(context.Background(), RegisterContactInput{
		Name:  "Carl Helgesson",
		Email: "carl@example.com",
	})

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	assert.Empty(t, sender.payloads)
}

func TestValidateRegisterContactInput(t *testing.T) {
	errs := ValidateRegisterContactInput(RegisterContactInput{})
	assert.Len(t, errs, 2) // name, email

	errs = ValidateRegisterContactInput(RegisterContactInput{
		Name:  "Carl",
		Email: "not-an-email",
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)

	errs = ValidateRegisterContactInput(RegisterContactInput{
		Name:  "Carl",
		Email: "carl@example.com",
		Phone: "123",
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)

	errs = ValidateRegisterContactInput(RegisterContactInput{
		Name:  "Carl Helgesson",
		Email: "carl@example.com",
		Phone: "+46701234567",
	})
	assert.Empty(t, errs)
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "46701234567", DigitsOnly("+46 (70) 123-45-67"))
	assert.Equal(t, "", DigitsOnly(""))
	assert.Equal(t, "123", DigitsOnly("abc123"))
}
