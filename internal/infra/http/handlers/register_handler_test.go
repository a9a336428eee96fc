package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/usecase"
)

type mockRegisterUseCase struct {
	mock.Mock
}

func (m *mockRegisterUseCase) Execute(ctx context.Context, input usecase.RegisterContactInput) (*usecase.RegisterContactOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.RegisterContactOutput), args.Error(1)
}

func postRegister(handler *RegisterHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestRegisterSuccessReturnsRoomURLs(t *testing.T) {
	uc := new(mockRegisterUseCase)
	uc.On("Execute", mock.Anything, usecase.RegisterContactInput{
		Name:  "Carl Helgesson",
		Email: "carl@example.com",
		Phone: "+46 70 123 45 67",
	}).Return(&usecase.RegisterContactOutput{
		Message:     "Registration successful",
		UserID:      42,
		LiveRoomURL: "https://event.webinarjam.com/go/live/1/abc",
	}, nil)

	rec := postRegister(NewRegisterHandler(uc),
		`{"name": "Carl Helgesson", "email": "carl@example.com", "phone": "+46 70 123 45 67"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.RegisterContactOutput
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, 42, out.UserID)
	assert.Equal(t, "https://event.webinarjam.com/go/live/1/abc", out.LiveRoomURL)
	uc.AssertExpectations(t)
}

func TestRegisterInvalidJSON(t *testing.T) {
	uc := new(mockRegisterUseCase)

	rec := postRegister(NewRegisterHandler(uc), `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute")
}

func TestRegisterValidationFailure(t *testing.T) {
	uc := new(mockRegisterUseCase)

	rec := postRegister(NewRegisterHandler(uc), `{"name": "", "email": "not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp registerErrorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Validation failed", resp.Error)
	assert.NotEmpty(t, resp.Fields)
	uc.AssertNotCalled(t, "Execute")
}

func TestRegisterDomainErrorIs422(t *testing.T) {
	uc := new(mockRegisterUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &usecase.DomainError{
		Code:    "REGISTRATION_REJECTED",
		Message: "Invalid schedule",
	})

	rec := postRegister(NewRegisterHandler(uc),
		`{"name": "Carl", "email": "carl@example.com"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp registerErrorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Invalid schedule", resp.Error)
}

func TestRegisterTechnicalErrorIs502(t *testing.T) {
	uc := new(mockRegisterUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &usecase.TechnicalError{
		Code:    "WEBINARJAM_UNAVAILABLE",
		Message: "request failed",
	})

	rec := postRegister(NewRegisterHandler(uc),
		`{"name": "Carl", "email": "carl@example.com"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp registerErrorResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	// The upstream failure detail stays in the logs.
	assert.NotContains(t, resp.Error, "request failed")
}
