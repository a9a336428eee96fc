package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/usecase"
)

// RegisterContactExecutor narrows the use case for mocking in tests.
type RegisterContactExecutor interface {
	Execute(ctx context.Context, input usecase.RegisterContactInput) (*usecase.RegisterContactOutput, error)
}

type RegisterHandler struct {
	UseCase RegisterContactExecutor
}

func NewRegisterHandler(uc RegisterContactExecutor) *RegisterHandler {
	return &RegisterHandler{UseCase: uc}
}

type registerErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func (h *RegisterHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, registerErrorResponse{Error: "Invalid JSON"})
		return
	}

	if errs := usecase.ValidateRegisterContactInput(input); len(errs) > 0 {
		fields := make([]string, len(errs))
		for i, e := range errs {
			fields[i] = e.Error()
		}
		writeJSON(w, http.StatusBadRequest, registerErrorResponse{
			Error:  "Validation failed",
			Fields: fields,
		})
		return
	}

	output, err := h.UseCase.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusUnprocessableEntity, registerErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("❌ registration failed for %s: %v", input.Email, err)
		writeJSON(w, http.StatusBadGateway, registerErrorResponse{Error: "Webinar service is currently unavailable. Please try again later."})
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
