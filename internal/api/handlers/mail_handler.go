package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pollwise/newsvote-be/internal/services"
	"github.com/rs/zerolog/log"
)

// sendTimeout bounds how long a request waits on the mail worker.
const sendTimeout = 30 * time.Second

// MailHandler handles the contact form relay.
type MailHandler struct {
	service services.MailServiceProvider
}

// NewMailHandler creates a new MailHandler.
func NewMailHandler(service services.MailServiceProvider) *MailHandler {
	return &MailHandler{service: service}
}

// EmailPayload defines the structure for contact form submissions.
type EmailPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Send relays the contact form through the mail worker.
func (h *MailHandler) Send(w http.ResponseWriter, r *http.Request) {
	var payload EmailPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "name, email, subject and message are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), sendTimeout)
	defer cancel()

	err := h.service.Send(ctx, services.ContactMessage{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		log.Error().Err(err).Str("subject", payload.Subject).Msg("Failed to send email")
		writeMessage(w, http.StatusInternalServerError, "Error sending email")
		return
	}

	writeMessage(w, http.StatusOK, "Email sent successfully")
}
