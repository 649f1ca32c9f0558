package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pollwise/newsvote-be/internal/models"
	"github.com/pollwise/newsvote-be/internal/services"
	"github.com/rs/zerolog/log"
)

// OptionHandler handles HTTP requests for voting options and votes.
type OptionHandler struct {
	service services.OptionServiceProvider
}

// NewOptionHandler creates a new OptionHandler.
func NewOptionHandler(service services.OptionServiceProvider) *OptionHandler {
	return &OptionHandler{service: service}
}

// VotePayload defines the structure for vote requests.
type VotePayload struct {
	Name string `json:"name" validate:"required"`
}

// GetAll returns every option with its current vote count.
func (h *OptionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.ListOptions()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list options")
		writeMessage(w, http.StatusInternalServerError, "Failed to retrieve options")
		return
	}
	if options == nil {
		options = []models.Option{}
	}
	writeJSON(w, http.StatusOK, options)
}

// Vote increments the tally for the submitted option name.
func (h *OptionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var payload VotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := h.service.CastVote(payload.Name); err != nil {
		if errors.Is(err, services.ErrOptionNotFound) {
			writeMessage(w, http.StatusNotFound, "Option not found")
			return
		}
		log.Error().Err(err).Str("option", payload.Name).Msg("Failed to cast vote")
		writeMessage(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	writeMessage(w, http.StatusOK, "Vote counted successfully")
}
