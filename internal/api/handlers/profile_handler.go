package handlers

import (
	"errors"
	"net/http"

	"github.com/pollwise/newsvote-be/internal/services"
	"github.com/rs/zerolog/log"
)

// maxProfileFormSize caps the multipart form held in memory.
const maxProfileFormSize = 10 << 20

// ProfileHandler handles multipart profile submissions.
type ProfileHandler struct {
	service services.ProfileServiceProvider
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service services.ProfileServiceProvider) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Save accepts the profile form fields plus an optional profilePicture file.
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxProfileFormSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	submission := services.ProfileSubmission{
		UserName:  r.FormValue("userName"),
		UserEmail: r.FormValue("userEmail"),
		Age:       r.FormValue("age"),
		Address:   r.FormValue("address"),
	}
	if submission.UserName == "" {
		writeMessage(w, http.StatusBadRequest, "userName is required")
		return
	}

	file, header, err := r.FormFile("profilePicture")
	switch {
	case err == nil:
		defer file.Close()
		submission.Attachment = &services.Attachment{Filename: header.Filename, Data: file}
	case errors.Is(err, http.ErrMissingFile):
		// A missing picture is legal; the record stores an absent reference.
	default:
		writeMessage(w, http.StatusBadRequest, "Invalid profile picture upload")
		return
	}

	if _, err := h.service.SaveProfile(submission); err != nil {
		log.Error().Err(err).Str("user_name", submission.UserName).Msg("Failed to save profile")
		writeMessage(w, http.StatusInternalServerError, "Error saving profile.")
		return
	}

	writeMessage(w, http.StatusOK, "Profile saved successfully.")
}
