package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pollwise/newsvote-be/internal/models"
	"github.com/pollwise/newsvote-be/internal/services"
	"github.com/rs/zerolog/log"
)

// ReviewHandler handles HTTP requests for review submissions.
type ReviewHandler struct {
	service services.ReviewServiceProvider
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service services.ReviewServiceProvider) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// ReviewPayload defines the structure for review submissions. Rating is
// bounded to the five-star scale the review page renders.
type ReviewPayload struct {
	Name    string  `json:"name" validate:"required"`
	Rating  float64 `json:"rating" validate:"gte=0,lte=5"`
	Comment string  `json:"comment" validate:"required"`
}

// Submit persists a new review.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload ReviewPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "name and comment are required, rating must be 0-5")
		return
	}

	if _, err := h.service.SubmitReview(payload.Name, payload.Rating, payload.Comment); err != nil {
		log.Error().Err(err).Msg("Failed to submit review")
		writeMessage(w, http.StatusInternalServerError, "Failed to submit review")
		return
	}

	writeMessage(w, http.StatusCreated, "Review submitted successfully")
}

// GetAll retrieves all reviews, newest first.
func (h *ReviewHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListReviews()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list reviews")
		writeMessage(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}
