package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pollwise/newsvote-be/internal/models"
)

// ReviewServiceProvider defines the interface for review services.
type ReviewServiceProvider interface {
	SubmitReview(name string, rating float64, comment string) (models.Review, error)
	ListReviews() ([]models.Review, error)
}

// ReviewService provides business logic for review submissions.
type ReviewService struct {
	db *sql.DB
}

// NewReviewService creates a new ReviewService.
func NewReviewService(db *sql.DB) *ReviewService {
	return &ReviewService{db: db}
}

// SubmitReview persists a new review. Reviews are append-only.
func (s *ReviewService) SubmitReview(name string, rating float64, comment string) (models.Review, error) {
	review := models.Review{
		ID:        uuid.New().String(),
		Name:      name,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}

	stmt, err := s.db.Prepare("INSERT INTO reviews(id, name, rating, comment, created_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.Review{}, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(review.ID, review.Name, review.Rating, review.Comment, review.CreatedAt); err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// ListReviews retrieves all reviews, newest first.
func (s *ReviewService) ListReviews() ([]models.Review, error) {
	rows, err := s.db.Query("SELECT id, name, rating, comment, created_at FROM reviews ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(&review.ID, &review.Name, &review.Rating, &review.Comment, &review.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
