package models

import "time"

// Review is a free-text submission with a numeric rating. Reviews are
// immutable once created; there is no update or delete path.
type Review struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
