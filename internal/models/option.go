package models

// Option is a votable category with a running tally. Options are created once
// at startup from the seed list and are never deleted; the tally only grows.
type Option struct {
	Name  string `json:"name"`
	Votes int64  `json:"votes"`
}
