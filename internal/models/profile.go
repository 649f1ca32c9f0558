package models

import "time"

// Profile holds a profile submission. It is linked to a User only by matching
// strings; nothing enforces that the user exists. ProfilePicture is the
// generated filename of the stored attachment, nil when none was uploaded.
type Profile struct {
	ID             string    `json:"id"`
	UserName       string    `json:"userName"`
	UserEmail      string    `json:"userEmail"`
	Age            string    `json:"age"`
	Address        string    `json:"address"`
	ProfilePicture *string   `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
