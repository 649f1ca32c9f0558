package services

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pollwise/newsvote-be/internal/models"
)

// Attachment is an uploaded file handed to the profile service.
type Attachment struct {
	Filename string
	Data     io.Reader
}

// ProfileSubmission carries the form fields of a profile request. Attachment
// is nil when no picture was uploaded.
type ProfileSubmission struct {
	UserName   string
	UserEmail  string
	Age        string
	Address    string
	Attachment *Attachment
}

// ProfileServiceProvider defines the interface for profile services.
type ProfileServiceProvider interface {
	SaveProfile(submission ProfileSubmission) (models.Profile, error)
}

// ProfileService persists profile submissions and owns the upload directory.
type ProfileService struct {
	db        *sql.DB
	uploadDir string
}

// NewProfileService creates a new ProfileService.
func NewProfileService(db *sql.DB, uploadDir string) (*ProfileService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}
	return &ProfileService{db: db, uploadDir: uploadDir}, nil
}

// SaveProfile stores the optional attachment under a generated unique name and
// persists a profile row referencing it. Repeated uploads of identically named
// files never collide.
func (s *ProfileService) SaveProfile(submission ProfileSubmission) (models.Profile, error) {
	profile := models.Profile{
		ID:        uuid.New().String(),
		UserName:  submission.UserName,
		UserEmail: submission.UserEmail,
		Age:       submission.Age,
		Address:   submission.Address,
		CreatedAt: time.Now().UTC(),
	}

	if submission.Attachment != nil {
		storedName, err := s.storeAttachment(submission.Attachment)
		if err != nil {
			return models.Profile{}, err
		}
		profile.ProfilePicture = &storedName
	}

	stmt, err := s.db.Prepare("INSERT INTO profiles(id, user_name, user_email, age, address, profile_picture, created_at) VALUES(?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.Profile{}, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(profile.ID, profile.UserName, profile.UserEmail, profile.Age, profile.Address, profile.ProfilePicture, profile.CreatedAt); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// storeAttachment writes the attachment bytes under a uuid-based filename,
// keeping the original extension.
func (s *ProfileService) storeAttachment(attachment *Attachment) (string, error) {
	storedName := uuid.New().String() + filepath.Ext(attachment.Filename)

	dst, err := os.Create(filepath.Join(s.uploadDir, storedName))
	if err != nil {
		return "", fmt.Errorf("could not create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, attachment.Data); err != nil {
		return "", fmt.Errorf("could not write upload file: %w", err)
	}
	return storedName, nil
}
