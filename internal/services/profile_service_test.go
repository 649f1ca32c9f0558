package services

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveProfileWithoutAttachment(t *testing.T) {
	db := newTestDB(t)
	service, err := NewProfileService(db, t.TempDir())
	require.NoError(t, err)

	profile, err := service.SaveProfile(ProfileSubmission{
		UserName:  "Ann",
		UserEmail: "ann@example.com",
		Age:       "30",
		Address:   "12 Elm St",
	})
	require.NoError(t, err)
	assert.Nil(t, profile.ProfilePicture)

	var picture sql.NullString
	require.NoError(t, db.QueryRow("SELECT profile_picture FROM profiles WHERE id = ?", profile.ID).Scan(&picture))
	assert.False(t, picture.Valid, "picture reference must be absent")
}

func TestSaveProfileStoresAttachmentUnderUniqueName(t *testing.T) {
	db := newTestDB(t)
	uploadDir := t.TempDir()
	service, err := NewProfileService(db, uploadDir)
	require.NoError(t, err)

	submit := func(content string) string {
		profile, err := service.SaveProfile(ProfileSubmission{
			UserName:   "Ann",
			Attachment: &Attachment{Filename: "avatar.png", Data: strings.NewReader(content)},
		})
		require.NoError(t, err)
		require.NotNil(t, profile.ProfilePicture)
		return *profile.ProfilePicture
	}

	// Two uploads of identically named files must never collide.
	first := submit("first bytes")
	second := submit("second bytes")
	assert.NotEqual(t, first, second)

	assert.Equal(t, ".png", filepath.Ext(first), "original extension is kept")

	data, err := os.ReadFile(filepath.Join(uploadDir, first))
	require.NoError(t, err)
	assert.Equal(t, "first bytes", string(data))

	data, err = os.ReadFile(filepath.Join(uploadDir, second))
	require.NoError(t, err)
	assert.Equal(t, "second bytes", string(data))
}
