package handlers

import (
	"bytes"
	"database/sql"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pollwise/newsvote-be/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postProfile(t *testing.T, handler *ProfileHandler, fields map[string]string, filename string, fileContent []byte) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	if filename != "" {
		part, err := mw.CreateFormFile("profilePicture", filename)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(fileContent))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	r := httptest.NewRequest("POST", "/saveProfile", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	handler.Save(w, r)
	return w
}

func TestSaveProfileWithoutPicture(t *testing.T) {
	db := newTestDB(t)
	service, err := services.NewProfileService(db, t.TempDir())
	require.NoError(t, err)
	handler := NewProfileHandler(service)

	w := postProfile(t, handler, map[string]string{
		"userName":  "Ann",
		"userEmail": "ann@example.com",
		"age":       "30",
		"address":   "12 Elm St",
	}, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var picture sql.NullString
	require.NoError(t, db.QueryRow("SELECT profile_picture FROM profiles WHERE user_name = ?", "Ann").Scan(&picture))
	assert.False(t, picture.Valid)
}

func TestSaveProfileWithPicture(t *testing.T) {
	db := newTestDB(t)
	service, err := services.NewProfileService(db, t.TempDir())
	require.NoError(t, err)
	handler := NewProfileHandler(service)

	w := postProfile(t, handler, map[string]string{"userName": "Ann"}, "avatar.png", []byte("png bytes"))
	require.Equal(t, http.StatusOK, w.Code)

	var picture sql.NullString
	require.NoError(t, db.QueryRow("SELECT profile_picture FROM profiles WHERE user_name = ?", "Ann").Scan(&picture))
	require.True(t, picture.Valid)
	assert.NotEqual(t, "avatar.png", picture.String, "stored filename is generated, not the original")
}

func TestSaveProfileMissingUserNameReturns400(t *testing.T) {
	db := newTestDB(t)
	service, err := services.NewProfileService(db, t.TempDir())
	require.NoError(t, err)
	handler := NewProfileHandler(service)

	w := postProfile(t, handler, map[string]string{"userEmail": "ann@example.com"}, "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
