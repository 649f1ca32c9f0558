package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/pollwise/newsvote-be/internal/auth"
	"github.com/pollwise/newsvote-be/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for signup, login and session identity.
type UserHandler struct {
	service  services.UserServiceProvider
	sessions *auth.SessionStore
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, sessions *auth.SessionStore) *UserHandler {
	return &UserHandler{service: service, sessions: sessions}
}

// SignupPayload defines the structure for signup requests.
type SignupPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup handles new user registration.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	if _, err := h.service.Register(payload.Name, payload.Email, payload.Password); err != nil {
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		writeMessage(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	writeMessage(w, http.StatusOK, "Signup successful")
}

// Login handles user authentication and session creation.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Authentication lookup failed")
		writeMessage(w, http.StatusInternalServerError, "Login failed")
		return
	}

	token, session := h.sessions.Create(user)

	// Set Secure flag based on environment.
	isProd := os.Getenv("APP_ENV") == "production"

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"name":    user.Name,
		"email":   user.Email,
	})
}

// Me retrieves the identity behind the request's session cookie.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessions.FromRequest(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	user, err := h.service.GetUserByID(session.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", session.UserID).Msg("User from session not found in DB")
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
