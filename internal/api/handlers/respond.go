package handlers

import (
	"encoding/json"
	"net/http"

	validator "github.com/go-playground/validator/v10"
)

// validate is shared by all handlers; Validator instances cache struct metadata.
var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
