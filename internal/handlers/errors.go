package handlers

import (
	"encoding/json"
	"net/http"
)

// User-facing messages. Security-relevant failures are logged with detail
// server-side; clients only ever see these fixed strings.
const (
	msgInvalidCredentials = "Invalid username or password"
	msgUpdateFailed       = "Failed to update prices"
	msgUpdateOK           = "Prices updated successfully"
	msgCSRFRejected       = "Form token check failed. Please refresh the page and try again."
)

// JSONError sends a JSON error response with a single "error" field.
func JSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
