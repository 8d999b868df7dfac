// Package respond writes the JSON bodies shared by every API handler.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/Marco16005/pag-web-web/internal/outcome"
	"github.com/Marco16005/pag-web-web/internal/validate"
)

// Body is the envelope for messages and errors.
type Body struct {
	Message string   `json:"message"`
	Field   string   `json:"field,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Body{Message: msg})
}

// Invalid answers 400 with the first validation error.
func Invalid(w http.ResponseWriter, errs validate.Errors) {
	fe := errs.First()
	if fe == nil {
		Message(w, http.StatusBadRequest, "Invalid request.")
		return
	}
	JSON(w, http.StatusBadRequest, Body{Message: fe.Message, Field: fe.Field, Errors: fe.Details})
}

// Outcome writes a resolved sentinel response.
func Outcome(w http.ResponseWriter, r outcome.Response) {
	JSON(w, r.Status, Body{Message: r.Message, Field: r.Field})
}

// Decode reads a JSON request body into v. It answers 400 itself and
// returns false when the body is not valid JSON.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		Message(w, http.StatusBadRequest, "Invalid request body.")
		return false
	}
	return true
}
