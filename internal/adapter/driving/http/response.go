package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Aman-pandey-5909/shield-my-keys/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// StrengthRequest is the JSON body for the strength endpoint.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse is the JSON representation of a strength evaluation.
type StrengthResponse struct {
	Score    int      `json:"score"`
	Level    string   `json:"level"`
	Label    string   `json:"label"`
	Bars     int      `json:"bars"`
	Color    string   `json:"color"`
	Feedback []string `json:"feedback"`
}

// SaveCredentialRequest is the JSON body for the save credential endpoint.
type SaveCredentialRequest struct {
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CredentialResponse is the JSON representation of a saved credential record.
type CredentialResponse struct {
	ID            string `json:"id"`
	Website       string `json:"website"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	Strength      string `json:"strength"`
	StrengthLabel string `json:"strength_label"`
	CreatedAt     string `json:"created_at"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// ToStrengthResponse converts a StrengthResult to its JSON representation.
// Feedback is always an array, never null.
func ToStrengthResponse(res model.StrengthResult) StrengthResponse {
	feedback := res.Feedback
	if feedback == nil {
		feedback = []string{}
	}

	return StrengthResponse{
		Score:    res.Score,
		Level:    string(res.Level),
		Label:    res.Level.Label(),
		Bars:     res.Level.Bars(),
		Color:    res.Level.Color(),
		Feedback: feedback,
	}
}

// toCredentialResponse converts a domain CredentialRecord to its JSON representation.
func toCredentialResponse(rec model.CredentialRecord) CredentialResponse {
	return CredentialResponse{
		ID:            rec.ID,
		Website:       rec.Website,
		Username:      rec.Username,
		Password:      rec.Password,
		Strength:      string(rec.Strength),
		StrengthLabel: rec.Strength.Label(),
		CreatedAt:     rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}
