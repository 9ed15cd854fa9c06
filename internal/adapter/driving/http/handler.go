// Package httphandler implements the JSON REST API driving adapter.
package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/Aman-pandey-5909/shield-my-keys/internal/application"
)

// maxBodyBytes caps request bodies; credentials and passwords are tiny.
const maxBodyBytes = 64 << 10

// Pinger reports whether a backing resource is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	credentials *application.CredentialService
	db          Pinger
	logger      *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. db may be nil,
// in which case the health endpoint does not ping storage.
func NewHandler(credentials *application.CredentialService, db Pinger, logger *slog.Logger) *Handler {
	return &Handler{
		credentials: credentials,
		db:          db,
		logger:      logger,
	}
}

// RegisterAPIRoutes registers all /api/v1 routes on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /api/v1/strength", h.EvaluateStrength)
	mux.HandleFunc("GET /api/v1/credentials", h.ListCredentials)
	mux.HandleFunc("POST /api/v1/credentials", h.SaveCredential)
	mux.HandleFunc("GET /api/v1/credentials/{id}", h.GetCredential)
	mux.HandleFunc("DELETE /api/v1/credentials/{id}", h.DeleteCredential)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// NewServeMux creates an http.Handler with the API routes registered and
// wrapped with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterAPIRoutes(mux, h)
	return ApplyMiddleware(mux, logger)
}

// ApplyMiddleware wraps next with recovery (innermost) and request logging.
func ApplyMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	wrapped := recoveryMiddleware(logger, next)
	return loggingMiddleware(logger, wrapped)
}

// EvaluateStrength scores the submitted password. It never fails on content:
// an empty password yields the weak "required" result.
func (h *Handler) EvaluateStrength(w http.ResponseWriter, r *http.Request) {
	var req StrengthRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ToStrengthResponse(application.EvaluateStrength(req.Password)))
}

// ListCredentials returns all saved credentials, newest first.
func (h *Handler) ListCredentials(w http.ResponseWriter, r *http.Request) {
	records, err := h.credentials.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list credentials", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]CredentialResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toCredentialResponse(rec))
	}

	writeJSON(w, http.StatusOK, resp)
}

// SaveCredential stores a new credential tagged with its current strength level.
func (h *Handler) SaveCredential(w http.ResponseWriter, r *http.Request) {
	var req SaveCredentialRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	rec, err := h.credentials.Save(r.Context(), application.SaveCredentialInput{
		Website:  req.Website,
		Username: req.Username,
		Password: req.Password,
	})
	if errors.Is(err, application.ErrMissingFields) {
		writeError(w, http.StatusBadRequest, "missing fields: website, username and password are required")
		return
	}
	if err != nil {
		h.logger.Error("failed to save credential", "website", req.Website, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toCredentialResponse(rec))
}

// GetCredential returns a single saved credential by id.
func (h *Handler) GetCredential(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	rec, err := h.credentials.Get(r.Context(), id)
	if errors.Is(err, application.ErrCredentialNotFound) {
		writeError(w, http.StatusNotFound, "credential not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to get credential", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toCredentialResponse(rec))
}

// DeleteCredential removes a saved credential by id.
func (h *Handler) DeleteCredential(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.credentials.Delete(r.Context(), id)
	if errors.Is(err, application.ErrCredentialNotFound) {
		writeError(w, http.StatusNotFound, "credential not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete credential", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Health returns a simple health check response. When a database is wired it
// is pinged and a failure is reported as 503.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC().Format(time.RFC3339)

	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			h.logger.Error("health check: database unreachable", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Time: now})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Time: now})
}

// errUnsupportedMediaType is returned for request bodies not declared as JSON.
var errUnsupportedMediaType = errors.New("content type must be application/json")

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return errUnsupportedMediaType
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errUnsupportedMediaType) {
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
}
