// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"github.com/Aman-pandey-5909/shield-my-keys/internal/adapter/driving/web/templates"
	"github.com/Aman-pandey-5909/shield-my-keys/internal/adapter/driving/web/templates/pages"
	vm "github.com/Aman-pandey-5909/shield-my-keys/internal/adapter/driving/web/viewmodel"
	"github.com/Aman-pandey-5909/shield-my-keys/internal/application"
	"github.com/Aman-pandey-5909/shield-my-keys/internal/domain/model"
)

const pageTitle = "Shield My Keys"

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	credentials *application.CredentialService
	logger      *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(credentials *application.CredentialService, logger *slog.Logger) *Handler {
	return &Handler{
		credentials: credentials,
		logger:      logger,
	}
}

// Dashboard renders the checker and the credential manager. The "show" query
// parameter lists the ids whose passwords are revealed, and "notice" carries
// the flash message of a preceding redirect.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := vm.DashboardViewModel{
		CSRFToken: csrfToken(w, r),
		Meter:     toStrengthMeterViewModel(application.EvaluateStrength(""), false),
		Notice:    noticeFor(q.Get("notice"), q.Get("website")),
	}
	h.renderDashboard(w, r, http.StatusOK, data, parseRevealed(q.Get("show")))
}

// CheckStrength is the no-script fallback for the live meter: it scores the
// posted password and re-renders the dashboard with the meter filled in.
func (h *Handler) CheckStrength(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}

	password := r.FormValue("password")
	data := vm.DashboardViewModel{
		CSRFToken: csrfToken(w, r),
		Meter:     toStrengthMeterViewModel(application.EvaluateStrength(password), password != ""),
	}
	h.renderDashboard(w, r, http.StatusOK, data, nil)
}

// SaveCredential stores the submitted credential and redirects back to the
// dashboard. Missing fields re-render the form with an error notice.
func (h *Handler) SaveCredential(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}

	in := application.SaveCredentialInput{
		Website:  StripMarkup(r.FormValue("website")),
		Username: StripMarkup(r.FormValue("username")),
		Password: r.FormValue("password"),
	}

	_, err := h.credentials.Save(r.Context(), in)
	if errors.Is(err, application.ErrMissingFields) {
		data := vm.DashboardViewModel{
			CSRFToken: csrfToken(w, r),
			Meter:     toStrengthMeterViewModel(application.EvaluateStrength(""), false),
			Notice: &vm.NoticeViewModel{
				Title:       "Missing fields",
				Description: "Please fill in all fields",
				IsError:     true,
			},
			Website:  in.Website,
			Username: in.Username,
		}
		h.renderDashboard(w, r, http.StatusBadRequest, data, nil)
		return
	}
	if err != nil {
		h.logger.Error("failed to save credential", "website", in.Website, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	target := "/?" + url.Values{"notice": {"saved"}, "website": {in.Website}}.Encode()
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// DeleteCredential removes a saved credential and redirects to the dashboard.
func (h *Handler) DeleteCredential(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}

	id := r.PathValue("id")
	err := h.credentials.Delete(r.Context(), id)
	if errors.Is(err, application.ErrCredentialNotFound) {
		http.Error(w, "credential not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to delete credential", "id", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/?notice=deleted", http.StatusSeeOther)
}

// Tips renders the embedded password guidance markdown.
func (h *Handler) Tips(w http.ResponseWriter, r *http.Request) {
	component := pages.Tips(vm.TipsViewModel{BodyHTML: RenderMarkdown(tipsMarkdown)})
	h.render(w, r, http.StatusOK, "Password tips", component)
}

func (h *Handler) renderDashboard(w http.ResponseWriter, r *http.Request, status int, data vm.DashboardViewModel, revealed []string) {
	records, err := h.credentials.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list credentials", "error", err)
		records = []model.CredentialRecord{}
		if data.Notice == nil {
			data.Notice = &vm.NoticeViewModel{
				Title:       "Storage unavailable",
				Description: "Saved passwords could not be loaded",
				IsError:     true,
			}
		}
	}
	data.Credentials = toCredentialRowViewModels(records, revealed)

	h.render(w, r, status, pageTitle, pages.Dashboard(data))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, title string, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if err := templates.Layout(title, body).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "title", title, "error", err)
	}
}
