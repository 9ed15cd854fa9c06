package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vm "github.com/Aman-pandey-5909/shield-my-keys/internal/adapter/driving/web/viewmodel"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestStrengthMeter(t *testing.T) {
	tests := []struct {
		name       string
		meter      vm.StrengthMeterViewModel
		wantHidden bool
		wantFilled int
	}{
		{
			name:       "hidden while empty",
			meter:      vm.StrengthMeterViewModel{Label: "Weak", Color: "destructive", Bars: 1},
			wantHidden: true,
			wantFilled: 1,
		},
		{
			name: "visible strong",
			meter: vm.StrengthMeterViewModel{
				Visible: true, Label: "Strong", Color: "success", Bars: 3,
				Feedback: []string{"Add special characters"},
			},
			wantFilled: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := renderString(t, StrengthMeter(tt.meter))

			assert.Equal(t, tt.wantHidden, strings.Contains(html, "data-strength-meter hidden"))
			assert.Contains(t, html, `class="meter-label text-`+tt.meter.Color+`" data-strength-label>`+tt.meter.Label+`</span>`)
			assert.Equal(t, tt.wantFilled, strings.Count(html, `class="bar bg-`+tt.meter.Color+`"`))
			assert.Equal(t, 4, strings.Count(html, "data-strength-bar"))
			for _, f := range tt.meter.Feedback {
				assert.Contains(t, html, "<li>"+f+"</li>")
			}
		})
	}
}

func TestDashboard_EscapesUserFields(t *testing.T) {
	html := renderString(t, Dashboard(vm.DashboardViewModel{
		CSRFToken: `tok"en`,
		Website:   `"><script>alert(1)</script>`,
		Credentials: []vm.CredentialRowViewModel{{
			ID:            "1",
			Website:       "<img src=x onerror=alert(1)>",
			Username:      "a&b",
			Password:      "<b>pw</b>",
			ToggleURL:     "/?show=1",
			DeleteURL:     "/credentials/1/delete",
			StrengthLabel: "Weak",
			StrengthColor: "destructive",
		}},
	}))

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, "<b>pw</b>")
	assert.Contains(t, html, "&lt;img src=x onerror=alert(1)&gt;")
	assert.Contains(t, html, "a&amp;b")
	assert.Contains(t, html, `value="tok&#34;en"`)
}

func TestDashboard_CredentialRows(t *testing.T) {
	rows := []vm.CredentialRowViewModel{
		{ID: "1", Website: "Gmail", Password: "••••••••", ToggleURL: "/?show=1",
			DeleteURL: "/credentials/1/delete", StrengthLabel: "Strong", StrengthColor: "success"},
		{ID: "2", Website: "Bank", Password: "hunter2", Revealed: true, ToggleURL: "/",
			DeleteURL: "/credentials/2/delete", StrengthLabel: "Weak", StrengthColor: "destructive"},
	}

	html := renderString(t, Dashboard(vm.DashboardViewModel{Credentials: rows}))

	assert.Contains(t, html, "Saved Passwords (2)")
	assert.NotContains(t, html, "No passwords saved yet")
	assert.Contains(t, html, `id="credential-1"`)
	assert.Contains(t, html, `<a href="/?show=1">Show</a>`)
	assert.Contains(t, html, `<a href="/">Hide</a>`)
	assert.Contains(t, html, `action="/credentials/2/delete"`)
	assert.Contains(t, html, `<span class="badge badge-success">Strong</span>`)
}

func TestDashboard_Notice(t *testing.T) {
	plain := renderString(t, Dashboard(vm.DashboardViewModel{
		Notice: &vm.NoticeViewModel{Title: "Password saved", Description: "done"},
	}))
	assert.Contains(t, plain, `<div class="notice" role="status"><strong>Password saved</strong>`)

	failed := renderString(t, Dashboard(vm.DashboardViewModel{
		Notice: &vm.NoticeViewModel{Title: "Missing fields", IsError: true},
	}))
	assert.Contains(t, failed, `class="notice notice-destructive"`)

	none := renderString(t, Dashboard(vm.DashboardViewModel{}))
	assert.NotContains(t, none, `role="status"`)
}

func TestTips_RendersTrustedHTML(t *testing.T) {
	html := renderString(t, Tips(vm.TipsViewModel{BodyHTML: "<h1>Tips</h1>"}))
	assert.Equal(t, `<article class="card prose"><h1>Tips</h1></article>`, html)
}
