package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Aman-pandey-5909/shield-my-keys/internal/domain/model"
)

func TestParseRevealed(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a,b", []string{"a", "b"}},
		{" a , ,b,a ", []string{"a", "b"}},
		{",", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseRevealed(tt.raw), "raw %q", tt.raw)
	}
}

func TestToggleRevealURL(t *testing.T) {
	assert.Equal(t, "/?show=a", toggleRevealURL(nil, "a"))
	assert.Equal(t, "/", toggleRevealURL([]string{"a"}, "a"))
	assert.Equal(t, "/?show=a%2Cb", toggleRevealURL([]string{"a"}, "b"))
	assert.Equal(t, "/?show=b", toggleRevealURL([]string{"a", "b"}, "a"))
}

func TestToggleRevealURL_DoesNotMutateInput(t *testing.T) {
	revealed := []string{"a", "b"}
	toggleRevealURL(revealed, "a")
	assert.Equal(t, []string{"a", "b"}, revealed)
}

func TestToCredentialRowViewModels(t *testing.T) {
	records := []model.CredentialRecord{
		{ID: "1", Website: "Gmail", Username: "u", Password: "secret", Strength: model.StrengthVeryStrong,
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		{ID: "2", Website: "Bank", Username: "v", Password: "hunter2", Strength: model.StrengthWeak},
	}

	rows := toCredentialRowViewModels(records, []string{"2"})

	assert.Len(t, rows, 2)
	assert.Equal(t, maskedPassword, rows[0].Password)
	assert.False(t, rows[0].Revealed)
	assert.Equal(t, "Very Strong", rows[0].StrengthLabel)
	assert.Equal(t, "accent", rows[0].StrengthColor)
	assert.Equal(t, "2026-01-02T03:04:05Z", rows[0].CreatedAt)
	assert.Equal(t, "/credentials/1/delete", rows[0].DeleteURL)
	assert.Equal(t, "/?show=2%2C1", rows[0].ToggleURL)

	assert.Equal(t, "hunter2", rows[1].Password)
	assert.True(t, rows[1].Revealed)
	assert.Equal(t, "/", rows[1].ToggleURL)
	assert.Equal(t, "destructive", rows[1].StrengthColor)
}

func TestToStrengthMeterViewModel(t *testing.T) {
	m := toStrengthMeterViewModel(model.StrengthResult{Score: 5, Level: model.StrengthStrong}, true)

	assert.True(t, m.Visible)
	assert.Equal(t, "strong", m.Level)
	assert.Equal(t, "Strong", m.Label)
	assert.Equal(t, "success", m.Color)
	assert.Equal(t, 3, m.Bars)
	assert.NotNil(t, m.Feedback)
}

func TestNoticeFor(t *testing.T) {
	assert.Nil(t, noticeFor("", ""))
	assert.Nil(t, noticeFor("bogus", "x"))

	saved := noticeFor("saved", "Gmail")
	assert.Equal(t, "Password saved", saved.Title)
	assert.Equal(t, "Password for Gmail has been saved", saved.Description)
	assert.False(t, saved.IsError)

	assert.Equal(t, "Password has been saved", noticeFor("saved", "").Description)
	assert.Equal(t, "Password has been removed", noticeFor("deleted", "").Description)
}
