// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// StrengthMeterViewModel holds presentation-ready data for the strength meter.
type StrengthMeterViewModel struct {
	Visible  bool // false while the checker input is empty
	Level    string
	Label    string
	Color    string
	Bars     int // filled segments out of 4
	Score    int
	Feedback []string
}

// CredentialRowViewModel holds presentation-ready data for one saved credential.
type CredentialRowViewModel struct {
	ID            string
	Website       string
	Username      string
	Password      string // masked unless Revealed
	Revealed      bool
	ToggleURL     string // GET target that flips Revealed for this row
	DeleteURL     string // POST target for deletion
	StrengthLabel string
	StrengthColor string
	CreatedAt     string
}

// NoticeViewModel is a one-shot flash message shown above the forms.
type NoticeViewModel struct {
	Title       string
	Description string
	IsError     bool
}

// DashboardViewModel holds everything the dashboard page renders.
type DashboardViewModel struct {
	CSRFToken   string
	Meter       StrengthMeterViewModel
	Notice      *NoticeViewModel
	Website     string // form value kept after a failed save
	Username    string // form value kept after a failed save
	Credentials []CredentialRowViewModel
}

// TipsViewModel holds the rendered password guidance page.
type TipsViewModel struct {
	BodyHTML string
}
