package model

import "fmt"

// StrengthLevel is the coarse password strength classification shown to the user.
// It is a closed set: every consumer switches over all four constants.
type StrengthLevel string

const (
	StrengthWeak       StrengthLevel = "weak"
	StrengthMedium     StrengthLevel = "medium"
	StrengthStrong     StrengthLevel = "strong"
	StrengthVeryStrong StrengthLevel = "very-strong"
)

// Valid reports whether l is one of the four defined levels.
func (l StrengthLevel) Valid() bool {
	switch l {
	case StrengthWeak, StrengthMedium, StrengthStrong, StrengthVeryStrong:
		return true
	}
	return false
}

// Label returns the human-readable name of the level.
func (l StrengthLevel) Label() string {
	switch l {
	case StrengthWeak:
		return "Weak"
	case StrengthMedium:
		return "Medium"
	case StrengthStrong:
		return "Strong"
	case StrengthVeryStrong:
		return "Very Strong"
	}
	return ""
}

// Bars returns how many of the four meter segments are filled for the level, 1 to 4.
// Unknown levels fill none.
func (l StrengthLevel) Bars() int {
	switch l {
	case StrengthWeak:
		return 1
	case StrengthMedium:
		return 2
	case StrengthStrong:
		return 3
	case StrengthVeryStrong:
		return 4
	}
	return 0
}

// Color returns the CSS modifier used for the meter and badges.
func (l StrengthLevel) Color() string {
	switch l {
	case StrengthWeak:
		return "destructive"
	case StrengthMedium:
		return "warning"
	case StrengthStrong:
		return "success"
	case StrengthVeryStrong:
		return "accent"
	}
	return "muted"
}

// UnmarshalText rejects anything outside the four defined levels.
func (l *StrengthLevel) UnmarshalText(text []byte) error {
	v := StrengthLevel(text)
	if !v.Valid() {
		return &InvalidStrengthLevelError{Value: string(text)}
	}
	*l = v
	return nil
}

// InvalidStrengthLevelError is returned when decoding an unknown strength level.
type InvalidStrengthLevelError struct {
	Value string
}

func (e *InvalidStrengthLevelError) Error() string {
	return fmt.Sprintf("invalid strength level %q", e.Value)
}
