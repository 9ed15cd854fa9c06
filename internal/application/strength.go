package application

import (
	"regexp"
	"unicode/utf8"

	"github.com/Aman-pandey-5909/shield-my-keys/internal/domain/model"
)

// Feedback messages, in the order EvaluateStrength emits them.
const (
	FeedbackRequired   = "Password is required"
	FeedbackMinLength  = "Use at least 8 characters"
	FeedbackLowercase  = "Add lowercase letters"
	FeedbackUppercase  = "Add uppercase letters"
	FeedbackNumbers    = "Add numbers"
	FeedbackSpecial    = "Add special characters"
	FeedbackRepetition = "Avoid repeated characters"
)

const (
	minLength    = 8
	goodLength   = 12
	strongLength = 16

	// repeatRunLength is the shortest run of one character that is penalized.
	repeatRunLength = 3
)

var (
	lowercasePattern  = regexp.MustCompile(`[a-z]`)
	uppercasePattern  = regexp.MustCompile(`[A-Z]`)
	digitPattern      = regexp.MustCompile(`[0-9]`)
	specialPattern    = regexp.MustCompile(`[^a-zA-Z0-9]`)
	allDigitsPattern  = regexp.MustCompile(`^[0-9]+$`)
	allLettersPattern = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// EvaluateStrength scores password with the additive heuristic and returns the
// score, level and ordered feedback. It is pure and safe for concurrent use.
// The empty password short-circuits to weak with a single "required" message.
func EvaluateStrength(password string) model.StrengthResult {
	if password == "" {
		return model.StrengthResult{
			Score:    0,
			Level:    model.StrengthWeak,
			Feedback: []string{FeedbackRequired},
		}
	}

	raw := strengthScore(password)

	// Classify on the signed score, then clamp for display.
	return model.StrengthResult{
		Score:    max(0, raw),
		Level:    ClassifyScore(raw),
		Feedback: strengthFeedback(password),
	}
}

// ClassifyScore maps a raw (possibly negative) score to its strength level.
func ClassifyScore(score int) model.StrengthLevel {
	switch {
	case score >= 7:
		return model.StrengthVeryStrong
	case score >= 5:
		return model.StrengthStrong
	case score >= 3:
		return model.StrengthMedium
	default:
		return model.StrengthWeak
	}
}

// strengthScore returns the signed score for a non-empty password.
func strengthScore(password string) int {
	score := 0

	length := utf8.RuneCountInString(password)
	if length >= minLength {
		score++
	}
	if length >= goodLength {
		score++
	}
	if length >= strongLength {
		score++
	}

	if lowercasePattern.MatchString(password) {
		score++
	}
	if uppercasePattern.MatchString(password) {
		score++
	}
	if digitPattern.MatchString(password) {
		score++
	}
	if specialPattern.MatchString(password) {
		score++
	}

	if hasRepeatedRun(password, repeatRunLength) {
		score--
	}

	// The two patterns cannot both match, so this is at most one point.
	if allDigitsPattern.MatchString(password) || allLettersPattern.MatchString(password) {
		score--
	}

	return score
}

// strengthFeedback returns the improvement suggestions for a non-empty password.
func strengthFeedback(password string) []string {
	feedback := make([]string, 0, 6)

	if utf8.RuneCountInString(password) < minLength {
		feedback = append(feedback, FeedbackMinLength)
	}
	if !lowercasePattern.MatchString(password) {
		feedback = append(feedback, FeedbackLowercase)
	}
	if !uppercasePattern.MatchString(password) {
		feedback = append(feedback, FeedbackUppercase)
	}
	if !digitPattern.MatchString(password) {
		feedback = append(feedback, FeedbackNumbers)
	}
	if !specialPattern.MatchString(password) {
		feedback = append(feedback, FeedbackSpecial)
	}
	if hasRepeatedRun(password, repeatRunLength) {
		feedback = append(feedback, FeedbackRepetition)
	}

	return feedback
}

// hasRepeatedRun reports whether s contains n or more consecutive copies of
// the same character. Characters are compared by their encoded bytes, so
// distinct invalid UTF-8 bytes never form a run. RE2 has no backreferences,
// so this is a linear scan.
func hasRepeatedRun(s string, n int) bool {
	prev := ""
	run := 0
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		cur := s[i : i+size]
		if cur == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = cur
		i += size
	}
	return false
}
