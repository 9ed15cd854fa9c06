package model

// StrengthResult is the outcome of evaluating a single password. It is a
// transient value computed on every call and never persisted as a whole.
type StrengthResult struct {
	Score    int           // clamped to >= 0
	Level    StrengthLevel // classified from the unclamped score
	Feedback []string      // ordered improvement suggestions; empty when nothing to improve
}
