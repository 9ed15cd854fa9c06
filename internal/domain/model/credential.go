package model

import "time"

// CredentialRecord is a saved website/username/password triple. Strength is a
// snapshot taken when the record was saved and is never recomputed afterwards.
type CredentialRecord struct {
	ID        string        `json:"id"`
	Website   string        `json:"website"`
	Username  string        `json:"username"`
	Password  string        `json:"password"`
	Strength  StrengthLevel `json:"strength"`
	CreatedAt time.Time     `json:"createdAt"`
}
