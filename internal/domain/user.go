package domain

import "time"

// User represents a registered candidate account.
// PasswordHash stays out of every serialized representation; handlers build
// explicit response maps instead of encoding this struct.
type User struct {
	ID              string
	Name            string
	Email           string
	TargetRole      string
	ExperienceLevel string
	PasswordHash    []byte
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
