package models

import "time"

// Preference mirrors the user_preferences table (one row per user).
type Preference struct {
	OwnerID   string    `db:"owner_id"`
	UserName  string    `db:"user_name"`
	Language  string    `db:"language"`
	Theme     string    `db:"theme"`
	UpdatedAt time.Time `db:"updated_at"`
}
