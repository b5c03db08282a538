package domain

import "time"

// Preference holds per-user UI preferences persisted across devices.
// The zero value of each field means "not set"; clients fall back to their
// own defaults.
type Preference struct {
	OwnerID   string    `json:"-"`
	UserName  string    `json:"userName,omitempty"`
	Language  string    `json:"language,omitempty"`
	Theme     string    `json:"theme,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}
