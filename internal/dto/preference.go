package dto

import (
	"time"

	"github.com/smart-ledger/ledger-backend/internal/core/domain"
)

// SavePreferenceRequest replaces the caller's stored preferences wholesale.
type SavePreferenceRequest struct {
	UserName string `json:"userName"`
	Language string `json:"language"`
	Theme    string `json:"theme" binding:"omitempty,oneof=light dark"`
}

// PreferenceResponse defines the data returned for user preferences.
type PreferenceResponse struct {
	UserName  string    `json:"userName,omitempty"`
	Language  string    `json:"language,omitempty"`
	Theme     string    `json:"theme,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToPreferenceResponse converts a domain.Preference to PreferenceResponse DTO
func ToPreferenceResponse(pref *domain.Preference) PreferenceResponse {
	return PreferenceResponse{
		UserName:  pref.UserName,
		Language:  pref.Language,
		Theme:     pref.Theme,
		UpdatedAt: pref.UpdatedAt,
	}
}
