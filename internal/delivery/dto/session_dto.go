package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSessionRequest struct {
	Location string `json:"location" validate:"omitempty,max=2048"` // Landing location, e.g. "/?search=ali"
}

// Response DTOs

type SessionResponse struct {
	ID           uuid.UUID            `json:"id"`
	Location     string               `json:"location"`
	CanGoBack    bool                 `json:"can_go_back"`
	CanGoForward bool                 `json:"can_go_forward"`
	Directory    DirectoryResponse    `json:"directory"`
	Suggestions  []SuggestionResponse `json:"suggestions"`
	UpdatedAt    time.Time            `json:"updated_at"`
}
