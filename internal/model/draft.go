package model

import "time"

// Draft is a not-yet-persisted form being edited. Each authoring session owns
// exactly one draft; there is no shared mutable draft across sessions.
type Draft struct {
	ID        string    `json:"draftId"`
	Form      Form      `json:"form"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
