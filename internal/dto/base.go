package dto

import "time"

// Meta carries the identity and audit fields shared by every response body.
type Meta struct {
	ID         uint      `json:"id"`
	DocumentID string    `json:"documentId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DateLayout is the wire format for date-only fields (stage windows,
// birth dates).
const DateLayout = "2006-01-02"
