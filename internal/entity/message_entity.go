package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is append-only: rows are never edited, and only the admin
// user-deletion cascade removes them.
type Message struct {
	Id        uuid.UUID
	Content   string
	SenderId  uuid.UUID
	ChatId    uuid.UUID
	Images    []string // transient client-side references, nothing is uploaded
	AiCaption *string
	CreatedAt time.Time

	// Populated when loaded joined with the sender profile.
	Sender *Profile
}
