package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatType string

const (
	ChatTypePersonal ChatType = "personal"
	ChatTypeGroup    ChatType = "group"
)

type Chat struct {
	Id        uuid.UUID
	Name      *string // stored for group chats, nil for personal
	Type      ChatType
	AvatarURL *string
	CreatedAt time.Time
}

// ChatParticipant is the join row binding a profile to a chat. Its presence
// authorizes the user's access to the chat's messages.
type ChatParticipant struct {
	Id        uuid.UUID
	ChatId    uuid.UUID
	UserId    uuid.UUID
	CreatedAt time.Time

	// Populated when loaded with the parent chat.
	Chat *Chat
}
