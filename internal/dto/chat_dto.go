package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatResponse struct {
	Id              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Type            string            `json:"type"`
	AvatarURL       string            `json:"avatar_url,omitempty"`
	Participants    []ProfileResponse `json:"participants"`
	LastMessage     string            `json:"last_message"`
	LastMessageTime time.Time         `json:"last_message_time"`
	UnreadCount     int               `json:"unread_count"`
	CreatedAt       time.Time         `json:"created_at"`
}

type CreateChatRequest struct {
	Name         string      `json:"name" validate:"omitempty,min=1,max=255"`
	Type         string      `json:"type" validate:"required,oneof=personal group"`
	Participants []uuid.UUID `json:"participants" validate:"required,min=1"`
}
