package dto

import (
	"time"

	"chat-space-be/internal/entity"

	"github.com/google/uuid"
)

type MessageResponse struct {
	Id        uuid.UUID        `json:"id"`
	Content   string           `json:"content"`
	SenderId  uuid.UUID        `json:"sender_id"`
	ChatId    uuid.UUID        `json:"chat_id"`
	Images    []string         `json:"images,omitempty"`
	AiCaption string           `json:"ai_caption,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	Sender    *ProfileResponse `json:"sender,omitempty"`
}

func NewMessageResponse(m *entity.Message) MessageResponse {
	res := MessageResponse{
		Id:        m.Id,
		Content:   m.Content,
		SenderId:  m.SenderId,
		ChatId:    m.ChatId,
		Images:    m.Images,
		CreatedAt: m.CreatedAt,
	}
	if m.AiCaption != nil {
		res.AiCaption = *m.AiCaption
	}
	if m.Sender != nil {
		sender := NewProfileResponse(m.Sender)
		res.Sender = &sender
	}
	return res
}

type SendMessageRequest struct {
	ChatId  uuid.UUID `json:"chat_id" validate:"required"`
	Content string    `json:"content"`
	Images  []string  `json:"images" validate:"omitempty,max=10"`
}
