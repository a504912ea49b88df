package mapper

import (
	"chat-space-be/internal/entity"
	"chat-space-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(c *model.Chat) *entity.Chat {
	if c == nil {
		return nil
	}
	return &entity.Chat{
		Id:        c.Id,
		Name:      c.Name,
		Type:      entity.ChatType(c.Type),
		AvatarURL: c.AvatarURL,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatMapper) ToModel(c *entity.Chat) *model.Chat {
	if c == nil {
		return nil
	}
	return &model.Chat{
		Id:        c.Id,
		Name:      c.Name,
		Type:      string(c.Type),
		AvatarURL: c.AvatarURL,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatMapper) ParticipantToEntity(p *model.ChatParticipant) *entity.ChatParticipant {
	if p == nil {
		return nil
	}
	return &entity.ChatParticipant{
		Id:        p.Id,
		ChatId:    p.ChatId,
		UserId:    p.UserId,
		CreatedAt: p.CreatedAt,
		Chat:      m.ToEntity(p.Chat),
	}
}

func (m *ChatMapper) ParticipantToModel(p *entity.ChatParticipant) *model.ChatParticipant {
	if p == nil {
		return nil
	}
	return &model.ChatParticipant{
		Id:        p.Id,
		ChatId:    p.ChatId,
		UserId:    p.UserId,
		CreatedAt: p.CreatedAt,
	}
}
