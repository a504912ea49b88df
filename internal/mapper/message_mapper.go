package mapper

import (
	"encoding/json"

	"chat-space-be/internal/entity"
	"chat-space-be/internal/model"

	"gorm.io/datatypes"
)

type MessageMapper struct {
	profileMapper *ProfileMapper
}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{
		profileMapper: NewProfileMapper(),
	}
}

func (m *MessageMapper) ToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	var images []string
	if len(msg.Images) > 0 {
		// A malformed column yields no images rather than a load failure.
		_ = json.Unmarshal(msg.Images, &images)
	}
	return &entity.Message{
		Id:        msg.Id,
		Content:   msg.Content,
		SenderId:  msg.SenderId,
		ChatId:    msg.ChatId,
		Images:    images,
		AiCaption: msg.AiCaption,
		CreatedAt: msg.CreatedAt,
		Sender:    m.profileMapper.ToEntity(msg.Sender),
	}
}

func (m *MessageMapper) ToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	var images datatypes.JSON
	if len(msg.Images) > 0 {
		raw, err := json.Marshal(msg.Images)
		if err == nil {
			images = raw
		}
	}
	return &model.Message{
		Id:        msg.Id,
		Content:   msg.Content,
		SenderId:  msg.SenderId,
		ChatId:    msg.ChatId,
		Images:    images,
		AiCaption: msg.AiCaption,
		CreatedAt: msg.CreatedAt,
	}
}
