package model

import (
	"time"

	"github.com/google/uuid"
)

type Chat struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      *string   `gorm:"type:varchar(255)"`
	Type      string    `gorm:"type:varchar(50);not null;default:'personal'"`
	AvatarURL *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Chat) TableName() string {
	return "chats"
}

type ChatParticipant struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatId    uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_participants_chat_user,unique"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_participants_chat_user,unique;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Chat *Chat `gorm:"foreignKey:ChatId"`
}

func (ChatParticipant) TableName() string {
	return "chat_participants"
}
