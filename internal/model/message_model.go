package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Message struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content   string         `gorm:"type:text;not null"`
	SenderId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	ChatId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Images    datatypes.JSON `gorm:"type:jsonb"`
	AiCaption *string        `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`

	Sender *Profile `gorm:"foreignKey:SenderId"`
}

func (Message) TableName() string {
	return "messages"
}
