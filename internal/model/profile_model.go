package model

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	AvatarURL    *string   `gorm:"type:text"`
	Role         string    `gorm:"type:varchar(50);not null;default:'user'"`
	Status       string    `gorm:"type:varchar(50);not null;default:'offline'"`
	LastSeen     time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
