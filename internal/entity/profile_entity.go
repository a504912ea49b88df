package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProfileRole string
type ProfileStatus string

const (
	ProfileRoleUser  ProfileRole = "user"
	ProfileRoleAdmin ProfileRole = "admin"

	ProfileStatusOnline  ProfileStatus = "online"
	ProfileStatusOffline ProfileStatus = "offline"
)

type Profile struct {
	Id           uuid.UUID
	FullName     string
	Email        string
	PasswordHash *string
	AvatarURL    *string
	Role         ProfileRole
	Status       ProfileStatus
	LastSeen     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p *Profile) IsAdmin() bool {
	return p.Role == ProfileRoleAdmin
}
