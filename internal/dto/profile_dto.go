package dto

import (
	"time"

	"chat-space-be/internal/entity"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	Id        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	LastSeen  time.Time `json:"last_seen"`
	CreatedAt time.Time `json:"created_at"`
}

func NewProfileResponse(p *entity.Profile) ProfileResponse {
	res := ProfileResponse{
		Id:        p.Id,
		FullName:  p.FullName,
		Email:     p.Email,
		Role:      string(p.Role),
		Status:    string(p.Status),
		LastSeen:  p.LastSeen,
		CreatedAt: p.CreatedAt,
	}
	if p.AvatarURL != nil {
		res.AvatarURL = *p.AvatarURL
	}
	return res
}

type UpdateProfileRequest struct {
	FullName  string `json:"full_name" validate:"required,min=3"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}
