package mapper

import (
	"chat-space-be/internal/entity"
	"chat-space-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		Id:           p.Id,
		FullName:     p.FullName,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		AvatarURL:    p.AvatarURL,
		Role:         entity.ProfileRole(p.Role),
		Status:       entity.ProfileStatus(p.Status),
		LastSeen:     p.LastSeen,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}
	return &model.Profile{
		Id:           p.Id,
		FullName:     p.FullName,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		AvatarURL:    p.AvatarURL,
		Role:         string(p.Role),
		Status:       string(p.Status),
		LastSeen:     p.LastSeen,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToEntities(profiles []*model.Profile) []*entity.Profile {
	entities := make([]*entity.Profile, len(profiles))
	for i, p := range profiles {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
