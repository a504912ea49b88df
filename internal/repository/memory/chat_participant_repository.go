package memory

import (
	"context"
	"time"

	"chat-space-be/internal/entity"
	"chat-space-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatParticipantRepository struct {
	store *Store
}

func (r *ChatParticipantRepository) CreateBatch(ctx context.Context, participants []*entity.ChatParticipant) error {
	if r.store.ForcedErr != nil {
		return r.store.ForcedErr
	}
	for _, p := range participants {
		r.store.AddParticipant(p)
	}
	return nil
}

func (r *ChatParticipantRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatParticipant, error) {
	results, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *ChatParticipantRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatParticipant, error) {
	if r.store.ForcedErr != nil {
		return nil, r.store.ForcedErr
	}
	filters, order := splitSpecs(specs)

	var results []*entity.ChatParticipant
	for _, p := range r.store.Participants() {
		if matchParticipant(p, filters) {
			results = append(results, p)
		}
	}
	if order != nil {
		sortByCreatedAt(results, func(p *entity.ChatParticipant) time.Time { return p.CreatedAt }, order.Desc)
	}
	return results, nil
}

func (r *ChatParticipantRepository) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	if r.store.ForcedErr != nil {
		return r.store.ForcedErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.participants[:0]
	for _, p := range r.store.participants {
		if p.UserId != userId {
			kept = append(kept, p)
		}
	}
	r.store.participants = kept
	return nil
}

func (r *ChatParticipantRepository) FindAllForUser(ctx context.Context, userId uuid.UUID) ([]*entity.ChatParticipant, error) {
	if r.store.ForcedErr != nil {
		return nil, r.store.ForcedErr
	}
	chats := r.store.Chats()
	byId := make(map[uuid.UUID]*entity.Chat, len(chats))
	for _, c := range chats {
		byId[c.Id] = c
	}

	var results []*entity.ChatParticipant
	for _, p := range r.store.Participants() {
		if p.UserId != userId {
			continue
		}
		row := *p
		row.Chat = byId[p.ChatId]
		results = append(results, &row)
	}
	return results, nil
}

func (r *ChatParticipantRepository) FindProfilesByChat(ctx context.Context, chatId uuid.UUID) ([]*entity.Profile, error) {
	if r.store.ForcedErr != nil {
		return nil, r.store.ForcedErr
	}
	profiles := r.store.Profiles()
	byId := make(map[uuid.UUID]*entity.Profile, len(profiles))
	for _, p := range profiles {
		byId[p.Id] = p
	}

	var results []*entity.Profile
	for _, part := range r.store.Participants() {
		if part.ChatId != chatId {
			continue
		}
		if profile, ok := byId[part.UserId]; ok {
			results = append(results, profile)
		}
	}
	return results, nil
}

func matchParticipant(p *entity.ChatParticipant, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.ByChatID:
			if p.ChatId != s.ChatID {
				return false
			}
		case specification.ByUserID:
			if p.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}
