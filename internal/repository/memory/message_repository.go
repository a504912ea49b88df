package memory

import (
	"context"
	"time"

	"chat-space-be/internal/entity"
	"chat-space-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MessageRepository struct {
	store *Store
}

func (r *MessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if r.store.ForcedErr != nil {
		return r.store.ForcedErr
	}
	r.store.AddMessage(message)
	return nil
}

func (r *MessageRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error) {
	results, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *MessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	if r.store.ForcedErr != nil {
		return nil, r.store.ForcedErr
	}
	filters, order := splitSpecs(specs)

	withSender := false
	for _, spec := range filters {
		if _, ok := spec.(specification.WithSender); ok {
			withSender = true
		}
	}

	var results []*entity.Message
	for _, m := range r.store.Messages() {
		if matchMessage(m, filters) {
			row := *m
			if withSender {
				row.Sender = r.findProfile(m.SenderId)
			}
			results = append(results, &row)
		}
	}
	if order != nil {
		sortByCreatedAt(results, func(m *entity.Message) time.Time { return m.CreatedAt }, order.Desc)
	}
	return results, nil
}

func (r *MessageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	results, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(results)), nil
}

func (r *MessageRepository) DeleteAllBySenderId(ctx context.Context, senderId uuid.UUID) error {
	if r.store.ForcedErr != nil {
		return r.store.ForcedErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.messages[:0]
	for _, m := range r.store.messages {
		if m.SenderId != senderId {
			kept = append(kept, m)
		}
	}
	r.store.messages = kept
	return nil
}

func (r *MessageRepository) findProfile(id uuid.UUID) *entity.Profile {
	for _, p := range r.store.Profiles() {
		if p.Id == id {
			return p
		}
	}
	return nil
}

func matchMessage(m *entity.Message, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if m.Id != s.ID {
				return false
			}
		case specification.ByChatID:
			if m.ChatId != s.ChatID {
				return false
			}
		}
	}
	return true
}
