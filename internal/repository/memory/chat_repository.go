package memory

import (
	"context"
	"time"

	"chat-space-be/internal/entity"
	"chat-space-be/internal/repository/specification"
)

type ChatRepository struct {
	store *Store
}

func (r *ChatRepository) Create(ctx context.Context, chat *entity.Chat) error {
	if r.store.ForcedErr != nil {
		return r.store.ForcedErr
	}
	r.store.AddChat(chat)
	return nil
}

func (r *ChatRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error) {
	results, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *ChatRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error) {
	if r.store.ForcedErr != nil {
		return nil, r.store.ForcedErr
	}
	filters, order := splitSpecs(specs)

	var results []*entity.Chat
	for _, c := range r.store.Chats() {
		if matchChat(c, filters) {
			results = append(results, c)
		}
	}
	if order != nil {
		sortByCreatedAt(results, func(c *entity.Chat) time.Time { return c.CreatedAt }, order.Desc)
	}
	return results, nil
}

func (r *ChatRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	results, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(results)), nil
}

func matchChat(c *entity.Chat, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if c.Id != s.ID {
				return false
			}
		}
	}
	return true
}
