package contract

import (
	"context"

	"chat-space-be/internal/entity"
	"chat-space-be/internal/repository/specification"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
