package contract

import (
	"context"

	"chat-space-be/internal/entity"
	"chat-space-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatParticipantRepository interface {
	CreateBatch(ctx context.Context, participants []*entity.ChatParticipant) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatParticipant, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatParticipant, error)
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error

	// FindAllForUser returns the user's participant rows with the parent chat loaded.
	FindAllForUser(ctx context.Context, userId uuid.UUID) ([]*entity.ChatParticipant, error)

	// FindProfilesByChat resolves the profiles of every participant in a chat.
	FindProfilesByChat(ctx context.Context, chatId uuid.UUID) ([]*entity.Profile, error)
}
