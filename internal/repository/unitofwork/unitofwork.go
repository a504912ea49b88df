package unitofwork

import (
	"context"

	"chat-space-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProfileRepository() contract.ProfileRepository
	ChatRepository() contract.ChatRepository
	ChatParticipantRepository() contract.ChatParticipantRepository
	MessageRepository() contract.MessageRepository
}
