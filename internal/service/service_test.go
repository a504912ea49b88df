package service

import (
	"time"

	"chat-space-be/internal/entity"
	"chat-space-be/internal/pkg/logger"
	"chat-space-be/internal/repository/memory"

	"github.com/google/uuid"
)

// noopLogger satisfies ILogger without touching the filesystem.
type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
func (noopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return []logger.LogEntry{}, nil
}

func seedProfile(store *memory.Store, fullName, email string, role entity.ProfileRole) *entity.Profile {
	p := &entity.Profile{
		Id:        uuid.New(),
		FullName:  fullName,
		Email:     email,
		Role:      role,
		Status:    entity.ProfileStatusOffline,
		LastSeen:  time.Now(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	store.AddProfile(p)
	return p
}

func seedChat(store *memory.Store, name *string, chatType entity.ChatType, createdAt time.Time, members ...*entity.Profile) *entity.Chat {
	c := &entity.Chat{
		Id:        uuid.New(),
		Name:      name,
		Type:      chatType,
		CreatedAt: createdAt,
	}
	store.AddChat(c)
	for _, m := range members {
		store.AddParticipant(&entity.ChatParticipant{
			Id:        uuid.New(),
			ChatId:    c.Id,
			UserId:    m.Id,
			CreatedAt: createdAt,
		})
	}
	return c
}

func seedMessage(store *memory.Store, chat *entity.Chat, sender *entity.Profile, content string, createdAt time.Time) *entity.Message {
	m := &entity.Message{
		Id:        uuid.New(),
		Content:   content,
		SenderId:  sender.Id,
		ChatId:    chat.Id,
		CreatedAt: createdAt,
	}
	store.AddMessage(m)
	return m
}
