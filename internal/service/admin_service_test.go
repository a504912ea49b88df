package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"chat-space-be/internal/entity"
	"chat-space-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetAllUsersNewestFirst(t *testing.T) {
	store := memory.NewStore()
	older := seedProfile(store, "Older User", "older@example.com", entity.ProfileRoleUser)
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := seedProfile(store, "Newer User", "newer@example.com", entity.ProfileRoleUser)
	newer.CreatedAt = time.Now()

	svc := NewAdminService(memory.NewFactory(store), noopLogger{})

	res, err := svc.GetAllUsers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "Newer User", res[0].FullName)
	assert.Equal(t, "Older User", res[1].FullName)
}

func TestGetStatsCountsEverything(t *testing.T) {
	store := memory.NewStore()
	admin := seedProfile(store, "Admin", "admin@example.com", entity.ProfileRoleAdmin)
	admin.Status = entity.ProfileStatusOnline
	alice := seedProfile(store, "Alice Carter", "alice@example.com", entity.ProfileRoleUser)
	alice.Status = entity.ProfileStatusOnline
	bob := seedProfile(store, "Bob Nguyen", "bob@example.com", entity.ProfileRoleUser)

	personal := seedChat(store, nil, entity.ChatTypePersonal, time.Now(), alice, bob)
	groupName := "General"
	seedChat(store, &groupName, entity.ChatTypeGroup, time.Now(), admin, alice, bob)

	seedMessage(store, personal, alice, "hi", time.Now())
	seedMessage(store, personal, bob, "hello", time.Now())

	svc := NewAdminService(memory.NewFactory(store), noopLogger{})

	stats, err := svc.GetStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 2, stats.OnlineUsers)
	assert.Equal(t, 1, stats.AdminUsers)
	assert.Equal(t, 2, stats.TotalChats)
	assert.Equal(t, 1, stats.PersonalChats)
	assert.Equal(t, 1, stats.GroupChats)
	assert.Equal(t, 2, stats.TotalMessages)
}

func TestUpdateUserRole(t *testing.T) {
	store := memory.NewStore()
	alice := seedProfile(store, "Alice Carter", "alice@example.com", entity.ProfileRoleUser)

	svc := NewAdminService(memory.NewFactory(store), noopLogger{})

	assert.NoError(t, svc.UpdateUserRole(context.Background(), alice.Id, "admin"))
	assert.Equal(t, entity.ProfileRoleAdmin, store.Profiles()[0].Role)

	err := svc.UpdateUserRole(context.Background(), uuid.New(), "admin")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteUserCascadesCompletely(t *testing.T) {
	store := memory.NewStore()
	alice := seedProfile(store, "Alice Carter", "alice@example.com", entity.ProfileRoleUser)
	bob := seedProfile(store, "Bob Nguyen", "bob@example.com", entity.ProfileRoleUser)
	chat := seedChat(store, nil, entity.ChatTypePersonal, time.Now(), alice, bob)
	seedMessage(store, chat, alice, "mine", time.Now())
	kept := seedMessage(store, chat, bob, "bobs", time.Now())

	svc := NewAdminService(memory.NewFactory(store), noopLogger{})

	assert.NoError(t, svc.DeleteUser(context.Background(), alice.Id))

	// Alice's messages, participant rows and profile are gone; Bob's remain.
	messages := store.Messages()
	assert.Len(t, messages, 1)
	assert.Equal(t, kept.Id, messages[0].Id)

	for _, part := range store.Participants() {
		assert.NotEqual(t, alice.Id, part.UserId)
	}
	assert.Len(t, store.Profiles(), 1)
	assert.Equal(t, bob.Id, store.Profiles()[0].Id)

	// The chat row itself is not part of the cascade.
	assert.Len(t, store.Chats(), 1)
}

func TestDeleteUserUnknownUser(t *testing.T) {
	store := memory.NewStore()
	svc := NewAdminService(memory.NewFactory(store), noopLogger{})

	err := svc.DeleteUser(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, ErrNotFound))
}
