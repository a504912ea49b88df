package service

import (
	"context"
	"errors"
	"testing"

	"chat-space-be/internal/dto"
	"chat-space-be/internal/entity"
	"chat-space-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListContactsExcludesCallerAndSortsByName(t *testing.T) {
	store := memory.NewStore()
	// Seeded out of alphabetical order.
	seedProfile(store, "Carol Reyes", "carol@example.com", entity.ProfileRoleUser)
	alice := seedProfile(store, "Alice Carter", "alice@example.com", entity.ProfileRoleUser)
	seedProfile(store, "Bob Nguyen", "bob@example.com", entity.ProfileRoleUser)

	svc := NewUserService(memory.NewFactory(store))

	res, err := svc.ListContacts(context.Background(), alice.Id)
	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "Bob Nguyen", res[0].FullName)
	assert.Equal(t, "Carol Reyes", res[1].FullName)
	for _, contact := range res {
		assert.NotEqual(t, alice.Id, contact.Id)
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	store := memory.NewStore()
	svc := NewUserService(memory.NewFactory(store))

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateProfile(t *testing.T) {
	store := memory.NewStore()
	alice := seedProfile(store, "Alice Carter", "alice@example.com", entity.ProfileRoleUser)

	svc := NewUserService(memory.NewFactory(store))

	err := svc.UpdateProfile(context.Background(), alice.Id, &dto.UpdateProfileRequest{
		FullName:  "Alice B. Carter",
		AvatarURL: "https://example.com/avatar.png",
	})
	assert.NoError(t, err)

	updated := store.Profiles()[0]
	assert.Equal(t, "Alice B. Carter", updated.FullName)
	assert.NotNil(t, updated.AvatarURL)
	assert.Equal(t, "https://example.com/avatar.png", *updated.AvatarURL)
}
