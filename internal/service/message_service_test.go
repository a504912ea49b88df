package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"chat-space-be/internal/dto"
	"chat-space-be/internal/entity"
	"chat-space-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

type stubCaptioner struct {
	text string
	err  error
}

func (s stubCaptioner) Caption(ctx context.Context, image string) (string, error) {
	return s.text, s.err
}

func TestListMessagesReturnsThreadOldestFirst(t *testing.T) {
	store := memory.NewStore()
	alice := seedProfile(store, "Alice Carter", "alice@example.com", entity.ProfileRoleUser)
	bob := seedProfile(store, "Bob Nguyen", "bob@example.com", entity.ProfileRoleUser)
	base := time.Now().Add(-time.Hour)
	chat := seedChat(store, nil, entity.ChatTypePersonal, base, alice, bob)

	// Seeded out of order on purpose.
	seedMessage(store, chat, bob, "second", base.Add(2*time.Minute))
	seedMessage(store, chat, alice, "first", base.Add(time.Minute))
	seedMessage(store, chat, alice, "third", base.Add(3*time.Minute))

	svc := NewMessageService(memory.NewFactory(store), nil, noopLogger{})

	res, err := svc.ListMessages(context.Background(), alice.Id, chat.Id)
	assert.NoError(t, err)
	assert.Len(t, res, 3)
	assert.Equal(t, "first", res[0].Content)
	assert.Equal(t, "second", res[1].Content)
	assert.Equal(t, "third", res[2].Content)
	assert.NotNil(t, res[0].Sender)
	assert.Equal(t, "Alice Carter", res[0].Sender.FullName)
}

func TestListMessagesRejectsNonParticipant(t *testing.T) {
	store := memory.NewStore()
	alice := seedProfile(store, "Alice Carter", "alice@example.com", entity.ProfileRoleUser)
	bob := seedProfile(store, "Bob Nguyen", "bob@example.com", entity.ProfileRoleUser)
	mallory := seedProfile(store, "Mallory Quinn", "mallory@example.com", entity.ProfileRoleUser)
	chat := seedChat(store, nil, entity.ChatTypePersonal, time.Now(), alice, bob)

	svc := NewMessageService(memory.NewFactory(store), nil, noopLogger{})

	_, err := svc.ListMessages(context.Background(), mallory.Id, chat.Id)
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestSendMessageRejectsNonParticipantBeforeWriting(t *testing.T) {
	store := memory.NewStore()
	alice := seedProfile(store, "Alice Carter", "alice@example.com", entity.ProfileRoleUser)
	bob := seedProfile(store, "Bob Nguyen", "bob@example.com", entity.ProfileRoleUser)
	mallory := seedProfile(store, "Mallory Quinn", "mallory@example.com", entity.ProfileRoleUser)
	chat := seedChat(store, nil, entity.ChatTypePersonal, time.Now(), alice, bob)

	svc := NewMessageService(memory.NewFactory(store), nil, noopLogger{})

	_, err := svc.SendMessage(context.Background(), mallory.Id, &dto.SendMessageRequest{
		ChatId:  chat.Id,
		Content: "let me in",
	})
	assert.True(t, errors.Is(err, ErrForbidden))
	assert.Empty(t, store.Messages())
}

func TestSendMessageRejectsEmptyPayload(t *testing.T) {
	store := memory.NewStore()
	alice := seedProfile(store, "Alice Carter", "alice@example.com", entity.ProfileRoleUser)
	bob := seedProfile(store, "Bob Nguyen", "bob@example.com", entity.ProfileRoleUser)
	chat := seedChat(store, nil, entity.ChatTypePersonal, time.Now(), alice, bob)

	svc := NewMessageService(memory.NewFactory(store), nil, noopLogger{})

	_, err := svc.SendMessage(context.Background(), alice.Id, &dto.SendMessageRequest{ChatId: chat.Id})
	assert.Error(t, err)
	assert.Empty(t, store.Messages())
}

func TestSendMessageCaptionsFirstImage(t *testing.T) {
	store := memory.NewStore()
	alice := seedProfile(store, "Alice Carter", "alice@example.com", entity.ProfileRoleUser)
	bob := seedProfile(store, "Bob Nguyen", "bob@example.com", entity.ProfileRoleUser)
	chat := seedChat(store, nil, entity.ChatTypePersonal, time.Now(), alice, bob)

	svc := NewMessageService(memory.NewFactory(store), stubCaptioner{text: "A cat on a sofa."}, noopLogger{})

	res, err := svc.SendMessage(context.Background(), alice.Id, &dto.SendMessageRequest{
		ChatId: chat.Id,
		Images: []string{"data:image/png;base64,aGVsbG8="},
	})
	assert.NoError(t, err)
	assert.Equal(t, "A cat on a sofa.", res.AiCaption)
	assert.Len(t, store.Messages(), 1)
}

func TestSendMessageCaptionFailureUsesFallback(t *testing.T) {
	store := memory.NewStore()
	alice := seedProfile(store, "Alice Carter", "alice@example.com", entity.ProfileRoleUser)
	bob := seedProfile(store, "Bob Nguyen", "bob@example.com", entity.ProfileRoleUser)
	chat := seedChat(store, nil, entity.ChatTypePersonal, time.Now(), alice, bob)

	svc := NewMessageService(memory.NewFactory(store), stubCaptioner{err: errors.New("model offline")}, noopLogger{})

	res, err := svc.SendMessage(context.Background(), alice.Id, &dto.SendMessageRequest{
		ChatId:  chat.Id,
		Content: "look at this",
		Images:  []string{"data:image/png;base64,aGVsbG8="},
	})
	// The send itself still succeeds.
	assert.NoError(t, err)
	assert.Equal(t, FallbackCaption, res.AiCaption)
	assert.Len(t, store.Messages(), 1)
}

func TestSendMessageWithoutImagesSkipsCaptioner(t *testing.T) {
	store := memory.NewStore()
	alice := seedProfile(store, "Alice Carter", "alice@example.com", entity.ProfileRoleUser)
	bob := seedProfile(store, "Bob Nguyen", "bob@example.com", entity.ProfileRoleUser)
	chat := seedChat(store, nil, entity.ChatTypePersonal, time.Now(), alice, bob)

	// A captioner that would fail loudly if consulted.
	svc := NewMessageService(memory.NewFactory(store), stubCaptioner{err: errors.New("must not be called")}, noopLogger{})

	res, err := svc.SendMessage(context.Background(), alice.Id, &dto.SendMessageRequest{
		ChatId:  chat.Id,
		Content: "plain text",
	})
	assert.NoError(t, err)
	assert.Empty(t, res.AiCaption)
}
