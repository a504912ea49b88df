package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chat-space-be/internal/dto"
	"chat-space-be/internal/entity"
	"chat-space-be/internal/repository/specification"
	"chat-space-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// UnknownUserName is the sentinel display name for a personal chat whose
// counterpart profile cannot be resolved.
const UnknownUserName = "Unknown User"

type IChatService interface {
	ListChats(ctx context.Context, userId uuid.UUID) ([]*dto.ChatResponse, error)
	CreateChat(ctx context.Context, userId uuid.UUID, req *dto.CreateChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChatService(uowFactory unitofwork.RepositoryFactory) IChatService {
	return &chatService{uowFactory: uowFactory}
}

// ListChats assembles the caller's conversation list. Per-chat detail fetches
// run concurrently and join before the result is produced; the first failure
// aborts the whole batch, no partial list is ever returned. No sort order is
// enforced here, presentation sorts by last-message time.
func (s *chatService) ListChats(ctx context.Context, userId uuid.UUID) ([]*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	parts, err := uow.ChatParticipantRepository().FindAllForUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	results := make([]*dto.ChatResponse, len(parts))
	g, gctx := errgroup.WithContext(ctx)

	for i, part := range parts {
		i, part := i, part
		g.Go(func() error {
			if part.Chat == nil {
				return fmt.Errorf("participant row %s has no chat", part.Id)
			}
			res, err := s.assembleChat(gctx, uow, userId, part.Chat)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *chatService) assembleChat(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, chat *entity.Chat) (*dto.ChatResponse, error) {
	profiles, err := uow.ChatParticipantRepository().FindProfilesByChat(ctx, chat.Id)
	if err != nil {
		return nil, err
	}

	last, err := uow.MessageRepository().FindOne(ctx,
		specification.ByChatID{ChatID: chat.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	participants := make([]dto.ProfileResponse, len(profiles))
	for i, p := range profiles {
		participants[i] = dto.NewProfileResponse(p)
	}

	res := &dto.ChatResponse{
		Id:           chat.Id,
		Name:         displayName(chat, profiles, userId),
		Type:         string(chat.Type),
		Participants: participants,
		// Unread tracking is not computed yet; zero is an explicit placeholder.
		UnreadCount:     0,
		LastMessage:     "",
		LastMessageTime: chat.CreatedAt,
		CreatedAt:       chat.CreatedAt,
	}
	if chat.AvatarURL != nil {
		res.AvatarURL = *chat.AvatarURL
	}
	if last != nil {
		res.LastMessage = last.Content
		res.LastMessageTime = last.CreatedAt
	}
	return res, nil
}

// displayName resolves what the sidebar shows for a chat: groups use the
// stored name; personal chats without one borrow the counterpart's full name.
func displayName(chat *entity.Chat, profiles []*entity.Profile, userId uuid.UUID) string {
	name := ""
	if chat.Name != nil {
		name = *chat.Name
	}
	if chat.Type == entity.ChatTypePersonal && name == "" {
		name = UnknownUserName
		for _, p := range profiles {
			if p.Id != userId {
				name = p.FullName
				break
			}
		}
	}
	return name
}

// CreateChat inserts the chat and its participant rows (caller first, then
// invitees) in one transaction.
func (s *chatService) CreateChat(ctx context.Context, userId uuid.UUID, req *dto.CreateChatRequest) (*dto.ChatResponse, error) {
	invitees := make([]uuid.UUID, 0, len(req.Participants))
	for _, id := range req.Participants {
		if id != userId {
			invitees = append(invitees, id)
		}
	}
	if len(invitees) == 0 {
		return nil, errors.New("at least one other participant is required")
	}
	if entity.ChatType(req.Type) == entity.ChatTypePersonal && len(invitees) != 1 {
		return nil, errors.New("a personal chat has exactly two participants")
	}

	chat := &entity.Chat{
		Id:        uuid.New(),
		Type:      entity.ChatType(req.Type),
		CreatedAt: time.Now(),
	}
	if entity.ChatType(req.Type) == entity.ChatTypeGroup && req.Name != "" {
		name := req.Name
		chat.Name = &name
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatRepository().Create(ctx, chat); err != nil {
		return nil, err
	}

	members := append([]uuid.UUID{userId}, invitees...)
	participants := make([]*entity.ChatParticipant, len(members))
	for i, member := range members {
		participants[i] = &entity.ChatParticipant{
			Id:        uuid.New(),
			ChatId:    chat.Id,
			UserId:    member,
			CreatedAt: time.Now(),
		}
	}
	if err := uow.ChatParticipantRepository().CreateBatch(ctx, participants); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := &dto.ChatResponse{
		Id:              chat.Id,
		Type:            string(chat.Type),
		UnreadCount:     0,
		LastMessageTime: chat.CreatedAt,
		CreatedAt:       chat.CreatedAt,
	}
	if chat.Name != nil {
		res.Name = *chat.Name
	}
	return res, nil
}
