package service

import (
	"context"
	"errors"
	"time"

	"chat-space-be/internal/dto"
	"chat-space-be/internal/entity"
	"chat-space-be/internal/pkg/logger"
	"chat-space-be/internal/repository/specification"
	"chat-space-be/internal/repository/unitofwork"
	"chat-space-be/pkg/caption"

	"github.com/google/uuid"
)

// FallbackCaption is stored verbatim when the caption collaborator fails;
// a failed caption never fails the send.
const FallbackCaption = "Unable to generate caption for this image."

type IMessageService interface {
	ListMessages(ctx context.Context, userId, chatId uuid.UUID) ([]*dto.MessageResponse, error)
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
}

type messageService struct {
	uowFactory unitofwork.RepositoryFactory
	captioner  caption.Provider
	logger     logger.ILogger
}

func NewMessageService(uowFactory unitofwork.RepositoryFactory, captioner caption.Provider, log logger.ILogger) IMessageService {
	return &messageService{
		uowFactory: uowFactory,
		captioner:  captioner,
		logger:     log,
	}
}

// requireParticipant enforces the access invariant: a user without a
// participant row in the chat cannot read or write its messages.
func (s *messageService) requireParticipant(ctx context.Context, uow unitofwork.UnitOfWork, userId, chatId uuid.UUID) error {
	part, err := uow.ChatParticipantRepository().FindOne(ctx,
		specification.ByChatID{ChatID: chatId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return err
	}
	if part == nil {
		return ErrForbidden
	}
	return nil
}

// ListMessages loads the full thread, oldest first, joined with the sender
// profile. There is no pagination.
func (s *messageService) ListMessages(ctx context.Context, userId, chatId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireParticipant(ctx, uow, userId, chatId); err != nil {
		return nil, err
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByChatID{ChatID: chatId},
		specification.WithSender{},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.MessageResponse, len(messages))
	for i, m := range messages {
		r := dto.NewMessageResponse(m)
		res[i] = &r
	}
	return res, nil
}

// SendMessage appends one message row. The participant check runs before any
// mutation. Image references are stored as the client supplied them, nothing
// is uploaded to durable storage (known limitation). The mutation does not
// refresh anything: the caller re-fetches the thread and its chat previews.
func (s *messageService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if req.Content == "" && len(req.Images) == 0 {
		return nil, errors.New("message is empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireParticipant(ctx, uow, userId, req.ChatId); err != nil {
		return nil, err
	}

	var aiCaption *string
	if len(req.Images) > 0 && s.captioner != nil {
		text, err := s.captioner.Caption(ctx, req.Images[0])
		if err != nil {
			s.logger.Warn("message", "caption generation failed", map[string]interface{}{
				"chat_id": req.ChatId.String(),
				"error":   err.Error(),
			})
			text = FallbackCaption
		}
		aiCaption = &text
	}

	message := &entity.Message{
		Id:        uuid.New(),
		Content:   req.Content,
		SenderId:  userId,
		ChatId:    req.ChatId,
		Images:    req.Images,
		AiCaption: aiCaption,
		CreatedAt: time.Now(),
	}

	if err := uow.MessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}

	res := dto.NewMessageResponse(message)
	return &res, nil
}
