package service

import (
	"context"

	"chat-space-be/internal/dto"
	"chat-space-be/internal/entity"
	"chat-space-be/internal/pkg/logger"
	"chat-space-be/internal/repository/specification"
	"chat-space-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAdminService interface {
	GetAllUsers(ctx context.Context) ([]*dto.ProfileResponse, error)
	GetStats(ctx context.Context) (*dto.AdminStatsResponse, error)
	UpdateUserRole(ctx context.Context, userId uuid.UUID, role string) error
	DeleteUser(ctx context.Context, userId uuid.UUID) error
	GetSystemLogs(ctx context.Context, level string, limit, offset int) ([]*dto.AdminLogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *adminService) GetAllUsers(ctx context.Context) ([]*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profiles, err := uow.ProfileRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ProfileResponse, len(profiles))
	for i, p := range profiles {
		r := dto.NewProfileResponse(p)
		res[i] = &r
	}
	return res, nil
}

// GetStats recomputes every aggregate from full table scans on each call;
// there are no incremental counters.
func (s *adminService) GetStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profiles, err := uow.ProfileRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	chats, err := uow.ChatRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	messageCount, err := uow.MessageRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.AdminStatsResponse{
		TotalUsers:    len(profiles),
		TotalChats:    len(chats),
		TotalMessages: int(messageCount),
	}
	for _, p := range profiles {
		if p.Status == entity.ProfileStatusOnline {
			stats.OnlineUsers++
		}
		if p.Role == entity.ProfileRoleAdmin {
			stats.AdminUsers++
		}
	}
	for _, c := range chats {
		switch c.Type {
		case entity.ChatTypePersonal:
			stats.PersonalChats++
		case entity.ChatTypeGroup:
			stats.GroupChats++
		}
	}
	return stats, nil
}

// UpdateUserRole mutates the role only; the caller re-fetches the roster.
func (s *adminService) UpdateUserRole(ctx context.Context, userId uuid.UUID, role string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrNotFound
	}

	if err := uow.ProfileRepository().UpdateRole(ctx, userId, role); err != nil {
		return err
	}

	s.logger.Info("admin", "user role updated", map[string]interface{}{
		"user_id": userId.String(),
		"role":    role,
	})
	return nil
}

// DeleteUser cascades in a fixed order: authored messages, then participant
// rows, then the profile. The steps run without a transaction, so a failure
// mid-cascade leaves the earlier deletions in place.
func (s *adminService) DeleteUser(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrNotFound
	}

	if err := uow.MessageRepository().DeleteAllBySenderId(ctx, userId); err != nil {
		return err
	}
	if err := uow.ChatParticipantRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.ProfileRepository().Delete(ctx, userId); err != nil {
		return err
	}

	s.logger.Info("admin", "user deleted", map[string]interface{}{"user_id": userId.String()})
	return nil
}

func (s *adminService) GetSystemLogs(ctx context.Context, level string, limit, offset int) ([]*dto.AdminLogEntry, error) {
	if limit < 1 {
		limit = 50
	}
	entries, err := s.logger.GetLogs(level, limit, offset)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AdminLogEntry, len(entries))
	for i, e := range entries {
		res[i] = &dto.AdminLogEntry{
			Id:        e.Id,
			Timestamp: e.Timestamp,
			Level:     e.Level,
			Message:   e.Message,
			Module:    e.Module,
			Details:   e.Details,
		}
	}
	return res, nil
}
