package service

import (
	"context"

	"chat-space-be/internal/dto"
	"chat-space-be/internal/repository/specification"
	"chat-space-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error
	ListContacts(ctx context.Context, userId uuid.UUID) ([]*dto.ProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{uowFactory: uowFactory}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}

	res := dto.NewProfileResponse(profile)
	return &res, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrNotFound
	}

	profile.FullName = req.FullName
	if req.AvatarURL != "" {
		avatar := req.AvatarURL
		profile.AvatarURL = &avatar
	}

	return uow.ProfileRepository().Update(ctx, profile)
}

// ListContacts returns every other profile, for the new-chat picker.
func (s *userService) ListContacts(ctx context.Context, userId uuid.UUID) ([]*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profiles, err := uow.ProfileRepository().FindAll(ctx,
		specification.OrderBy{Field: "full_name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		if p.Id == userId {
			continue
		}
		r := dto.NewProfileResponse(p)
		res = append(res, &r)
	}
	return res, nil
}
