package service

import (
	"context"
	"errors"
	"os"
	"time"

	"chat-space-be/internal/dto"
	"chat-space-be/internal/entity"
	"chat-space-be/internal/pkg/logger"
	"chat-space-be/internal/repository/specification"
	"chat-space-be/internal/repository/unitofwork"
	"chat-space-be/pkg/presence"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userId uuid.UUID) error
	GetSession(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	RequireAdmin(ctx context.Context, userId uuid.UUID) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	presence   *presence.Tracker
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tracker *presence.Tracker, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		presence:   tracker,
		logger:     log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	// Local validation happens before any backend call.
	if req.Password != req.ConfirmPassword {
		return nil, errors.New("Passwords do not match")
	}
	if len(req.Password) < 6 {
		return nil, errors.New("Password must be at least 6 characters")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ProfileRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	profile := &entity.Profile{
		Id:           uuid.New(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: &hashStr,
		Role:         entity.ProfileRoleUser,
		Status:       entity.ProfileStatusOnline,
		LastSeen:     time.Now(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.ProfileRepository().Create(ctx, profile); err != nil {
		return nil, err
	}

	s.markOnline(ctx, profile.Id)

	token, err := signSessionToken(profile)
	if err != nil {
		return nil, err
	}

	s.logger.Info("auth", "user registered", map[string]interface{}{"user_id": profile.Id.String()})

	return &dto.AuthResponse{
		AccessToken: token,
		Profile:     dto.NewProfileResponse(profile),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if profile == nil || profile.PasswordHash == nil {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	if err := uow.ProfileRepository().UpdateStatus(ctx, profile.Id, string(entity.ProfileStatusOnline)); err != nil {
		return nil, err
	}
	profile.Status = entity.ProfileStatusOnline

	s.markOnline(ctx, profile.Id)

	token, err := signSessionToken(profile)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		Profile:     dto.NewProfileResponse(profile),
	}, nil
}

// Logout is best-effort: the caller always ends up signed out locally.
func (s *authService) Logout(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.ProfileRepository().UpdateStatus(ctx, userId, string(entity.ProfileStatusOffline)); err != nil {
		s.logger.Warn("auth", "failed to mark profile offline", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}

	if s.presence != nil {
		if err := s.presence.MarkOffline(ctx, userId); err != nil {
			s.logger.Warn("auth", "failed to clear presence", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
		}
	}
	return nil
}

func (s *authService) GetSession(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUnauthorized
	}

	res := dto.NewProfileResponse(profile)
	return &res, nil
}

// RequireAdmin resolves the caller's current role from the profile row, not
// the token claim, so a demotion or deletion takes effect immediately instead
// of after token expiry.
func (s *authService) RequireAdmin(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrUnauthorized
	}
	if !profile.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

func (s *authService) markOnline(ctx context.Context, userId uuid.UUID) {
	if s.presence == nil {
		return
	}
	if err := s.presence.MarkOnline(ctx, userId); err != nil {
		s.logger.Warn("auth", "failed to mark presence online", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
}

func signSessionToken(profile *entity.Profile) (string, error) {
	claims := jwt.MapClaims{
		"user_id": profile.Id.String(),
		"role":    string(profile.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}
