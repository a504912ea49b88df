package implementation

import (
	"context"
	"errors"

	"chat-space-be/internal/entity"
	"chat-space-be/internal/mapper"
	"chat-space-be/internal/model"
	"chat-space-be/internal/repository/contract"
	"chat-space-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatParticipantRepositoryImpl struct {
	db            *gorm.DB
	mapper        *mapper.ChatMapper
	profileMapper *mapper.ProfileMapper
}

func NewChatParticipantRepository(db *gorm.DB) contract.ChatParticipantRepository {
	return &ChatParticipantRepositoryImpl{
		db:            db,
		mapper:        mapper.NewChatMapper(),
		profileMapper: mapper.NewProfileMapper(),
	}
}

func (r *ChatParticipantRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatParticipantRepositoryImpl) CreateBatch(ctx context.Context, participants []*entity.ChatParticipant) error {
	if len(participants) == 0 {
		return nil
	}
	models := make([]*model.ChatParticipant, len(participants))
	for i, p := range participants {
		models[i] = r.mapper.ParticipantToModel(p)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*participants[i] = *r.mapper.ParticipantToEntity(m)
	}
	return nil
}

func (r *ChatParticipantRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatParticipant, error) {
	var m model.ChatParticipant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ParticipantToEntity(&m), nil
}

func (r *ChatParticipantRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatParticipant, error) {
	var models []*model.ChatParticipant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatParticipant, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ParticipantToEntity(m)
	}
	return entities, nil
}

func (r *ChatParticipantRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Delete(&model.ChatParticipant{}).Error
}

func (r *ChatParticipantRepositoryImpl) FindAllForUser(ctx context.Context, userId uuid.UUID) ([]*entity.ChatParticipant, error) {
	var models []*model.ChatParticipant
	err := r.db.WithContext(ctx).
		Preload("Chat").
		Where("user_id = ?", userId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatParticipant, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ParticipantToEntity(m)
	}
	return entities, nil
}

func (r *ChatParticipantRepositoryImpl) FindProfilesByChat(ctx context.Context, chatId uuid.UUID) ([]*entity.Profile, error) {
	var models []*model.Profile
	err := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Joins("JOIN chat_participants ON chat_participants.user_id = profiles.id").
		Where("chat_participants.chat_id = ?", chatId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.profileMapper.ToEntities(models), nil
}
