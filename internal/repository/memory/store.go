// Package memory holds in-memory implementations of the repository
// contracts, used by the service tests in place of a real database.
package memory

import (
	"context"
	"sync"

	"chat-space-be/internal/entity"
	"chat-space-be/internal/repository/contract"
	"chat-space-be/internal/repository/unitofwork"
)

// Store is the shared backing state for the in-memory repositories.
type Store struct {
	mu           sync.RWMutex
	profiles     []*entity.Profile
	chats        []*entity.Chat
	participants []*entity.ChatParticipant
	messages     []*entity.Message

	// ForcedErr, when set, is returned by every repository call. Tests use
	// it to simulate a backend outage.
	ForcedErr error
}

func NewStore() *Store {
	return &Store{}
}

// NewFactory wraps the store in a RepositoryFactory so services can run
// against it unchanged.
func NewFactory(store *Store) unitofwork.RepositoryFactory {
	return &factory{store: store}
}

type factory struct {
	store *Store
}

func (f *factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

// unitOfWork is transaction-free: Begin, Commit and Rollback are no-ops.
type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) ProfileRepository() contract.ProfileRepository {
	return &ProfileRepository{store: u.store}
}

func (u *unitOfWork) ChatRepository() contract.ChatRepository {
	return &ChatRepository{store: u.store}
}

func (u *unitOfWork) ChatParticipantRepository() contract.ChatParticipantRepository {
	return &ChatParticipantRepository{store: u.store}
}

func (u *unitOfWork) MessageRepository() contract.MessageRepository {
	return &MessageRepository{store: u.store}
}

// Seed helpers used by tests to arrange state directly.

func (s *Store) AddProfile(p *entity.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = append(s.profiles, p)
}

func (s *Store) AddChat(c *entity.Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats = append(s.chats, c)
}

func (s *Store) AddParticipant(p *entity.ChatParticipant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants = append(s.participants, p)
}

func (s *Store) AddMessage(m *entity.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

func (s *Store) Profiles() []*entity.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*entity.Profile(nil), s.profiles...)
}

func (s *Store) Chats() []*entity.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*entity.Chat(nil), s.chats...)
}

func (s *Store) Participants() []*entity.ChatParticipant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*entity.ChatParticipant(nil), s.participants...)
}

func (s *Store) Messages() []*entity.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*entity.Message(nil), s.messages...)
}
