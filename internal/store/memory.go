package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AntonTsoy/jwt-auth-api/internal/model"
)

// MemoryUserStore keeps users in an insertion-ordered slice guarded by a
// RWMutex. Duplicate emails are rejected under the same lock as the insert
// so concurrent registrations cannot race past the service-level check.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users []model.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

func (s *MemoryUserStore) Create(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return model.ErrEmailTaken
		}
	}
	s.users = append(s.users, user)
	return nil
}

func (s *MemoryUserStore) FindByEmail(email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *MemoryUserStore) FindByID(id uuid.UUID) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *MemoryUserStore) FindAll() ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryUserStore) DeleteByID(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return model.ErrUserNotFound
}

// MemoryRefreshTokenStore is the default ledger backend. Entries for
// expired tokens are dropped lazily on lookup.
type MemoryRefreshTokenStore struct {
	mu      sync.Mutex
	entries map[string]LedgerEntry
}

func NewMemoryRefreshTokenStore() *MemoryRefreshTokenStore {
	return &MemoryRefreshTokenStore{entries: make(map[string]LedgerEntry)}
}

func (s *MemoryRefreshTokenStore) Save(token string, entry LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[token] = entry
	return nil
}

func (s *MemoryRefreshTokenStore) Find(token string) (LedgerEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return LedgerEntry{}, false, nil
	}
	if !time.Now().Before(entry.ExpiresAt) {
		delete(s.entries, token)
		return LedgerEntry{}, false, nil
	}
	return entry, true, nil
}

func (s *MemoryRefreshTokenStore) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, token)
	return nil
}

// MemoryArticleStore serves the fixed article catalogue.
type MemoryArticleStore struct {
	articles []model.Article
}

func NewMemoryArticleStore() *MemoryArticleStore {
	return &MemoryArticleStore{
		articles: []model.Article{
			{ID: uuid.New(), Title: "Article1", Content: "Content1"},
			{ID: uuid.New(), Title: "Article2", Content: "Content2"},
		},
	}
}

func (s *MemoryArticleStore) FindAll() ([]model.Article, error) {
	out := make([]model.Article, len(s.articles))
	copy(out, s.articles)
	return out, nil
}
