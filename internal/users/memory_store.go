package users

import (
	"context"
	"sync"
	"time"
)

var _ Store = (*MemoryStore)(nil)

type MemoryStore struct {
	mutex sync.RWMutex
	users map[string]User
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]User),
		now:   time.Now,
	}
}

func (s *MemoryStore) FindByName(_ context.Context, name string) (*User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	user, ok := s.users[name]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *MemoryStore) Insert(_ context.Context, name, passwordHash string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.users[name]; exists {
		return false, nil
	}

	s.users[name] = User{
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    s.now(),
	}
	return true, nil
}

func (s *MemoryStore) Count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.users)
}
