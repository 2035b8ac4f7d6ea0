package session

import (
	"context"
	"sync"

	"github.com/2beens/plainsite/pkg"
)

// TokenBytes is the entropy of a session token; tokens are hex encoded.
const TokenBytes = 32

// Registry binds opaque session tokens to usernames.
// A token present in the registry is an active session, absence means unauthenticated.
type Registry interface {
	Create(ctx context.Context, username string) (string, error)
	Lookup(ctx context.Context, token string) (string, bool)
	Delete(ctx context.Context, token string)
}

var _ Registry = (*MemoryRegistry)(nil)

// MemoryRegistry is the process-wide, never persisted session registry.
// Every single operation is atomic; sequences across operations are not.
// Sessions never expire; they live until deleted or until the process exits.
type MemoryRegistry struct {
	mutex    sync.RWMutex
	sessions map[string]string // token -> username
	// ability to inject the token generator (for unit and dev testing)
	RandTokenFunc func() (string, error)
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		sessions: make(map[string]string),
		RandTokenFunc: func() (string, error) {
			return pkg.GenerateRandomHex(TokenBytes)
		},
	}
}

func (r *MemoryRegistry) Create(_ context.Context, username string) (string, error) {
	token, err := r.RandTokenFunc()
	if err != nil {
		return "", err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	// collisions are not checked, 256 bits of entropy take care of that
	r.sessions[token] = username

	return token, nil
}

func (r *MemoryRegistry) Lookup(_ context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	username, ok := r.sessions[token]
	return username, ok
}

func (r *MemoryRegistry) Delete(_ context.Context, token string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.sessions, token)
}

// Count returns the number of active sessions.
func (r *MemoryRegistry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.sessions)
}
