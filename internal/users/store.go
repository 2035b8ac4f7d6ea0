package users

import (
	"context"
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store persists credential records. Names are unique.
type Store interface {
	// FindByName returns ErrUserNotFound when no user with the given name exists.
	FindByName(ctx context.Context, name string) (*User, error)
	// Insert returns false (and no error) if the name is already taken.
	Insert(ctx context.Context, name, passwordHash string) (bool, error)
}
