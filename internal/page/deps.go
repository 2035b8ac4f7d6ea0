package page

import (
	"context"

	"github.com/2beens/plainsite/internal/users"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=page_test

type userStore interface {
	FindByName(ctx context.Context, name string) (*users.User, error)
	Insert(ctx context.Context, name, passwordHash string) (bool, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
