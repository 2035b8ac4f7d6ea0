package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var _ Store = (*RedisStore)(nil)

const usersHashKey = "plainsite-users"

type redisUserRecord struct {
	PasswordHash string `json:"password_hash"`
	CreatedAt    int64  `json:"created_at"`
}

// RedisStore keeps all users in a single redis hash: name -> JSON record.
type RedisStore struct {
	redisClient *redis.Client
	// ability to inject the clock (for unit testing)
	NowFunc func() time.Time
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
		NowFunc:     time.Now,
	}
}

func (s *RedisStore) FindByName(ctx context.Context, name string) (*User, error) {
	val, err := s.redisClient.HGet(ctx, usersHashKey, name).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	var record redisUserRecord
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return nil, fmt.Errorf("unmarshal user record [%s]: %w", name, err)
	}

	return &User{
		Name:         name,
		PasswordHash: record.PasswordHash,
		CreatedAt:    time.Unix(record.CreatedAt, 0),
	}, nil
}

func (s *RedisStore) Insert(ctx context.Context, name, passwordHash string) (bool, error) {
	recordBytes, err := json.Marshal(redisUserRecord{
		PasswordHash: passwordHash,
		CreatedAt:    s.NowFunc().Unix(),
	})
	if err != nil {
		return false, fmt.Errorf("marshal user record: %w", err)
	}

	// HSETNX is atomic: only the first writer of a name wins
	created, err := s.redisClient.HSetNX(ctx, usersHashKey, name, string(recordBytes)).Result()
	if err != nil {
		return false, err
	}
	return created, nil
}
