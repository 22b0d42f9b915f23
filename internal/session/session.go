// Package session keeps login sessions in Redis so tokens can be revoked
// before they expire.
package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

// Store maps session ids to user ids under a TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create registers a new session for the user and returns its id.
func (s *Store) Create(ctx context.Context, userID uint) (string, error) {
	sid := uuid.New().String()
	key := "session:" + sid
	if err := s.rdb.Set(ctx, key, userID, s.ttl).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

// UserID resolves a session id to the user it belongs to. A missing or
// expired session yields ErrNotFound.
func (s *Store) UserID(ctx context.Context, sid string) (uint, error) {
	val, err := s.rdb.Get(ctx, "session:"+sid).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}
	return uint(id), nil
}

// Delete revokes a session. Deleting an absent session is not an error.
func (s *Store) Delete(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, "session:"+sid).Err()
}
