package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	domainRepo "healthcare-auth/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const (
	accountKeyFormat = "session:account:%d"
	tokenKeyFormat   = "session:token:%s"
)

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore returns a Redis-backed session store. A zero ttl stores
// tokens without expiry.
func NewSessionStore(client *redis.Client, ttl time.Duration) domainRepo.SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func (s *redisSessionStore) Find(ctx context.Context, userID uint) (string, error) {
	token, err := s.client.Get(ctx, fmt.Sprintf(accountKeyFormat, userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return token, nil
}

func (s *redisSessionStore) FindUserID(ctx context.Context, token string) (uint, error) {
	value, err := s.client.Get(ctx, fmt.Sprintf(tokenKeyFormat, token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed session entry for token: %w", err)
	}
	return uint(userID), nil
}

func (s *redisSessionStore) Save(ctx context.Context, userID uint, token string) (string, error) {
	accountKey := fmt.Sprintf(accountKeyFormat, userID)

	// SetNX keeps the account:token binding 1:1 under concurrent logins:
	// only the first writer binds, later writers adopt the bound token and
	// never create a reverse entry for their own.
	for {
		ok, err := s.client.SetNX(ctx, accountKey, token, s.ttl).Result()
		if err != nil {
			return "", err
		}
		if ok {
			tokenKey := fmt.Sprintf(tokenKeyFormat, token)
			if err := s.client.Set(ctx, tokenKey, strconv.FormatUint(uint64(userID), 10), s.ttl).Err(); err != nil {
				return "", err
			}
			return token, nil
		}

		existing, err := s.client.Get(ctx, accountKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// The winning token expired between the two calls; bind again.
				continue
			}
			return "", err
		}
		return existing, nil
	}
}

func (s *redisSessionStore) Delete(ctx context.Context, userID uint, token string) error {
	accountKey := fmt.Sprintf(accountKeyFormat, userID)
	tokenKey := fmt.Sprintf(tokenKeyFormat, token)
	return s.client.Del(ctx, accountKey, tokenKey).Err()
}
