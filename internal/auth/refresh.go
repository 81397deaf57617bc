package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Gangesh855/factory-ops/internal/redissvc"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found or expired")

// RefreshStore keeps opaque refresh tokens in Redis. Expiry is handled by
// the key TTL, so there is no cleanup loop to run.
type RefreshStore struct {
	rs  *redissvc.RedisService
	ttl time.Duration
}

func NewRefreshStore(rs *redissvc.RedisService, ttl time.Duration) *RefreshStore {
	return &RefreshStore{rs: rs, ttl: ttl}
}

// Issue creates a new refresh token bound to a username.
func (s *RefreshStore) Issue(username string) (string, error) {
	token := uuid.NewString()
	if err := s.rs.SetRefreshToken(token, username, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Redeem consumes a refresh token and returns the username it was issued
// for. Tokens are single use: a redeemed token is deleted before the new
// one is handed out.
func (s *RefreshStore) Redeem(token string) (string, error) {
	username, err := s.rs.GetRefreshToken(token)
	if errors.Is(err, redis.Nil) {
		return "", ErrRefreshTokenNotFound
	}
	if err != nil {
		return "", err
	}
	_ = s.rs.DeleteRefreshToken(token)
	return username, nil
}
