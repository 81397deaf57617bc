package redissvc

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshTokenPrefix = "auth:refresh:"

type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func (a *RedisService) Ctx() context.Context {
	return a.ctx
}

func (a *RedisService) SetRefreshToken(token, username string, ttl time.Duration) error {
	return a.rdb.Set(a.ctx, refreshTokenPrefix+token, username, ttl).Err()
}

func (a *RedisService) GetRefreshToken(token string) (string, error) {
	return a.rdb.Get(a.ctx, refreshTokenPrefix+token).Result()
}

func (a *RedisService) DeleteRefreshToken(token string) error {
	return a.rdb.Del(a.ctx, refreshTokenPrefix+token).Err()
}
