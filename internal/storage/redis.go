package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

func NewRedisClient(addr string) *redis.Client {
	r := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	return r
}

// Redis stores values under Prefix+key.
type Redis struct {
	Client *redis.Client
	Prefix string
}

func (r *Redis) k(key string) string { return r.Prefix + key }

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	s, err := r.Client.Get(ctx, r.k(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "redis get %s", key)
	}
	return s, nil
}

func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.Wrapf(r.Client.Set(ctx, r.k(key), value, ttl).Err(), "redis set %s", key)
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(r.Client.Del(ctx, r.k(key)).Err(), "redis del %s", key)
}

func (r *Redis) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.Client.Exists(ctx, r.k(key)).Result()
	if err != nil {
		return false, errors.Wrapf(err, "redis exists %s", key)
	}
	return n > 0, nil
}
