package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "gaunghar:session:"

type RedisStore struct {
	client   redis.UniversalClient
	duration time.Duration
}

func NewRedisStore(redisURL string, duration time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return NewRedisStoreWithClient(redis.NewClient(opts), duration), nil
}

func NewRedisStoreWithClient(client redis.UniversalClient, duration time.Duration) *RedisStore {
	return &RedisStore{client: client, duration: duration}
}

func (r *RedisStore) Create(ctx context.Context, s *Session) (*Session, error) {
	created := *s
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	created.ExpiresAt = created.CreatedAt.Add(r.duration)
	raw, err := encode(&created)
	if err != nil {
		return nil, err
	}
	if err := r.client.Set(ctx, redisKeyPrefix+created.ID, raw, r.duration).Err(); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(raw)
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, redisKeyPrefix+id).Err()
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
