package profile

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"kleo/generator"
)

const defaultRedisKey = "kleo:brand"

// RedisStore keeps the profile under a single Redis key, for
// deployments where several studio instances share one profile.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisStore{client: client, key: key}, nil
}

func (r *RedisStore) Load(ctx context.Context) (generator.BrandProfile, error) {
	data, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Default(), nil
		}
		return generator.BrandProfile{}, err
	}
	var p generator.BrandProfile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return generator.BrandProfile{}, err
	}
	return p, nil
}

func (r *RedisStore) Save(ctx context.Context, p generator.BrandProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, data, 0).Err()
}
