package storage

import (
	"context"

	"github.com/redis/rueidis"
)

type RedisStore struct {
	client rueidis.Client
	prefix string
}

func NewRedisStore(client rueidis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: keyPrefix,
	}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	cmd := r.client.B().Get().Key(r.prefix + key).Build()
	value, err := r.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}

	return value, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	cmd := r.client.B().Set().Key(r.prefix + key).Value(rueidis.BinaryString(value)).Build()
	return r.client.Do(ctx, cmd).Error()
}
