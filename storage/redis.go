package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"hotel-frontdesk/models"
)

// RedisRepository keeps the snapshot under a single string key, the same
// shape the browser dashboard used with localStorage.
type RedisRepository struct {
	client *redis.Client
	key    string
}

func NewRedisRepository(client *redis.Client, prefix string) *RedisRepository {
	return &RedisRepository{client: client, key: prefix + SnapshotKey}
}

// Ping checks connectivity before the repository is handed out.
func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) Load(ctx context.Context) (models.Snapshot, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return DecodeSnapshot(raw)
}

func (r *RedisRepository) Save(ctx context.Context, snap models.Snapshot) error {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

// Key returns the full redis key in use.
func (r *RedisRepository) Key() string { return r.key }

func (r *RedisRepository) Close() error { return r.client.Close() }
