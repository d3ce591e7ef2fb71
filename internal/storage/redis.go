package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/xlzhou/treasure-hunter/pkg/save"
)

// RedisStorage keeps save slots in Redis, for running the game against a
// shared save store instead of the local filesystem.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance.
func NewRedisStorage(addr string, logger *slog.Logger) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStorage{client: rdb, logger: logger}
}

func slotKey(slot int) string {
	return fmt.Sprintf("save:slot:%d", slot)
}

func (r *RedisStorage) Save(ctx context.Context, slot int, snap *save.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		r.logger.Error("Failed to marshal snapshot", "slot", slot, "error", err)
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := r.client.Set(ctx, slotKey(slot), string(data), 0).Err(); err != nil {
		r.logger.Error("Failed to save snapshot", "slot", slot, "error", err)
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (r *RedisStorage) Load(ctx context.Context, slot int) (*save.Snapshot, error) {
	data, err := r.client.Get(ctx, slotKey(slot)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		r.logger.Error("Failed to load snapshot", "slot", slot, "error", err)
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap save.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		r.logger.Error("Failed to unmarshal snapshot", "slot", slot, "error", err)
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

func (r *RedisStorage) List(ctx context.Context) ([]SlotInfo, error) {
	infos := make([]SlotInfo, 0, MaxSlot)
	for slot := MinSlot; slot <= MaxSlot; slot++ {
		snap, err := r.Load(ctx, slot)
		if err != nil {
			return nil, err
		}
		if snap == nil {
			infos = append(infos, SlotInfo{Slot: slot})
			continue
		}
		infos = append(infos, summarize(slot, snap))
	}
	return infos, nil
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}
