package standings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	snapshotKeyPrefix = "tournament_standings:"
)

// ErrSnapshotNotFound is returned when no snapshot exists for a tournament
var ErrSnapshotNotFound = errors.New("standings snapshot not found")

// Config holds configuration for the Redis standings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed standings repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSnapshot persists a tournament's final state to Redis
func (r *redisRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	snapshot := input.Snapshot

	if snapshot.TournamentID == "" {
		return errors.New("tournament ID cannot be empty")
	}

	// Marshal the snapshot to JSON
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := fmt.Sprintf("%s%s", snapshotKeyPrefix, snapshot.TournamentID)
	if err := r.client.Set(ctx, key, snapshotJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// GetSnapshot retrieves a tournament's final state from Redis
func (r *redisRepository) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.StandingsSnapshot, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", snapshotKeyPrefix, input.TournamentID)
	snapshotJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snapshot models.StandingsSnapshot
	if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}
