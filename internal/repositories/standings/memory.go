package standings

import (
	"context"
	"errors"
	"sync"

	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/models"
)

// memoryRepository implements the Repository interface in process memory,
// for runs without a Redis backend
type memoryRepository struct {
	snapshots map[string]*models.StandingsSnapshot
	mu        sync.RWMutex
}

// NewMemory creates a new in-memory standings repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		snapshots: make(map[string]*models.StandingsSnapshot),
	}
}

// SaveSnapshot stores a tournament's final state
func (r *memoryRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}
	if input.Snapshot.TournamentID == "" {
		return errors.New("tournament ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[input.Snapshot.TournamentID] = input.Snapshot

	return nil
}

// GetSnapshot retrieves a tournament's final state by ID
func (r *memoryRepository) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.StandingsSnapshot, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.snapshots[input.TournamentID]
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	return snapshot, nil
}
