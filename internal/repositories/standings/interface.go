package standings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/repositories/standings Repository

import (
	"context"

	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/models"
)

// Repository defines the interface for persisting tournament standings.
// The simulation never reads from it; it is a reporting sink written when a
// tournament completes.
type Repository interface {
	// SaveSnapshot persists the final state of a completed tournament
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error

	// GetSnapshot retrieves a tournament's final state by ID
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.StandingsSnapshot, error)
}
