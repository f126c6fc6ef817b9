package standings

import "github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/models"

type SaveSnapshotInput struct {
	Snapshot *models.StandingsSnapshot
}

type GetSnapshotInput struct {
	TournamentID string
}
