package tournament

import "context"

// Service defines the interface for tournament operations
type Service interface {
	// CreateTournament names the tournament and assigns its identifier
	CreateTournament(ctx context.Context, input *CreateTournamentInput) (*CreateTournamentOutput, error)

	// AddTeam registers a team before fixtures are generated
	AddTeam(ctx context.Context, input *AddTeamInput) (*AddTeamOutput, error)

	// AddPlayer registers a player on a team roster
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// GenerateFixtures validates lineups and produces the round-robin fixture list
	GenerateFixtures(ctx context.Context, input *GenerateFixturesInput) (*GenerateFixturesOutput, error)

	// ConfigureInnings records the opening striker, non-striker and bowler for one innings
	ConfigureInnings(ctx context.Context, input *ConfigureInningsInput) (*ConfigureInningsOutput, error)

	// PlayNextMatch executes the fixture at the round cursor
	PlayNextMatch(ctx context.Context, input *PlayNextMatchInput) (*PlayNextMatchOutput, error)

	// PlayAllMatches runs every remaining fixture in order
	PlayAllMatches(ctx context.Context, input *PlayAllMatchesInput) (*PlayAllMatchesOutput, error)

	// GetPointsTable returns the standings sorted by points
	GetPointsTable(ctx context.Context, input *GetPointsTableInput) (*GetPointsTableOutput, error)

	// GetPlayerStatistics returns the cumulative per-player statistics table
	GetPlayerStatistics(ctx context.Context, input *GetPlayerStatisticsInput) (*GetPlayerStatisticsOutput, error)

	// GetTournamentMVP returns the player with the highest cumulative credit
	GetTournamentMVP(ctx context.Context, input *GetTournamentMVPInput) (*GetTournamentMVPOutput, error)

	// GetChampion returns the team at the top of the points table
	GetChampion(ctx context.Context, input *GetChampionInput) (*GetChampionOutput, error)

	// GetMatchSummary returns the result view of a played match
	GetMatchSummary(ctx context.Context, input *GetMatchSummaryInput) (*GetMatchSummaryOutput, error)
}
