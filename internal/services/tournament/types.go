package tournament

import (
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/common/clock"
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/common/uuid"
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/dice"
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/models"
	standingsRepo "github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/repositories/standings"
)

// Config holds configuration for the tournament service
type Config struct {
	// Maximum number of teams in the tournament
	MaxTeams int

	// Number of players on each roster
	RosterSize int

	// Maximum completed overs per innings
	OverLimit int

	// Number of wickets that ends an innings
	WicketLimit int

	// Repository dependencies
	StandingsRepo standingsRepo.Repository

	// Service dependencies
	Roller        dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateTournamentInput contains parameters for creating the tournament
type CreateTournamentInput struct {
	// Name is the tournament's display name
	Name string
}

// CreateTournamentOutput contains the result of creating the tournament
type CreateTournamentOutput struct {
	// TournamentID is the unique identifier for the tournament
	TournamentID string
}

// AddTeamInput contains parameters for registering a team
type AddTeamInput struct {
	// Name is the team's display name
	Name string

	// City is the team's home venue city
	City string
}

// AddTeamOutput contains the result of registering a team
type AddTeamOutput struct {
	// TeamID is the unique identifier for the team
	TeamID string
}

// AddPlayerInput contains parameters for registering a player
type AddPlayerInput struct {
	// TeamID identifies the team the player joins
	TeamID string

	// Name is the player's display name
	Name string

	// Age is the player's age in years
	Age int

	// Role determines which scoring events are legal for the player
	Role models.Role
}

// AddPlayerOutput contains the result of registering a player
type AddPlayerOutput struct {
	// PlayerID is the unique identifier for the player
	PlayerID string
}

// Fixture describes one generated match before it is played
type Fixture struct {
	// MatchID is the unique identifier for the match
	MatchID string

	// HomeTeam bats first
	HomeTeam string

	// AwayTeam bats second
	AwayTeam string

	// Venue is where the match is played
	Venue string

	// Date is the match date
	Date string
}

// GenerateFixturesInput contains parameters for fixture generation
type GenerateFixturesInput struct {
}

// GenerateFixturesOutput contains the generated round-robin fixture list
type GenerateFixturesOutput struct {
	// Fixtures is the list of matches in play order
	Fixtures []*Fixture
}

// ConfigureInningsInput contains the opening selections for one innings
type ConfigureInningsInput struct {
	// MatchID identifies the fixture
	MatchID string

	// InningsNumber is 1 for the home side's innings, 2 for the away side's
	InningsNumber int

	// Striker is the name of the opening batter on strike
	Striker string

	// NonStriker is the name of the opening batter at the other end
	NonStriker string

	// Bowler is the name of the opening bowler
	Bowler string
}

// ConfigureInningsOutput contains the result of configuring an innings
type ConfigureInningsOutput struct {
}

// PlayNextMatchInput contains parameters for playing the next fixture
type PlayNextMatchInput struct {
}

// PlayNextMatchOutput contains the played match's summary and commentary
type PlayNextMatchOutput struct {
	// Summary is the match result view
	Summary *models.MatchSummary

	// FirstInningsEvents is the ball-by-ball commentary of the first innings
	FirstInningsEvents []*models.BallEvent

	// SecondInningsEvents is the ball-by-ball commentary of the second innings
	SecondInningsEvents []*models.BallEvent
}

// PlayAllMatchesInput contains parameters for playing all remaining fixtures
type PlayAllMatchesInput struct {
}

// PlayAllMatchesOutput contains the summaries of every played match
type PlayAllMatchesOutput struct {
	// Matches holds one output per match in play order
	Matches []*PlayNextMatchOutput
}

// GetPointsTableInput contains parameters for reading the standings
type GetPointsTableInput struct {
}

// GetPointsTableOutput contains the sorted points table
type GetPointsTableOutput struct {
	// Table is sorted by points descending, insertion order on ties
	Table []*models.StandingsRow
}

// GetPlayerStatisticsInput contains parameters for reading player statistics
type GetPlayerStatisticsInput struct {
}

// GetPlayerStatisticsOutput contains the cumulative per-player table
type GetPlayerStatisticsOutput struct {
	// Players holds one line per registered player
	Players []*models.PlayerStatLine
}

// GetTournamentMVPInput contains parameters for the tournament award
type GetTournamentMVPInput struct {
}

// GetTournamentMVPOutput contains the tournament's standout player
type GetTournamentMVPOutput struct {
	// Player is the participant with the highest cumulative credit
	Player *models.PlayerStatLine
}

// GetChampionInput contains parameters for the championship award
type GetChampionInput struct {
}

// GetChampionOutput contains the championship-winning team
type GetChampionOutput struct {
	// Team is the top row of the final points table
	Team *models.StandingsRow
}

// GetMatchSummaryInput contains parameters for reading a match result
type GetMatchSummaryInput struct {
	// MatchID identifies the fixture
	MatchID string
}

// GetMatchSummaryOutput contains a played match's result view
type GetMatchSummaryOutput struct {
	// Summary is the match result view
	Summary *models.MatchSummary
}
