package tournament

// TournamentError is a custom error type for tournament-related errors
type TournamentError string

// Error implements the error interface
func (e TournamentError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrTournamentExists     TournamentError = "tournament has already been created"
	ErrTournamentNotCreated TournamentError = "tournament has not been created"
	ErrTeamLimitReached     TournamentError = "tournament already has the maximum number of teams"
	ErrTeamNotFound         TournamentError = "team not found"
	ErrRosterFull           TournamentError = "team roster is full"
	ErrDuplicatePlayerName  TournamentError = "a player with that name is already on the roster"
	ErrInvalidRole          TournamentError = "player role must be batsman, bowler or all_rounder"
	ErrNotEnoughTeams       TournamentError = "at least two teams are required to generate fixtures"
	ErrFixturesGenerated    TournamentError = "fixtures have already been generated"
	ErrFixturesNotGenerated TournamentError = "fixtures have not been generated"
	ErrMatchNotFound        TournamentError = "match not found"
	ErrInvalidInningsNumber TournamentError = "innings number must be 1 or 2"
	ErrMatchNotConfigured   TournamentError = "match innings have not been configured"
	ErrMatchNotPlayed       TournamentError = "match has not been played yet"
	ErrAllMatchesPlayed     TournamentError = "all fixtures have been played"
	ErrNotAvailable         TournamentError = "not available until play has completed"
	ErrNilConfig            TournamentError = "config cannot be nil"
	ErrNilStandingsRepo     TournamentError = "standings repository cannot be nil"
	ErrNilRoller            TournamentError = "roller cannot be nil"
	ErrNilClock             TournamentError = "clock cannot be nil"
	ErrNilUUIDGenerator     TournamentError = "UUID generator cannot be nil"
)
