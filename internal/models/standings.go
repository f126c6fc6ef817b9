package models

// StandingsRow is one team's line in the points table
type StandingsRow struct {
	// TeamName is the team's display name
	TeamName string

	// Points is the team's championship points total
	Points int

	// Played is the number of matches completed
	Played int

	// Won is the number of matches won
	Won int

	// Lost is the number of matches lost
	Lost int

	// Tied is the number of matches tied
	Tied int

	// WinPercentage is wins per 100 matches played
	WinPercentage float64
}

// PlayerStatLine is one player's line in the cumulative statistics table
type PlayerStatLine struct {
	// PlayerID is the unique identifier for the player
	PlayerID string

	// Name is the player's display name
	Name string

	// Team is the player's team name
	Team string

	// Role is the player's role
	Role Role

	// Runs is the cumulative runs scored
	Runs int

	// BallsFaced is the cumulative deliveries faced
	BallsFaced int

	// Fours is the cumulative boundary fours
	Fours int

	// Sixes is the cumulative boundary sixes
	Sixes int

	// Wickets is the cumulative wickets taken
	Wickets int

	// BallsBowled is the cumulative deliveries bowled
	BallsBowled int

	// RunsConceded is the cumulative runs conceded
	RunsConceded int

	// Maidens is the cumulative maiden overs bowled
	Maidens int

	// Credits is the cumulative credit score
	Credits int

	// StrikeRate is runs per 100 balls faced
	StrikeRate float64

	// EconomyRate is runs conceded per over
	EconomyRate float64
}

// StandingsSnapshot is the persisted final state of a completed tournament
type StandingsSnapshot struct {
	// TournamentID is the unique identifier for the tournament
	TournamentID string

	// TournamentName is the tournament's display name
	TournamentName string

	// Table is the sorted points table
	Table []*StandingsRow

	// PlayerStats is the cumulative per-player statistics table
	PlayerStats []*PlayerStatLine

	// Champion is the winning team's name
	Champion string

	// PlayerOfTheTournament is the tournament MVP's name
	PlayerOfTheTournament string
}
