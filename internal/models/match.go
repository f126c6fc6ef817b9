package models

// InningsScore is the read-only view of a completed innings
type InningsScore struct {
	// BattingTeam is the name of the team that batted
	BattingTeam string

	// Runs is the innings total
	Runs int

	// Wickets is the number of wickets lost
	Wickets int

	// Overs is the number of completed overs
	Overs int

	// Balls is the total number of deliveries bowled
	Balls int
}

// MatchSummary is the read-only view of a completed match
type MatchSummary struct {
	// MatchID is the unique identifier for the match
	MatchID string

	// HomeTeam is the name of the team batting first
	HomeTeam string

	// AwayTeam is the name of the team batting second
	AwayTeam string

	// Venue is where the match was played
	Venue string

	// Date is the match date
	Date string

	// FirstInnings is the first innings score
	FirstInnings InningsScore

	// SecondInnings is the second innings score
	SecondInnings InningsScore

	// Result is the outcome from the home team's perspective
	Result MatchOutcome

	// Winner is the winning team's name, empty on a tie
	Winner string

	// PlayerOfTheMatch is the name of the match's standout player
	PlayerOfTheMatch string
}
