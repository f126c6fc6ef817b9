package models

import "errors"

// Team errors
var (
	// ErrPlayerNotInLineup is returned when a named player is not in the lineup
	ErrPlayerNotInLineup = errors.New("player not in lineup")

	// ErrInvalidLineup is returned when a lineup cannot field a legal side
	ErrInvalidLineup = errors.New("lineup needs at least 2 batting-capable and 2 bowling-capable players")
)

// MatchOutcome classifies a match result from one team's perspective
type MatchOutcome string

const (
	// OutcomeWin indicates the team won the match
	OutcomeWin MatchOutcome = "win"

	// OutcomeLoss indicates the team lost the match
	OutcomeLoss MatchOutcome = "loss"

	// OutcomeTie indicates the match was tied
	OutcomeTie MatchOutcome = "tie"

	// OutcomeNoResult indicates the match produced no result
	OutcomeNoResult MatchOutcome = "no_result"
)

// Team represents a tournament side: a fixed roster, the active lineup,
// and the running points record
type Team struct {
	// ID is the unique identifier for the team
	ID string

	// Name is the team's display name
	Name string

	// City is the team's home venue city
	City string

	// Roster is the full list of registered players
	Roster []*Player

	// Lineup is the subset of the roster fielded in matches
	Lineup []*Player

	// Points is the team's championship points total
	Points int

	// MatchesPlayed is the number of matches completed
	MatchesPlayed int

	// MatchesWon is the number of matches won
	MatchesWon int

	// MatchesLost is the number of matches lost
	MatchesLost int

	// MatchesTied is the number of matches tied
	MatchesTied int
}

// AddPlayer appends a player to the roster
func (t *Team) AddPlayer(p *Player) {
	t.Roster = append(t.Roster, p)
}

// SelectLineup fields the entire roster and validates that it can produce a
// legal side: at least 2 batting-capable and 2 bowling-capable players,
// with all-rounders counting toward both.
func (t *Team) SelectLineup() error {
	batters, bowlers := 0, 0
	for _, p := range t.Roster {
		if p.CanBat() {
			batters++
		}
		if p.CanBowl() {
			bowlers++
		}
	}

	if batters < 2 || bowlers < 2 {
		return ErrInvalidLineup
	}

	t.Lineup = t.Roster
	return nil
}

// FindPlayer returns the lineup player with the given name
func (t *Team) FindPlayer(name string) (*Player, error) {
	for _, p := range t.Lineup {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, ErrPlayerNotInLineup
}

// BattingOrder returns the batting-capable lineup members in roster order
func (t *Team) BattingOrder() []*Player {
	var order []*Player
	for _, p := range t.Lineup {
		if p.CanBat() {
			order = append(order, p)
		}
	}
	return order
}

// BowlingOrder returns the bowling-capable lineup members in roster order
func (t *Team) BowlingOrder() []*Player {
	var order []*Player
	for _, p := range t.Lineup {
		if p.CanBowl() {
			order = append(order, p)
		}
	}
	return order
}

// RecordMatchOutcome increments matches played and the matching
// win/loss/tie counter. Points are credited separately via AddPoints.
func (t *Team) RecordMatchOutcome(outcome MatchOutcome) {
	t.MatchesPlayed++
	switch outcome {
	case OutcomeWin:
		t.MatchesWon++
	case OutcomeLoss:
		t.MatchesLost++
	case OutcomeTie:
		t.MatchesTied++
	}
}

// AddPoints credits championship points to the team
func (t *Team) AddPoints(points int) {
	t.Points += points
}

// WinPercentage returns wins per 100 matches played, or 0 if none played
func (t *Team) WinPercentage() float64 {
	if t.MatchesPlayed == 0 {
		return 0
	}
	return float64(t.MatchesWon) * 100 / float64(t.MatchesPlayed)
}
