package models

import "errors"

// Role identifies what a player is allowed to do on the field
type Role string

const (
	// RoleBatsman indicates a player who only bats
	RoleBatsman Role = "batsman"

	// RoleBowler indicates a player who only bowls
	RoleBowler Role = "bowler"

	// RoleAllRounder indicates a player who both bats and bowls
	RoleAllRounder Role = "all_rounder"
)

// ErrRoleViolation is returned when a scoring event is applied to a player
// whose role does not permit it
var ErrRoleViolation = errors.New("event not permitted for player role")

// runsPerCredit is the batting credit conversion rate: 20 runs earn 1 credit
const runsPerCredit = 20

// BattingRecord holds one scope of a player's batting statistics
type BattingRecord struct {
	// Runs is the total runs scored
	Runs int

	// BallsFaced is the number of deliveries faced
	BallsFaced int

	// Fours is the number of boundary fours hit
	Fours int

	// Sixes is the number of boundary sixes hit
	Sixes int
}

// BowlingRecord holds one scope of a player's bowling statistics
type BowlingRecord struct {
	// Wickets is the number of wickets taken
	Wickets int

	// RunsConceded is the total runs given away
	RunsConceded int

	// BallsBowled is the number of deliveries bowled
	BallsBowled int

	// Maidens is the number of completed overs conceding zero runs
	Maidens int
}

// Player represents a tournament participant. Statistics are kept in two
// scopes: Match counters reset before every match, Total counters accumulate
// for the whole tournament. Credit is never stored; it is always derived
// from the accumulated counters by the role's formula.
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the player's display name
	Name string

	// Age is the player's age in years
	Age int

	// Role determines which scoring events are legal for this player
	Role Role

	// MatchBatting holds batting statistics for the current match
	MatchBatting BattingRecord

	// TotalBatting holds cumulative batting statistics for the tournament
	TotalBatting BattingRecord

	// MatchBowling holds bowling statistics for the current match
	MatchBowling BowlingRecord

	// TotalBowling holds cumulative bowling statistics for the tournament
	TotalBowling BowlingRecord
}

// CanBat reports whether batting events are legal for the player
func (p *Player) CanBat() bool {
	return p.Role == RoleBatsman || p.Role == RoleAllRounder
}

// CanBowl reports whether bowling events are legal for the player
func (p *Player) CanBowl() bool {
	return p.Role == RoleBowler || p.Role == RoleAllRounder
}

// creditFor applies the role's credit formula: batsmen earn one credit per
// 20 runs, bowlers one credit per wicket, all-rounders both
func creditFor(role Role, runs, wickets int) int {
	switch role {
	case RoleBatsman:
		return runs / runsPerCredit
	case RoleBowler:
		return wickets
	default:
		return runs/runsPerCredit + wickets
	}
}

// MatchCredit derives the credit earned in the current match
func (p *Player) MatchCredit() int {
	return creditFor(p.Role, p.MatchBatting.Runs, p.MatchBowling.Wickets)
}

// TotalCredit derives the credit earned across the tournament
func (p *Player) TotalCredit() int {
	return creditFor(p.Role, p.TotalBatting.Runs, p.TotalBowling.Wickets)
}

// ApplyRuns records runs scored off the bat. Boundary counters are updated
// for 4s and 6s.
func (p *Player) ApplyRuns(runs int) error {
	if !p.CanBat() {
		return ErrRoleViolation
	}

	p.MatchBatting.Runs += runs
	p.TotalBatting.Runs += runs

	switch runs {
	case 4:
		p.MatchBatting.Fours++
		p.TotalBatting.Fours++
	case 6:
		p.MatchBatting.Sixes++
		p.TotalBatting.Sixes++
	}

	return nil
}

// ApplyBallFaced records one delivery faced by the player
func (p *Player) ApplyBallFaced() error {
	if !p.CanBat() {
		return ErrRoleViolation
	}

	p.MatchBatting.BallsFaced++
	p.TotalBatting.BallsFaced++

	return nil
}

// ApplyWicketTaken records one wicket for the player
func (p *Player) ApplyWicketTaken() error {
	if !p.CanBowl() {
		return ErrRoleViolation
	}

	p.MatchBowling.Wickets++
	p.TotalBowling.Wickets++

	return nil
}

// ApplyRunsConceded records runs given away while bowling
func (p *Player) ApplyRunsConceded(runs int) error {
	if !p.CanBowl() {
		return ErrRoleViolation
	}

	p.MatchBowling.RunsConceded += runs
	p.TotalBowling.RunsConceded += runs

	return nil
}

// ApplyBallBowled records one delivery bowled by the player
func (p *Player) ApplyBallBowled() error {
	if !p.CanBowl() {
		return ErrRoleViolation
	}

	p.MatchBowling.BallsBowled++
	p.TotalBowling.BallsBowled++

	return nil
}

// ApplyMaiden records a completed over in which the player conceded no runs
func (p *Player) ApplyMaiden() error {
	if !p.CanBowl() {
		return ErrRoleViolation
	}

	p.MatchBowling.Maidens++
	p.TotalBowling.Maidens++

	return nil
}

// ResetMatchState zeroes all match-scoped counters; match credit follows
// since it is derived. Cumulative counters are untouched. Called once per
// player before a match.
func (p *Player) ResetMatchState() {
	p.MatchBatting = BattingRecord{}
	p.MatchBowling = BowlingRecord{}
}

// StrikeRate returns runs per 100 balls faced for the tournament,
// or 0 if the player has not faced a ball
func (p *Player) StrikeRate() float64 {
	if p.TotalBatting.BallsFaced == 0 {
		return 0
	}
	return float64(p.TotalBatting.Runs) * 100 / float64(p.TotalBatting.BallsFaced)
}

// EconomyRate returns runs conceded per over for the tournament,
// or 0 if the player has not bowled
func (p *Player) EconomyRate() float64 {
	if p.TotalBowling.BallsBowled == 0 {
		return 0
	}
	return float64(p.TotalBowling.RunsConceded) * 6 / float64(p.TotalBowling.BallsBowled)
}

// BowlingAverage returns runs conceded per wicket for the tournament,
// or 0 if the player has no wickets
func (p *Player) BowlingAverage() float64 {
	if p.TotalBowling.Wickets == 0 {
		return 0
	}
	return float64(p.TotalBowling.RunsConceded) / float64(p.TotalBowling.Wickets)
}
