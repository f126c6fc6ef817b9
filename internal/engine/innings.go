package engine

import (
	"errors"
	"fmt"

	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/dice"
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/models"
)

const (
	// DefaultOverLimit is the number of overs per innings
	DefaultOverLimit = 2

	// DefaultWicketLimit is the number of wickets that ends an innings
	DefaultWicketLimit = 2

	// ballsPerOver is the number of deliveries in one over
	ballsPerOver = 6
)

// Engine errors
var (
	ErrNilConfig   = errors.New("config cannot be nil")
	ErrNilTeam     = errors.New("batting and bowling teams cannot be nil")
	ErrNilRoller   = errors.New("roller cannot be nil")
	ErrShortLineup = errors.New("lineup cannot field the required batting and bowling orders")
	ErrSameBatter  = errors.New("striker and non-striker must be different players")
	ErrNoPlayers   = errors.New("innings has no players")
)

// ballOutcomes is the draw table for a delivery: seven equally likely
// outcomes, one of which is a wicket. Five runs is never produced.
var ballOutcomes = []models.BallOutcome{
	models.OutcomeDotBall,
	models.OutcomeSingle,
	models.OutcomeDouble,
	models.OutcomeTriple,
	models.OutcomeFour,
	models.OutcomeSix,
	models.OutcomeWicket,
}

// outcomeRuns maps a run outcome to its run value
var outcomeRuns = map[models.BallOutcome]int{
	models.OutcomeDotBall: 0,
	models.OutcomeSingle:  1,
	models.OutcomeDouble:  2,
	models.OutcomeTriple:  3,
	models.OutcomeFour:    4,
	models.OutcomeSix:     6,
}

// InningsConfig holds the dependencies for one innings
type InningsConfig struct {
	// BattingTeam is the side at bat
	BattingTeam *models.Team

	// BowlingTeam is the side bowling
	BowlingTeam *models.Team

	// OverLimit is the maximum completed overs (default 2)
	OverLimit int

	// WicketLimit is the number of wickets that ends the innings (default 2)
	WicketLimit int

	// Roller supplies the random draw for each delivery
	Roller dice.Roller
}

// Innings is the ball-by-ball state machine for one team's batting effort.
// The batting order contains only batting-capable lineup members and the
// bowling order only bowling-capable members, so role-illegal events cannot
// arise from the rotation.
type Innings struct {
	battingTeam  *models.Team
	bowlingTeam  *models.Team
	battingOrder []*models.Player
	bowlingOrder []*models.Player

	striker        int
	nonStriker     int
	bowler         int
	previousBowler int

	runs          int
	wickets       int
	overs         int
	balls         int
	ballsThisOver int
	runsThisOver  int

	overLimit   int
	wicketLimit int

	roller dice.Roller
}

// NewInnings creates an innings for the given sides. Both teams must have a
// selected lineup able to field two batters and two bowlers.
func NewInnings(cfg *InningsConfig) (*Innings, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.BattingTeam == nil || cfg.BowlingTeam == nil {
		return nil, ErrNilTeam
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	battingOrder := cfg.BattingTeam.BattingOrder()
	bowlingOrder := cfg.BowlingTeam.BowlingOrder()
	if len(battingOrder) < 2 || len(bowlingOrder) < 2 {
		return nil, ErrShortLineup
	}

	overLimit := cfg.OverLimit
	if overLimit <= 0 {
		overLimit = DefaultOverLimit
	}
	wicketLimit := cfg.WicketLimit
	if wicketLimit <= 0 {
		wicketLimit = DefaultWicketLimit
	}

	return &Innings{
		battingTeam:    cfg.BattingTeam,
		bowlingTeam:    cfg.BowlingTeam,
		battingOrder:   battingOrder,
		bowlingOrder:   bowlingOrder,
		striker:        0,
		nonStriker:     1,
		bowler:         0,
		previousBowler: -1,
		overLimit:      overLimit,
		wicketLimit:    wicketLimit,
		roller:         cfg.Roller,
	}, nil
}

// SetBatters selects the opening striker and non-striker by name
func (i *Innings) SetBatters(striker, nonStriker string) error {
	if striker == nonStriker {
		return ErrSameBatter
	}

	strikerIdx, err := i.findBatter(striker)
	if err != nil {
		return err
	}
	nonStrikerIdx, err := i.findBatter(nonStriker)
	if err != nil {
		return err
	}

	i.striker = strikerIdx
	i.nonStriker = nonStrikerIdx
	return nil
}

// SetBowler selects the opening bowler by name
func (i *Innings) SetBowler(name string) error {
	for idx, p := range i.bowlingOrder {
		if p.Name == name {
			i.bowler = idx
			return nil
		}
	}
	return fmt.Errorf("bowler %q: %w", name, models.ErrPlayerNotInLineup)
}

func (i *Innings) findBatter(name string) (int, error) {
	for idx, p := range i.battingOrder {
		if p.Name == name {
			return idx, nil
		}
	}
	return 0, fmt.Errorf("batter %q: %w", name, models.ErrPlayerNotInLineup)
}

// Complete reports whether the innings has terminated: the wicket limit has
// been reached or the over limit completed
func (i *Innings) Complete() bool {
	return i.wickets >= i.wicketLimit || i.overs >= i.overLimit
}

// AdvanceOneBall executes one delivery and returns its commentary event.
// It is a no-op returning a nil event once the innings is complete.
func (i *Innings) AdvanceOneBall() (*models.BallEvent, error) {
	if i.Complete() {
		return nil, nil
	}

	outcome := ballOutcomes[i.roller.Roll(len(ballOutcomes))-1]
	striker := i.battingOrder[i.striker]
	bowler := i.bowlingOrder[i.bowler]

	event := &models.BallEvent{
		BallNumber: i.balls + 1,
		Outcome:    outcome,
		Striker:    striker.Name,
		Bowler:     bowler.Name,
	}

	if outcome == models.OutcomeWicket {
		i.wickets++
		if err := bowler.ApplyWicketTaken(); err != nil {
			return nil, err
		}
		i.replaceBatter()
	} else {
		runs := outcomeRuns[outcome]
		i.runs += runs
		i.runsThisOver += runs
		event.Runs = runs

		if err := striker.ApplyRuns(runs); err != nil {
			return nil, err
		}
		if err := striker.ApplyBallFaced(); err != nil {
			return nil, err
		}
		if err := bowler.ApplyRunsConceded(runs); err != nil {
			return nil, err
		}

		// singles and triples swap the batters' ends
		if runs%2 == 1 {
			i.rotateStrike()
		}
	}

	i.balls++
	i.ballsThisOver++
	if err := bowler.ApplyBallBowled(); err != nil {
		return nil, err
	}

	if i.ballsThisOver == ballsPerOver {
		if i.runsThisOver == 0 {
			if err := bowler.ApplyMaiden(); err != nil {
				return nil, err
			}
		}
		i.overs++
		i.ballsThisOver = 0
		i.runsThisOver = 0
		i.rotateBowler()
	}

	event.TotalRuns = i.runs
	event.TotalWickets = i.wickets
	event.Overs = i.overs
	event.BallsThisOver = i.ballsThisOver

	return event, nil
}

// rotateStrike swaps the batters' ends
func (i *Innings) rotateStrike() {
	i.striker, i.nonStriker = i.nonStriker, i.striker
}

// replaceBatter brings in the next batter after a wicket. The slot holding
// the higher index is replaced and the incoming batter takes index
// max(striker, nonStriker)+1. If the order is exhausted the last pair
// stands; termination is handled by the wicket limit.
func (i *Innings) replaceBatter() {
	next := i.striker
	if i.nonStriker > next {
		next = i.nonStriker
	}
	next++

	if next >= len(i.battingOrder) {
		return
	}

	if i.striker > i.nonStriker {
		i.striker = next
	} else {
		i.nonStriker = next
	}
}

// rotateBowler advances cyclically through the bowling order at the end of
// an over, skipping only the bowler who just finished
func (i *Innings) rotateBowler() {
	i.previousBowler = i.bowler
	next := i.bowler
	for {
		next = (next + 1) % len(i.bowlingOrder)
		if next != i.previousBowler {
			break
		}
	}
	i.bowler = next
}

// Runs returns the innings total
func (i *Innings) Runs() int {
	return i.runs
}

// Wickets returns the number of wickets lost
func (i *Innings) Wickets() int {
	return i.wickets
}

// Overs returns the number of completed overs
func (i *Innings) Overs() int {
	return i.overs
}

// Balls returns the total number of deliveries bowled
func (i *Innings) Balls() int {
	return i.balls
}

// BattingTeam returns the side at bat
func (i *Innings) BattingTeam() *models.Team {
	return i.battingTeam
}

// Score returns the read-only view of the innings
func (i *Innings) Score() models.InningsScore {
	return models.InningsScore{
		BattingTeam: i.battingTeam.Name,
		Runs:        i.runs,
		Wickets:     i.wickets,
		Overs:       i.overs,
		Balls:       i.balls,
	}
}

// StandoutPlayer returns the participant with the highest match credit,
// scanning the batting order then the bowling order; the first maximum wins
func (i *Innings) StandoutPlayer() (*models.Player, error) {
	var best *models.Player
	bestCredit := -1

	for _, p := range i.battingOrder {
		if p.MatchCredit() > bestCredit {
			bestCredit = p.MatchCredit()
			best = p
		}
	}
	for _, p := range i.bowlingOrder {
		if p.MatchCredit() > bestCredit {
			bestCredit = p.MatchCredit()
			best = p
		}
	}

	if best == nil {
		return nil, ErrNoPlayers
	}
	return best, nil
}
