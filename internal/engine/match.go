package engine

import (
	"errors"

	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/dice"
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/models"
)

const (
	// PointsForWin is the championship points awarded to the winner
	PointsForWin = 2

	// PointsForTie is the championship points awarded to each side of a tie
	PointsForTie = 1
)

// Match errors
var (
	ErrMatchAlreadyPlayed = errors.New("match has already been played")
	ErrMatchNotPlayed     = errors.New("match has not been played yet")
)

// CommentarySink receives the commentary event for every delivery.
// inningsNumber is 1 for the home side's innings and 2 for the away side's.
type CommentarySink func(inningsNumber int, event *models.BallEvent)

// MatchConfig holds the dependencies for one match
type MatchConfig struct {
	// ID is the unique identifier for the match
	ID string

	// HomeTeam bats first
	HomeTeam *models.Team

	// AwayTeam bats second
	AwayTeam *models.Team

	// Venue is where the match is played
	Venue string

	// Date is the match date
	Date string

	// OverLimit is the maximum completed overs per innings (default 2)
	OverLimit int

	// WicketLimit is the wickets that end an innings (default 2)
	WicketLimit int

	// Roller supplies the random draw for each delivery
	Roller dice.Roller

	// Commentary receives ball-by-ball events; may be nil
	Commentary CommentarySink
}

// Match composes two innings: the home team bats first, the away team
// second. Once played, the match is immutable.
type Match struct {
	id       string
	homeTeam *models.Team
	awayTeam *models.Team
	venue    string
	date     string

	first  *Innings
	second *Innings

	result   models.MatchOutcome
	standout *models.Player
	played   bool

	commentary CommentarySink
}

// NewMatch creates a match and its two innings
func NewMatch(cfg *MatchConfig) (*Match, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	first, err := NewInnings(&InningsConfig{
		BattingTeam: cfg.HomeTeam,
		BowlingTeam: cfg.AwayTeam,
		OverLimit:   cfg.OverLimit,
		WicketLimit: cfg.WicketLimit,
		Roller:      cfg.Roller,
	})
	if err != nil {
		return nil, err
	}

	second, err := NewInnings(&InningsConfig{
		BattingTeam: cfg.AwayTeam,
		BowlingTeam: cfg.HomeTeam,
		OverLimit:   cfg.OverLimit,
		WicketLimit: cfg.WicketLimit,
		Roller:      cfg.Roller,
	})
	if err != nil {
		return nil, err
	}

	return &Match{
		id:         cfg.ID,
		homeTeam:   cfg.HomeTeam,
		awayTeam:   cfg.AwayTeam,
		venue:      cfg.Venue,
		date:       cfg.Date,
		first:      first,
		second:     second,
		commentary: cfg.Commentary,
	}, nil
}

// ID returns the match identifier
func (m *Match) ID() string {
	return m.id
}

// FirstInnings returns the home side's innings
func (m *Match) FirstInnings() *Innings {
	return m.first
}

// SecondInnings returns the away side's innings
func (m *Match) SecondInnings() *Innings {
	return m.second
}

// Played reports whether the match has been executed
func (m *Match) Played() bool {
	return m.played
}

// Play runs both innings to completion, resolves the result, applies points
// and team records, and picks the player of the match
func (m *Match) Play() error {
	if m.played {
		return ErrMatchAlreadyPlayed
	}

	// match-scoped player state starts from zero
	for _, p := range m.homeTeam.Lineup {
		p.ResetMatchState()
	}
	for _, p := range m.awayTeam.Lineup {
		p.ResetMatchState()
	}

	if err := m.runInnings(1, m.first); err != nil {
		return err
	}
	if err := m.runInnings(2, m.second); err != nil {
		return err
	}

	m.resolveResult()

	standout, err := m.resolveStandout()
	if err != nil {
		return err
	}
	m.standout = standout

	m.played = true
	return nil
}

func (m *Match) runInnings(number int, innings *Innings) error {
	for !innings.Complete() {
		event, err := innings.AdvanceOneBall()
		if err != nil {
			return err
		}
		if event != nil && m.commentary != nil {
			m.commentary(number, event)
		}
	}
	return nil
}

// resolveResult classifies the match from the home team's perspective and
// applies points and win/loss/tie records to both teams
func (m *Match) resolveResult() {
	homeRuns := m.first.Runs()
	awayRuns := m.second.Runs()

	switch {
	case homeRuns > awayRuns:
		m.result = models.OutcomeWin
		m.homeTeam.RecordMatchOutcome(models.OutcomeWin)
		m.awayTeam.RecordMatchOutcome(models.OutcomeLoss)
		m.homeTeam.AddPoints(PointsForWin)
	case awayRuns > homeRuns:
		m.result = models.OutcomeLoss
		m.homeTeam.RecordMatchOutcome(models.OutcomeLoss)
		m.awayTeam.RecordMatchOutcome(models.OutcomeWin)
		m.awayTeam.AddPoints(PointsForWin)
	default:
		m.result = models.OutcomeTie
		m.homeTeam.RecordMatchOutcome(models.OutcomeTie)
		m.awayTeam.RecordMatchOutcome(models.OutcomeTie)
		m.homeTeam.AddPoints(PointsForTie)
		m.awayTeam.AddPoints(PointsForTie)
	}
}

// resolveStandout compares the two innings standouts by match credit.
// Equal credit favors the first innings.
func (m *Match) resolveStandout() (*models.Player, error) {
	firstBest, err := m.first.StandoutPlayer()
	if err != nil {
		return nil, err
	}
	secondBest, err := m.second.StandoutPlayer()
	if err != nil {
		return nil, err
	}

	if secondBest.MatchCredit() > firstBest.MatchCredit() {
		return secondBest, nil
	}
	return firstBest, nil
}

// Result returns the outcome from the home team's perspective
func (m *Match) Result() (models.MatchOutcome, error) {
	if !m.played {
		return "", ErrMatchNotPlayed
	}
	return m.result, nil
}

// StandoutPlayer returns the player of the match
func (m *Match) StandoutPlayer() (*models.Player, error) {
	if !m.played {
		return nil, ErrMatchNotPlayed
	}
	return m.standout, nil
}

// Winner returns the winning team, or nil on a tie
func (m *Match) Winner() *models.Team {
	if !m.played {
		return nil
	}
	switch m.result {
	case models.OutcomeWin:
		return m.homeTeam
	case models.OutcomeLoss:
		return m.awayTeam
	}
	return nil
}

// Summary returns the read-only view of a completed match
func (m *Match) Summary() (*models.MatchSummary, error) {
	if !m.played {
		return nil, ErrMatchNotPlayed
	}

	summary := &models.MatchSummary{
		MatchID:          m.id,
		HomeTeam:         m.homeTeam.Name,
		AwayTeam:         m.awayTeam.Name,
		Venue:            m.venue,
		Date:             m.date,
		FirstInnings:     m.first.Score(),
		SecondInnings:    m.second.Score(),
		Result:           m.result,
		PlayerOfTheMatch: m.standout.Name,
	}

	if winner := m.Winner(); winner != nil {
		summary.Winner = winner.Name
	}

	return summary, nil
}
