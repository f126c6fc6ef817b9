package models

import "fmt"

// BallOutcome classifies the result of one delivery
type BallOutcome string

const (
	// OutcomeDotBall indicates no runs were scored
	OutcomeDotBall BallOutcome = "dot_ball"

	// OutcomeSingle indicates one run was scored
	OutcomeSingle BallOutcome = "single"

	// OutcomeDouble indicates two runs were scored
	OutcomeDouble BallOutcome = "double"

	// OutcomeTriple indicates three runs were scored
	OutcomeTriple BallOutcome = "triple"

	// OutcomeFour indicates a boundary four
	OutcomeFour BallOutcome = "four"

	// OutcomeSix indicates a boundary six
	OutcomeSix BallOutcome = "six"

	// OutcomeWicket indicates the striker was dismissed
	OutcomeWicket BallOutcome = "wicket"
)

// BallEvent is the structured commentary record emitted for every delivery.
// The simulation core fills it in; rendering is left to the caller.
type BallEvent struct {
	// BallNumber is the 1-based delivery number within the innings
	BallNumber int

	// Outcome classifies the delivery
	Outcome BallOutcome

	// Runs is the number of runs scored off the delivery
	Runs int

	// Striker is the name of the batter on strike
	Striker string

	// Bowler is the name of the bowler
	Bowler string

	// TotalRuns is the innings score after the delivery
	TotalRuns int

	// TotalWickets is the innings wicket count after the delivery
	TotalWickets int

	// Overs is the number of completed overs after the delivery
	Overs int

	// BallsThisOver is the delivery count within the current over
	BallsThisOver int
}

// ScoreLine formats the running score as "runs/wickets (overs.balls)"
func (e *BallEvent) ScoreLine() string {
	return fmt.Sprintf("%d/%d (%d.%d)", e.TotalRuns, e.TotalWickets, e.Overs, e.BallsThisOver)
}
