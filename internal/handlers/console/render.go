package console

import (
	"fmt"
	"io"

	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/models"
)

// Renderer formats simulation output for a console. The simulation core has
// no dependency on it; everything it prints comes from the read-only views.
type Renderer struct {
	w io.Writer
}

// New creates a renderer writing to w
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// RenderBall prints the commentary line for one delivery
func (r *Renderer) RenderBall(event *models.BallEvent) {
	fmt.Fprintf(r.w, "Ball %d: ", event.BallNumber)

	switch event.Outcome {
	case models.OutcomeWicket:
		fmt.Fprintf(r.w, "WICKET! %s is out! Bowled by %s\n", event.Striker, event.Bowler)
	case models.OutcomeDotBall:
		fmt.Fprintf(r.w, "Dot ball. %s defends\n", event.Striker)
	case models.OutcomeSingle:
		fmt.Fprintf(r.w, "Single. %s takes a quick run\n", event.Striker)
	case models.OutcomeDouble:
		fmt.Fprintf(r.w, "Two runs. %s pushes for a couple\n", event.Striker)
	case models.OutcomeTriple:
		fmt.Fprintf(r.w, "Three runs. %s runs hard for three\n", event.Striker)
	case models.OutcomeFour:
		fmt.Fprintf(r.w, "FOUR! %s hits a boundary!\n", event.Striker)
	case models.OutcomeSix:
		fmt.Fprintf(r.w, "SIX! %s hits it out of the park!\n", event.Striker)
	}

	fmt.Fprintf(r.w, "Score: %s\n\n", event.ScoreLine())
}

// RenderMatchHeader prints the pre-match banner
func (r *Renderer) RenderMatchHeader(summary *models.MatchSummary) {
	fmt.Fprintf(r.w, "\n=== %s vs %s ===\n", summary.HomeTeam, summary.AwayTeam)
	fmt.Fprintf(r.w, "Venue: %s | Date: %s\n\n", summary.Venue, summary.Date)
}

// RenderMatchSummary prints the post-match scorecard and result
func (r *Renderer) RenderMatchSummary(summary *models.MatchSummary) {
	fmt.Fprintf(r.w, "\n=== MATCH SUMMARY ===\n")
	fmt.Fprintf(r.w, "%s: %d/%d\n", summary.HomeTeam, summary.FirstInnings.Runs, summary.FirstInnings.Wickets)
	fmt.Fprintf(r.w, "%s: %d/%d\n", summary.AwayTeam, summary.SecondInnings.Runs, summary.SecondInnings.Wickets)

	if summary.Winner != "" {
		fmt.Fprintf(r.w, "Result: %s won!\n", summary.Winner)
	} else {
		fmt.Fprintf(r.w, "Result: Match tied!\n")
	}

	fmt.Fprintf(r.w, "Player of the Match: %s\n", summary.PlayerOfTheMatch)
	fmt.Fprintf(r.w, "=========================================\n\n")
}

// RenderPlayerStats prints the cumulative per-player statistics table
func (r *Renderer) RenderPlayerStats(players []*models.PlayerStatLine) {
	fmt.Fprintf(r.w, "\n=== FINAL PLAYER STATISTICS ===\n")
	fmt.Fprintf(r.w, "%-20s %8s %8s %8s %8s %8s\n", "Name", "Runs", "Balls", "4s/6s", "Wickets", "Credits")
	fmt.Fprintf(r.w, "------------------------------------------------------------------\n")

	for _, p := range players {
		boundaries := fmt.Sprintf("%d/%d", p.Fours, p.Sixes)
		fmt.Fprintf(r.w, "%-20s %8d %8d %8s %8d %8d\n",
			p.Name, p.Runs, p.BallsFaced, boundaries, p.Wickets, p.Credits)
	}
}

// RenderPointsTable prints the sorted standings
func (r *Renderer) RenderPointsTable(table []*models.StandingsRow) {
	fmt.Fprintf(r.w, "\n=== FINAL POINTS TABLE ===\n")
	for i, row := range table {
		fmt.Fprintf(r.w, "%d. %-25s %d points (W%d L%d T%d, %.1f%%)\n",
			i+1, row.TeamName, row.Points, row.Won, row.Lost, row.Tied, row.WinPercentage)
	}
}

// RenderAwards prints the tournament awards
func (r *Renderer) RenderAwards(champion, mvp string) {
	fmt.Fprintf(r.w, "\n=== TOURNAMENT AWARDS ===\n")
	fmt.Fprintf(r.w, "Champion: %s\n", champion)
	fmt.Fprintf(r.w, "Player of the Tournament: %s\n", mvp)
}
