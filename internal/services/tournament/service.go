package tournament

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/common/clock"
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/common/uuid"
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/dice"
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/engine"
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/models"
	standingsRepo "github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/repositories/standings"
)

const (
	// DefaultMaxTeams is the default tournament size
	DefaultMaxTeams = 4

	// DefaultRosterSize is the default number of players per team
	DefaultRosterSize = 5
)

// fixture pairs a generated match with its selection state and the
// commentary collected while it plays
type fixture struct {
	descriptor *Fixture
	match      *engine.Match
	homeTeam   *models.Team
	awayTeam   *models.Team

	firstConfigured  bool
	secondConfigured bool

	firstEvents  []*models.BallEvent
	secondEvents []*models.BallEvent
}

// service implements the Service interface
type service struct {
	config        *Config
	standingsRepo standingsRepo.Repository
	roller        dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID

	tournamentID   string
	tournamentName string
	teams          []*models.Team
	teamsByID      map[string]*models.Team
	players        []*models.Player
	playerTeams    map[string]string
	fixtures       []*fixture
	cursor         int
	completed      bool
}

// New creates a new tournament service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.StandingsRepo == nil {
		return nil, ErrNilStandingsRepo
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.MaxTeams <= 0 {
		cfg.MaxTeams = DefaultMaxTeams
	}
	if cfg.RosterSize <= 0 {
		cfg.RosterSize = DefaultRosterSize
	}
	if cfg.OverLimit <= 0 {
		cfg.OverLimit = engine.DefaultOverLimit
	}
	if cfg.WicketLimit <= 0 {
		cfg.WicketLimit = engine.DefaultWicketLimit
	}

	return &service{
		config:        cfg,
		standingsRepo: cfg.StandingsRepo,
		roller:        cfg.Roller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		teamsByID:     make(map[string]*models.Team),
		playerTeams:   make(map[string]string),
	}, nil
}

// CreateTournament names the tournament and assigns its identifier
func (s *service) CreateTournament(ctx context.Context, input *CreateTournamentInput) (*CreateTournamentOutput, error) {
	if s.tournamentID != "" {
		return nil, ErrTournamentExists
	}

	s.tournamentID = s.uuidGenerator.NewUUID()
	s.tournamentName = input.Name

	return &CreateTournamentOutput{
		TournamentID: s.tournamentID,
	}, nil
}

// AddTeam registers a team before fixtures are generated
func (s *service) AddTeam(ctx context.Context, input *AddTeamInput) (*AddTeamOutput, error) {
	if s.tournamentID == "" {
		return nil, ErrTournamentNotCreated
	}
	if s.fixtures != nil {
		return nil, ErrFixturesGenerated
	}
	if len(s.teams) >= s.config.MaxTeams {
		return nil, ErrTeamLimitReached
	}

	team := &models.Team{
		ID:   s.uuidGenerator.NewUUID(),
		Name: input.Name,
		City: input.City,
	}

	s.teams = append(s.teams, team)
	s.teamsByID[team.ID] = team

	return &AddTeamOutput{
		TeamID: team.ID,
	}, nil
}

// AddPlayer registers a player on a team roster
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if s.tournamentID == "" {
		return nil, ErrTournamentNotCreated
	}

	team, ok := s.teamsByID[input.TeamID]
	if !ok {
		return nil, ErrTeamNotFound
	}
	if len(team.Roster) >= s.config.RosterSize {
		return nil, ErrRosterFull
	}

	switch input.Role {
	case models.RoleBatsman, models.RoleBowler, models.RoleAllRounder:
	default:
		return nil, ErrInvalidRole
	}

	// player names are the lookup key for innings selections
	for _, existing := range team.Roster {
		if existing.Name == input.Name {
			return nil, ErrDuplicatePlayerName
		}
	}

	player := &models.Player{
		ID:   s.uuidGenerator.NewUUID(),
		Name: input.Name,
		Age:  input.Age,
		Role: input.Role,
	}

	team.AddPlayer(player)
	s.players = append(s.players, player)
	s.playerTeams[player.ID] = team.Name

	return &AddPlayerOutput{
		PlayerID: player.ID,
	}, nil
}

// GenerateFixtures validates every lineup and produces one match per
// unordered pair of teams, in stable order: outer loop over team index i,
// inner over j > i
func (s *service) GenerateFixtures(ctx context.Context, input *GenerateFixturesInput) (*GenerateFixturesOutput, error) {
	if s.tournamentID == "" {
		return nil, ErrTournamentNotCreated
	}
	if s.fixtures != nil {
		return nil, ErrFixturesGenerated
	}
	if len(s.teams) < 2 {
		return nil, ErrNotEnoughTeams
	}

	for _, team := range s.teams {
		if err := team.SelectLineup(); err != nil {
			return nil, fmt.Errorf("team %s: %w", team.Name, err)
		}
	}

	date := s.clock.Now().Format("2006-01-02")

	fixtures := make([]*fixture, 0, len(s.teams)*(len(s.teams)-1)/2)
	for i := 0; i < len(s.teams); i++ {
		for j := i + 1; j < len(s.teams); j++ {
			home, away := s.teams[i], s.teams[j]

			f := &fixture{
				descriptor: &Fixture{
					MatchID:  s.uuidGenerator.NewUUID(),
					HomeTeam: home.Name,
					AwayTeam: away.Name,
					Venue:    home.City,
					Date:     date,
				},
				homeTeam: home,
				awayTeam: away,
			}

			match, err := engine.NewMatch(&engine.MatchConfig{
				ID:          f.descriptor.MatchID,
				HomeTeam:    home,
				AwayTeam:    away,
				Venue:       f.descriptor.Venue,
				Date:        f.descriptor.Date,
				OverLimit:   s.config.OverLimit,
				WicketLimit: s.config.WicketLimit,
				Roller:      s.roller,
				Commentary: func(inningsNumber int, event *models.BallEvent) {
					if inningsNumber == 1 {
						f.firstEvents = append(f.firstEvents, event)
					} else {
						f.secondEvents = append(f.secondEvents, event)
					}
				},
			})
			if err != nil {
				return nil, fmt.Errorf("fixture %s vs %s: %w", home.Name, away.Name, err)
			}
			f.match = match

			fixtures = append(fixtures, f)
		}
	}

	s.fixtures = fixtures

	output := &GenerateFixturesOutput{}
	for _, f := range fixtures {
		output.Fixtures = append(output.Fixtures, f.descriptor)
	}
	return output, nil
}

// ConfigureInnings records the opening striker, non-striker and bowler for
// one innings of one fixture. Names are validated against the proper order
// lists; an unresolved name carries the closest roster suggestion.
func (s *service) ConfigureInnings(ctx context.Context, input *ConfigureInningsInput) (*ConfigureInningsOutput, error) {
	if s.fixtures == nil {
		return nil, ErrFixturesNotGenerated
	}

	f, err := s.findFixture(input.MatchID)
	if err != nil {
		return nil, err
	}

	var innings *engine.Innings
	var battingTeam, bowlingTeam *models.Team
	switch input.InningsNumber {
	case 1:
		innings = f.match.FirstInnings()
		battingTeam, bowlingTeam = f.homeTeam, f.awayTeam
	case 2:
		innings = f.match.SecondInnings()
		battingTeam, bowlingTeam = f.awayTeam, f.homeTeam
	default:
		return nil, ErrInvalidInningsNumber
	}

	batterNames := playerNames(battingTeam.BattingOrder())
	bowlerNames := playerNames(bowlingTeam.BowlingOrder())

	if err := resolveName(input.Striker, batterNames); err != nil {
		return nil, err
	}
	if err := resolveName(input.NonStriker, batterNames); err != nil {
		return nil, err
	}
	if err := resolveName(input.Bowler, bowlerNames); err != nil {
		return nil, err
	}

	if err := innings.SetBatters(input.Striker, input.NonStriker); err != nil {
		return nil, err
	}
	if err := innings.SetBowler(input.Bowler); err != nil {
		return nil, err
	}

	if input.InningsNumber == 1 {
		f.firstConfigured = true
	} else {
		f.secondConfigured = true
	}

	return &ConfigureInningsOutput{}, nil
}

// PlayNextMatch executes the fixture at the round cursor. When the last
// fixture completes, the tournament is marked complete and the final
// standings snapshot is persisted.
func (s *service) PlayNextMatch(ctx context.Context, input *PlayNextMatchInput) (*PlayNextMatchOutput, error) {
	if s.fixtures == nil {
		return nil, ErrFixturesNotGenerated
	}
	if s.cursor >= len(s.fixtures) {
		return nil, ErrAllMatchesPlayed
	}

	f := s.fixtures[s.cursor]
	if !f.firstConfigured || !f.secondConfigured {
		return nil, ErrMatchNotConfigured
	}

	if err := f.match.Play(); err != nil {
		return nil, err
	}
	s.cursor++

	summary, err := f.match.Summary()
	if err != nil {
		return nil, err
	}

	if s.cursor == len(s.fixtures) {
		s.completed = true
		if err := s.saveSnapshot(ctx); err != nil {
			return nil, err
		}
	}

	return &PlayNextMatchOutput{
		Summary:             summary,
		FirstInningsEvents:  f.firstEvents,
		SecondInningsEvents: f.secondEvents,
	}, nil
}

// PlayAllMatches runs every remaining fixture in generated order
func (s *service) PlayAllMatches(ctx context.Context, input *PlayAllMatchesInput) (*PlayAllMatchesOutput, error) {
	if s.fixtures == nil {
		return nil, ErrFixturesNotGenerated
	}

	output := &PlayAllMatchesOutput{}
	for s.cursor < len(s.fixtures) {
		matchOutput, err := s.PlayNextMatch(ctx, &PlayNextMatchInput{})
		if err != nil {
			return nil, err
		}
		output.Matches = append(output.Matches, matchOutput)
	}

	return output, nil
}

// GetPointsTable returns the standings sorted descending by points.
// Ties keep team insertion order; no secondary key is modeled.
func (s *service) GetPointsTable(ctx context.Context, input *GetPointsTableInput) (*GetPointsTableOutput, error) {
	if s.tournamentID == "" {
		return nil, ErrTournamentNotCreated
	}

	return &GetPointsTableOutput{
		Table: s.pointsTable(),
	}, nil
}

// GetPlayerStatistics returns the cumulative per-player statistics table
func (s *service) GetPlayerStatistics(ctx context.Context, input *GetPlayerStatisticsInput) (*GetPlayerStatisticsOutput, error) {
	if s.tournamentID == "" {
		return nil, ErrTournamentNotCreated
	}

	output := &GetPlayerStatisticsOutput{}
	for _, p := range s.players {
		output.Players = append(output.Players, s.statLine(p))
	}
	return output, nil
}

// GetTournamentMVP returns the player with the highest cumulative credit,
// first maximum winning ties. Not available before any match has been played.
func (s *service) GetTournamentMVP(ctx context.Context, input *GetTournamentMVPInput) (*GetTournamentMVPOutput, error) {
	if s.cursor == 0 {
		return nil, ErrNotAvailable
	}

	var best *models.Player
	bestCredit := -1
	for _, p := range s.players {
		if p.TotalCredit() > bestCredit {
			bestCredit = p.TotalCredit()
			best = p
		}
	}
	if best == nil {
		return nil, ErrNotAvailable
	}

	return &GetTournamentMVPOutput{
		Player: s.statLine(best),
	}, nil
}

// GetChampion returns the top of the final points table.
// Not available until every fixture has been played.
func (s *service) GetChampion(ctx context.Context, input *GetChampionInput) (*GetChampionOutput, error) {
	if !s.completed {
		return nil, ErrNotAvailable
	}

	table := s.pointsTable()
	return &GetChampionOutput{
		Team: table[0],
	}, nil
}

// GetMatchSummary returns the result view of a played match
func (s *service) GetMatchSummary(ctx context.Context, input *GetMatchSummaryInput) (*GetMatchSummaryOutput, error) {
	if s.fixtures == nil {
		return nil, ErrFixturesNotGenerated
	}

	f, err := s.findFixture(input.MatchID)
	if err != nil {
		return nil, err
	}
	if !f.match.Played() {
		return nil, ErrMatchNotPlayed
	}

	summary, err := f.match.Summary()
	if err != nil {
		return nil, err
	}

	return &GetMatchSummaryOutput{
		Summary: summary,
	}, nil
}

func (s *service) findFixture(matchID string) (*fixture, error) {
	for _, f := range s.fixtures {
		if f.descriptor.MatchID == matchID {
			return f, nil
		}
	}
	return nil, ErrMatchNotFound
}

func (s *service) pointsTable() []*models.StandingsRow {
	sorted := make([]*models.Team, len(s.teams))
	copy(sorted, s.teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})

	table := make([]*models.StandingsRow, 0, len(sorted))
	for _, t := range sorted {
		table = append(table, &models.StandingsRow{
			TeamName:      t.Name,
			Points:        t.Points,
			Played:        t.MatchesPlayed,
			Won:           t.MatchesWon,
			Lost:          t.MatchesLost,
			Tied:          t.MatchesTied,
			WinPercentage: t.WinPercentage(),
		})
	}
	return table
}

func (s *service) statLine(p *models.Player) *models.PlayerStatLine {
	return &models.PlayerStatLine{
		PlayerID:     p.ID,
		Name:         p.Name,
		Team:         s.playerTeams[p.ID],
		Role:         p.Role,
		Runs:         p.TotalBatting.Runs,
		BallsFaced:   p.TotalBatting.BallsFaced,
		Fours:        p.TotalBatting.Fours,
		Sixes:        p.TotalBatting.Sixes,
		Wickets:      p.TotalBowling.Wickets,
		BallsBowled:  p.TotalBowling.BallsBowled,
		RunsConceded: p.TotalBowling.RunsConceded,
		Maidens:      p.TotalBowling.Maidens,
		Credits:      p.TotalCredit(),
		StrikeRate:   p.StrikeRate(),
		EconomyRate:  p.EconomyRate(),
	}
}

// saveSnapshot persists the final state of the completed tournament
func (s *service) saveSnapshot(ctx context.Context) error {
	table := s.pointsTable()

	mvp, err := s.GetTournamentMVP(ctx, &GetTournamentMVPInput{})
	if err != nil {
		return err
	}

	stats, err := s.GetPlayerStatistics(ctx, &GetPlayerStatisticsInput{})
	if err != nil {
		return err
	}

	snapshot := &models.StandingsSnapshot{
		TournamentID:          s.tournamentID,
		TournamentName:        s.tournamentName,
		Table:                 table,
		PlayerStats:           stats.Players,
		Champion:              table[0].TeamName,
		PlayerOfTheTournament: mvp.Player.Name,
	}

	if err := s.standingsRepo.SaveSnapshot(ctx, &standingsRepo.SaveSnapshotInput{
		Snapshot: snapshot,
	}); err != nil {
		return fmt.Errorf("failed to save standings snapshot: %w", err)
	}

	return nil
}

// playerNames maps an order list to its display names
func playerNames(players []*models.Player) []string {
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	return names
}

// resolveName checks a selection against the eligible names. On a miss the
// error carries the closest candidate by Levenshtein distance.
func resolveName(name string, candidates []string) error {
	for _, c := range candidates {
		if c == name {
			return nil
		}
	}

	if closest := closestName(name, candidates); closest != "" {
		return fmt.Errorf("%q: %w (closest match: %q)", name, models.ErrPlayerNotInLineup, closest)
	}
	return fmt.Errorf("%q: %w", name, models.ErrPlayerNotInLineup)
}

// closestName returns the candidate with the smallest Levenshtein distance
func closestName(name string, candidates []string) string {
	best := ""
	bestDistance := -1
	for _, c := range candidates {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(c))
		if bestDistance == -1 || distance < bestDistance {
			bestDistance = distance
			best = c
		}
	}
	return best
}
