package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/common/clock"
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/common/uuid"
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/config"
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/dice"
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/handlers/console"
	"github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/models"
	standingsRepo "github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/repositories/standings"
	tournamentService "github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/services/tournament"
)

// teamSeed describes one demo team and its roster
type teamSeed struct {
	name    string
	city    string
	players []playerSeed
}

type playerSeed struct {
	name string
	age  int
	role models.Role
}

// demoTeams is the default four-team setup: five players per side,
// two batsmen, two bowlers and an all-rounder
var demoTeams = []teamSeed{
	{
		name: "Mumbai Indians", city: "Mumbai",
		players: []playerSeed{
			{"Rohit", 36, models.RoleBatsman},
			{"Ishan", 25, models.RoleBatsman},
			{"Bumrah", 30, models.RoleBowler},
			{"Chahar", 31, models.RoleBowler},
			{"Hardik", 30, models.RoleAllRounder},
		},
	},
	{
		name: "Chennai Super Kings", city: "Chennai",
		players: []playerSeed{
			{"Ruturaj", 27, models.RoleBatsman},
			{"Rahane", 35, models.RoleBatsman},
			{"Deepak", 28, models.RoleBowler},
			{"Pathirana", 21, models.RoleBowler},
			{"Jadeja", 35, models.RoleAllRounder},
		},
	},
	{
		name: "Royal Challengers", city: "Bangalore",
		players: []playerSeed{
			{"Virat", 35, models.RoleBatsman},
			{"Faf", 39, models.RoleBatsman},
			{"Siraj", 29, models.RoleBowler},
			{"Hazlewood", 32, models.RoleBowler},
			{"Maxwell", 35, models.RoleAllRounder},
		},
	},
	{
		name: "Kolkata Knight Riders", city: "Kolkata",
		players: []playerSeed{
			{"Shreyas", 29, models.RoleBatsman},
			{"Rinku", 26, models.RoleBatsman},
			{"Starc", 34, models.RoleBowler},
			{"Varun", 32, models.RoleBowler},
			{"Russell", 35, models.RoleAllRounder},
		},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Standings sink: Redis when configured, in-process memory otherwise
	var repo standingsRepo.Repository
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})

		repo, err = standingsRepo.NewRedis(&standingsRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create standings repository: %v", err)
		}
	} else {
		repo = standingsRepo.NewMemory()
	}

	// Initialize the outcome roller, seeded from config when set
	roller := dice.New(&dice.Config{Seed: cfg.Tournament.Seed})

	svc, err := tournamentService.New(&tournamentService.Config{
		StandingsRepo: repo,
		Roller:        roller,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create tournament service: %v", err)
	}

	ctx := context.Background()
	renderer := console.New(os.Stdout)

	fmt.Println("=== IPL-like Tournament System (Simplified) ===")
	fmt.Println("4 teams, 5 players each, 2 overs, 2 wickets")
	fmt.Println()

	if err := run(ctx, svc, renderer, cfg.Tournament.Name); err != nil {
		log.Fatalf("Tournament failed: %v", err)
	}

	fmt.Println("\nTournament completed successfully!")
}

// run performs the setup collaborator's job: seed teams and players, pick
// opening selections, then drive the simulation and render its views
func run(ctx context.Context, svc tournamentService.Service, renderer *console.Renderer, name string) error {
	if _, err := svc.CreateTournament(ctx, &tournamentService.CreateTournamentInput{
		Name: name,
	}); err != nil {
		return err
	}

	// Opening selections per team: first two batting-capable players open
	// the batting, the first bowling-capable player opens the bowling
	openers := make(map[string][2]string)
	openingBowlers := make(map[string]string)

	for _, seed := range demoTeams {
		teamOutput, err := svc.AddTeam(ctx, &tournamentService.AddTeamInput{
			Name: seed.name,
			City: seed.city,
		})
		if err != nil {
			return err
		}

		var batters, bowlers []string
		for _, p := range seed.players {
			if _, err := svc.AddPlayer(ctx, &tournamentService.AddPlayerInput{
				TeamID: teamOutput.TeamID,
				Name:   p.name,
				Age:    p.age,
				Role:   p.role,
			}); err != nil {
				return err
			}

			if p.role == models.RoleBatsman || p.role == models.RoleAllRounder {
				batters = append(batters, p.name)
			}
			if p.role == models.RoleBowler || p.role == models.RoleAllRounder {
				bowlers = append(bowlers, p.name)
			}
		}

		openers[seed.name] = [2]string{batters[0], batters[1]}
		openingBowlers[seed.name] = bowlers[0]
	}

	fixturesOutput, err := svc.GenerateFixtures(ctx, &tournamentService.GenerateFixturesInput{})
	if err != nil {
		return err
	}

	for _, fixture := range fixturesOutput.Fixtures {
		homeOpeners := openers[fixture.HomeTeam]
		awayOpeners := openers[fixture.AwayTeam]

		if _, err := svc.ConfigureInnings(ctx, &tournamentService.ConfigureInningsInput{
			MatchID:       fixture.MatchID,
			InningsNumber: 1,
			Striker:       homeOpeners[0],
			NonStriker:    homeOpeners[1],
			Bowler:        openingBowlers[fixture.AwayTeam],
		}); err != nil {
			return err
		}

		if _, err := svc.ConfigureInnings(ctx, &tournamentService.ConfigureInningsInput{
			MatchID:       fixture.MatchID,
			InningsNumber: 2,
			Striker:       awayOpeners[0],
			NonStriker:    awayOpeners[1],
			Bowler:        openingBowlers[fixture.HomeTeam],
		}); err != nil {
			return err
		}
	}

	for round := 1; ; round++ {
		matchOutput, err := svc.PlayNextMatch(ctx, &tournamentService.PlayNextMatchInput{})
		if errors.Is(err, tournamentService.ErrAllMatchesPlayed) {
			break
		}
		if err != nil {
			return err
		}

		fmt.Printf("\n=== ROUND %d ===\n", round)
		renderer.RenderMatchHeader(matchOutput.Summary)

		fmt.Printf("=== FIRST INNINGS: %s batting ===\n", matchOutput.Summary.HomeTeam)
		for _, event := range matchOutput.FirstInningsEvents {
			renderer.RenderBall(event)
		}

		fmt.Printf("=== SECOND INNINGS: %s batting ===\n", matchOutput.Summary.AwayTeam)
		for _, event := range matchOutput.SecondInningsEvents {
			renderer.RenderBall(event)
		}

		renderer.RenderMatchSummary(matchOutput.Summary)
	}

	statsOutput, err := svc.GetPlayerStatistics(ctx, &tournamentService.GetPlayerStatisticsInput{})
	if err != nil {
		return err
	}
	renderer.RenderPlayerStats(statsOutput.Players)

	tableOutput, err := svc.GetPointsTable(ctx, &tournamentService.GetPointsTableInput{})
	if err != nil {
		return err
	}
	renderer.RenderPointsTable(tableOutput.Table)

	championOutput, err := svc.GetChampion(ctx, &tournamentService.GetChampionInput{})
	if err != nil {
		return err
	}

	mvpOutput, err := svc.GetTournamentMVP(ctx, &tournamentService.GetTournamentMVPInput{})
	if err != nil {
		return err
	}

	renderer.RenderAwards(championOutput.Team.TeamName, mvpOutput.Player.Name)

	return nil
}
