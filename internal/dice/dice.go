package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/Tusarsinghnathawat/IPL-like-Tournament-Simulator/internal/dice Roller

// Roller provides the random draws that decide ball outcomes. Injecting it
// keeps simulations reproducible under test.
type Roller interface {
	// Roll returns a uniform value in [1, sides]
	Roll(sides int) int
}

// Config for the default roller
type Config struct {
	// Optional seed for reproducible runs
	Seed int64
}

// DefaultRoller implements Roller with a seeded PRNG
type DefaultRoller struct {
	random *rand.Rand
}

// New creates a new roller, seeded from the config or the clock
func New(cfg *Config) *DefaultRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &DefaultRoller{
		random: rand.New(source),
	}
}

// Roll returns a uniform value in [1, sides]
func (r *DefaultRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}
