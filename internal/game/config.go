package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/dicegolf/internal/dice"
	"github.com/samdwyer/dicegolf/internal/world"
)

const (
	seedLength   = 8
	seedAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Config holds game configuration options.
type Config struct {
	// Seed for the first hole. An empty seed means a random one is generated.
	Seed string `env:"DICEGOLF_SEED"`
	// Width and Height of generated holes.
	Width  int `env:"DICEGOLF_WIDTH" envDefault:"10"`
	Height int `env:"DICEGOLF_HEIGHT" envDefault:"15"`
	// InitialMaxRoll is the dice range at the start of every hole.
	InitialMaxRoll int `env:"DICEGOLF_INITIAL_MAX_ROLL" envDefault:"8"`
	// DiceSeed seeds the dice. A seed of 0 means a time-based seed.
	DiceSeed int64 `env:"DICEGOLF_DICE_SEED" envDefault:"0"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Width:          world.DefaultWidth,
		Height:         world.DefaultHeight,
		InitialMaxRoll: dice.DefaultMaxRoll,
	}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadConfig reads a Config from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can produce a playable hole.
func (c Config) Validate() error {
	var errs []error
	if c.Width < world.MinDimension || c.Height < world.MinDimension {
		errs = append(errs, fmt.Errorf("hole size %dx%d: %w", c.Width, c.Height, world.ErrInvalidDimensions))
	}
	if c.InitialMaxRoll < 1 {
		errs = append(errs, fmt.Errorf("initial max roll %d must be at least 1", c.InitialMaxRoll))
	}
	return errors.Join(errs...)
}

// RandomSeed returns an 8-character lowercase alphanumeric hole seed.
func RandomSeed(r *rand.Rand) string {
	b := make([]byte, seedLength)
	for i := range b {
		b[i] = seedAlphabet[r.Intn(len(seedAlphabet))]
	}
	return string(b)
}
