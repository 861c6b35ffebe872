package game

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/samdwyer/dicegolf/internal/world"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DICEGOLF_SEED", "abc")
	t.Setenv("DICEGOLF_WIDTH", "20")
	t.Setenv("DICEGOLF_HEIGHT", "30")
	t.Setenv("DICEGOLF_INITIAL_MAX_ROLL", "6")
	t.Setenv("DICEGOLF_DICE_SEED", "42")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := Config{Seed: "abc", Width: 20, Height: 30, InitialMaxRoll: 6, DiceSeed: 42}
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigParseError(t *testing.T) {
	t.Setenv("DICEGOLF_WIDTH", "wide")

	_, err := LoadConfig()
	if err == nil || !strings.HasPrefix(err.Error(), "parse env:") {
		t.Errorf("LoadConfig error = %v, want parse env error", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"minimum size", Config{Width: 3, Height: 3, InitialMaxRoll: 1}, false},
		{"too narrow", Config{Width: 2, Height: 15, InitialMaxRoll: 8}, true},
		{"too short", Config{Width: 10, Height: 0, InitialMaxRoll: 8}, true},
		{"zero max roll", Config{Width: 10, Height: 15, InitialMaxRoll: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateJoinsErrors(t *testing.T) {
	err := Config{Width: 1, Height: 1, InitialMaxRoll: 0}.Validate()
	if !errors.Is(err, world.ErrInvalidDimensions) {
		t.Errorf("error %v should wrap ErrInvalidDimensions", err)
	}
	if !strings.Contains(err.Error(), "initial max roll") {
		t.Errorf("error %v should mention the max roll", err)
	}
}

func TestRandomSeed(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s := RandomSeed(r)
		if len(s) != seedLength {
			t.Fatalf("RandomSeed() = %q, want %d characters", s, seedLength)
		}
		for _, c := range s {
			if !strings.ContainsRune(seedAlphabet, c) {
				t.Fatalf("RandomSeed() = %q contains %q", s, c)
			}
		}
		seen[s] = true
	}
	if len(seen) < 45 {
		t.Errorf("only %d distinct seeds out of 50", len(seen))
	}

	a := RandomSeed(rand.New(rand.NewSource(7)))
	b := RandomSeed(rand.New(rand.NewSource(7)))
	if a != b {
		t.Errorf("same source gave %q and %q", a, b)
	}
}
