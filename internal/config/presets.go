package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// CustomDifficulty selects a caller-supplied range instead of a preset.
const CustomDifficulty = "custom"

// CustomLevel is the scoring level of a custom difficulty.
const CustomLevel = 4

var ErrInvalidRange = errors.New("config: range must lie within 32-bit integers with maximum above minimum, and attempts must be at least 1")

// Difficulty describes one number-guessing setup.
type Difficulty struct {
	Name        string
	Level       int // scoring multiplier: 1 easy .. 3 hard, 4 custom
	Min         int
	Max         int
	MaxAttempts int
}

var Presets = map[string]Difficulty{
	"easy":   {Name: "Easy", Level: 1, Min: 1, Max: 50, MaxAttempts: 10},
	"medium": {Name: "Medium", Level: 2, Min: 1, Max: 100, MaxAttempts: 8},
	"hard":   {Name: "Hard", Level: 3, Min: 1, Max: 200, MaxAttempts: 6},
}

type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown difficulty: %s (available: %v)", e.Name, ListPresets())
}

func GetPreset(name string) (Difficulty, bool) {
	d, ok := Presets[name]
	return d, ok
}

// ListPresets returns the preset names ordered from easiest to hardest.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return Presets[names[i]].Level < Presets[names[j]].Level
	})
	return names
}

func NewCustomDifficulty(min, max, attempts int) (Difficulty, error) {
	d := Difficulty{Name: "Custom", Level: CustomLevel, Min: min, Max: max, MaxAttempts: attempts}
	if err := d.Validate(); err != nil {
		return Difficulty{}, err
	}
	return d, nil
}

// Validate reports ErrInvalidRange unless Min < Max, both fit in an int32
// and at least one attempt is allowed. Guesses are recorded as int32.
func (d Difficulty) Validate() error {
	if d.Min >= d.Max || d.MaxAttempts < 1 {
		return ErrInvalidRange
	}
	if d.Min < math.MinInt32 || d.Max > math.MaxInt32 {
		return ErrInvalidRange
	}
	return nil
}
