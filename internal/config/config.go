package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPrecision  = 2
	DefaultDataDir    = ".corelab"
	DefaultDifficulty = "medium"
	DefaultCapacity   = 8
	DefaultPushes     = 64
	DefaultLogLevel   = "info"
	DefaultTheme      = "neon"
)

type Config struct {
	DataDir    string           `yaml:"data_dir"`
	Calculator CalculatorConfig `yaml:"calculator"`
	Vector     VectorConfig     `yaml:"vector"`
	Guess      GuessConfig      `yaml:"guess"`
	Files      FilesConfig      `yaml:"files"`
	Log        LogConfig        `yaml:"log"`
	Theme      string           `yaml:"theme"`
}

type CalculatorConfig struct {
	Precision int `yaml:"precision"`
}

type VectorConfig struct {
	InitialCapacity int `yaml:"initial_capacity"`
	Pushes          int `yaml:"pushes"`
}

type GuessConfig struct {
	Difficulty  string `yaml:"difficulty"`
	Min         int    `yaml:"min"`
	Max         int    `yaml:"max"`
	MaxAttempts int    `yaml:"max_attempts"`
	Seed        int64  `yaml:"seed"`
}

type FilesConfig struct {
	Root string `yaml:"root"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		Calculator: CalculatorConfig{
			Precision: DefaultPrecision,
		},
		Vector: VectorConfig{
			InitialCapacity: DefaultCapacity,
			Pushes:          DefaultPushes,
		},
		Guess: GuessConfig{
			Difficulty: DefaultDifficulty,
		},
		Files: FilesConfig{
			Root: ".",
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Theme: DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Difficulty resolves the guess section to concrete game settings: the
// named preset, or the custom range when difficulty is "custom".
func (c *Config) Difficulty() (Difficulty, error) {
	if c.Guess.Difficulty == CustomDifficulty {
		return NewCustomDifficulty(c.Guess.Min, c.Guess.Max, c.Guess.MaxAttempts)
	}
	d, ok := GetPreset(c.Guess.Difficulty)
	if !ok {
		return Difficulty{}, &UnknownPresetError{Name: c.Guess.Difficulty}
	}
	return d, nil
}
