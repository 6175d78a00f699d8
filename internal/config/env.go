package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CORELAB_DATA_DIR or
// CORELAB_GUESS_DIFFICULTY.
const EnvPrefix = "CORELAB"

// Keys in the order they are read back by FromViper.
const (
	KeyDataDir         = "data_dir"
	KeyPrecision       = "calculator.precision"
	KeyInitialCapacity = "vector.initial_capacity"
	KeyPushes          = "vector.pushes"
	KeyDifficulty      = "guess.difficulty"
	KeyGuessMin        = "guess.min"
	KeyGuessMax        = "guess.max"
	KeyMaxAttempts     = "guess.max_attempts"
	KeySeed            = "guess.seed"
	KeyFilesRoot       = "files.root"
	KeyLogLevel        = "log.level"
	KeyLogFile         = "log.file"
	KeyTheme           = "theme"
)

// NewViper returns a viper instance carrying the defaults and environment
// bindings. Flags are bound by the caller; precedence is flag, environment,
// config file, default.
func NewViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault(KeyDataDir, d.DataDir)
	v.SetDefault(KeyPrecision, d.Calculator.Precision)
	v.SetDefault(KeyInitialCapacity, d.Vector.InitialCapacity)
	v.SetDefault(KeyPushes, d.Vector.Pushes)
	v.SetDefault(KeyDifficulty, d.Guess.Difficulty)
	v.SetDefault(KeyGuessMin, d.Guess.Min)
	v.SetDefault(KeyGuessMax, d.Guess.Max)
	v.SetDefault(KeyMaxAttempts, d.Guess.MaxAttempts)
	v.SetDefault(KeySeed, d.Guess.Seed)
	v.SetDefault(KeyFilesRoot, d.Files.Root)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFile, d.Log.File)
	v.SetDefault(KeyTheme, d.Theme)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges a YAML config file into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return v.ReadInConfig()
}

// FromViper snapshots the resolved settings.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		DataDir: v.GetString(KeyDataDir),
		Calculator: CalculatorConfig{
			Precision: v.GetInt(KeyPrecision),
		},
		Vector: VectorConfig{
			InitialCapacity: v.GetInt(KeyInitialCapacity),
			Pushes:          v.GetInt(KeyPushes),
		},
		Guess: GuessConfig{
			Difficulty:  v.GetString(KeyDifficulty),
			Min:         v.GetInt(KeyGuessMin),
			Max:         v.GetInt(KeyGuessMax),
			MaxAttempts: v.GetInt(KeyMaxAttempts),
			Seed:        v.GetInt64(KeySeed),
		},
		Files: FilesConfig{
			Root: v.GetString(KeyFilesRoot),
		},
		Log: LogConfig{
			Level: v.GetString(KeyLogLevel),
			File:  v.GetString(KeyLogFile),
		},
		Theme: v.GetString(KeyTheme),
	}
}
