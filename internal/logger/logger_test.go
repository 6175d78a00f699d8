package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"DEBUG":   log.DebugLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"fatal":   log.FatalLevel,
		"":        log.InfoLevel,
		"bogus":   log.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestConfigureWritesToFile(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	path := filepath.Join(t.TempDir(), "corelab.log")
	closer, err := Configure("debug", path)
	require.NoError(t, err)

	Component("calc").Debug("dispatch", "op", "fact")
	Info("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, "dispatch"), out)
	assert.True(t, strings.Contains(out, "calc"), out)
	assert.True(t, strings.Contains(out, "started"), out)
}

func TestConfigureLevels(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	_, err := Configure("error", "")
	require.NoError(t, err)
	assert.Equal(t, log.ErrorLevel, Logger.GetLevel())

	_, err = Configure("", "")
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, Logger.GetLevel())
}
