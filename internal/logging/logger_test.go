package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyPathDiscards(t *testing.T) {
	log, closer, err := New(Options{})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	log, closer, err := New(Options{Path: path, Level: zerolog.DebugLevel})
	require.NoError(t, err)

	log.Debug().Str("item", "apple").Msg("selected")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"item":"apple"`)
	assert.Contains(t, string(data), `"message":"selected"`)
}

func TestNew_BadPath(t *testing.T) {
	_, _, err := New(Options{Path: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}

func TestNewWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, Options{Level: zerolog.InfoLevel})
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, Options{Level: zerolog.DebugLevel, Console: true})
	log.Info().Str("k", "v").Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "k=v")
}
