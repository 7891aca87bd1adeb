package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a complete config file
		path := writeConfig(t, `
log-level: debug
seed: 42
question-bank-path: bank.yml
player-names: [Alice, Bob]
`)

		// When: loading it
		conf := MustLoad(path)

		// Then: every key is read
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, int64(42), conf.Seed)
		assert.Equal(t, "bank.yml", conf.QuestionBankPath)
		assert.Equal(t, []string{"Alice", "Bob"}, conf.PlayerNames)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		conf := MustLoad(writeConfig(t, "player-names: []\n"))

		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, int64(0), conf.Seed)
		assert.Empty(t, conf.QuestionBankPath)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: env vars next to a file
		t.Setenv("EDUWARS_LOG_LEVEL", "warn")
		t.Setenv("EDUWARS_SEED", "7")
		path := writeConfig(t, "log-level: debug\nseed: 1\n")

		// When: loading
		conf := MustLoad(path)

		// Then: the environment wins
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, int64(7), conf.Seed)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
