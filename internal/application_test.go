package application

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/eduwars-backend/internal/config"
)

func TestRunApp(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Runs the console until input ends", func(t *testing.T) {
		// Given: a custom catalog and default player names
		bank := filepath.Join(t.TempDir(), "bank.yml")
		require.NoError(t, os.WriteFile(bank, []byte(`
questions:
  - id: q1
    category: Test
    german: Hallo
    english: Hello
`), 0o600))

		conf := &config.Config{Seed: 5, QuestionBankPath: bank, PlayerNames: []string{"Alice", "Bob"}}
		var out bytes.Buffer

		// When: the players start a campaign and leave
		err := RunApp(logger, conf, strings.NewReader("start 2\nshow\n"), &out)

		// Then: the console ran against the configured setup
		require.NoError(t, err)
		assert.Contains(t, out.String(), "== LOBBY ==")
		assert.Contains(t, out.String(), "Alice, place your Battleship")
	})

	t.Run("Fails on an unreadable catalog", func(t *testing.T) {
		conf := &config.Config{QuestionBankPath: filepath.Join(t.TempDir(), "missing.yml")}

		err := RunApp(logger, conf, strings.NewReader(""), io.Discard)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load question catalog")
	})
}
