package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/lox/balatro-advisor/internal/scenario"
	"github.com/lox/balatro-advisor/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "balatro.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestSetupMergesLevels(t *testing.T) {
	path := writeConfig(t, `
log_level = "warn"
levels = { "Pair" = 2, "Flush" = 3 }
`)
	g := &Globals{Config: path, Level: map[string]int{"Pair": 4}}

	e, err := g.setup()
	require.NoError(t, err)

	assert.Equal(t, 4, e.levels.Level(poker.Pair))
	assert.Equal(t, 3, e.levels.Level(poker.Flush))
	assert.Equal(t, map[string]int{"Pair": 4, "Flush": 3}, e.cfg.Levels)
	assert.Equal(t, log.WarnLevel, e.logger.GetLevel())
}

func TestSetupDebugOverridesConfig(t *testing.T) {
	path := writeConfig(t, `log_level = "error"`)
	g := &Globals{Config: path, Debug: true}

	e, err := g.setup()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, e.logger.GetLevel())
}

func TestSetupMissingConfigUsesDefaults(t *testing.T) {
	g := &Globals{Config: filepath.Join(t.TempDir(), "missing.hcl")}

	e, err := g.setup()
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", e.cfg.Server.Address)
	assert.Empty(t, e.levels.Upgraded())
}

func TestSetupRejectsBadLevel(t *testing.T) {
	g := &Globals{Config: filepath.Join(t.TempDir(), "missing.hcl"), Level: map[string]int{"Royal Flush": 2}}

	_, err := g.setup()
	require.Error(t, err)
	assert.ErrorIs(t, err, poker.ErrUnknownHandType)
}

func TestParseHand(t *testing.T) {
	hand, err := parseHand([]string{"Ks Kh", "7d", "3c", "2s"})
	require.NoError(t, err)
	assert.Len(t, hand, 5)

	_, err = parseHand(nil)
	assert.Error(t, err)

	_, err = parseHand([]string{"Xx"})
	assert.ErrorIs(t, err, poker.ErrInvalidCard)
}

func TestCLIParsesCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		command string
	}{
		{"score", []string{"score", "Ks", "Kh", "7d"}, "score"},
		{"best", []string{"best", "--top", "3", "AsKsQsJsTs9h"}, "best"},
		{"recommend", []string{"recommend", "--target", "500", "--json", "Ks Kh 7d 3c 2s"}, "recommend"},
		{"scenario", []string{"scenario", "easy-win"}, "scenario"},
		{"levels", []string{"--level", "Pair=3", "reference"}, "reference"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cli CLI
			parser, err := kong.New(&cli, kong.Vars{"version": "test"})
			require.NoError(t, err)

			ctx, err := parser.Parse(tt.args)
			require.NoError(t, err)
			require.NotNil(t, ctx.Selected())
			assert.Equal(t, tt.command, ctx.Selected().Name)
		})
	}

	t.Run("level flag", func(t *testing.T) {
		var cli CLI
		parser, err := kong.New(&cli, kong.Vars{"version": "test"})
		require.NoError(t, err)

		_, err = parser.Parse([]string{"--level", "Pair=3", "--level", "Flush=2", "reference"})
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"Pair": 3, "Flush": 2}, cli.Level)
	})
}

func TestWriteResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.json")
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})

	results, err := scenario.RunAll(context.Background(), logger, scenario.Builtins())
	require.NoError(t, err)
	require.NoError(t, writeResults(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []struct {
		Name   string `json:"name"`
		Report struct {
			Primary struct {
				Action string `json:"action"`
			} `json:"primary_recommendation"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 4)
	assert.Equal(t, "easy-win", got[0].Name)
	assert.Equal(t, "PLAY", got[0].Report.Primary.Action)
	assert.Equal(t, "DISCARD", got[1].Report.Primary.Action)
}
