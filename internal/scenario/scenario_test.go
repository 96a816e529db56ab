package scenario

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/balatro-advisor/internal/advisor"
	"github.com/lox/balatro-advisor/internal/randutil"
	"github.com/lox/balatro-advisor/internal/scoring"
	"github.com/lox/balatro-advisor/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

const sampleFile = `
levels = { "Pair" = 2 }

scenario "defaults" {
  hand = "Ks Kh 7d 3c 2s"
}

scenario "explicit" {
  description        = "Last hand"
  hand               = "As:glass, Ah:mult Kd Qc Js"
  target_score       = 800
  hands_remaining    = 1
  discards_remaining = 0
  ante               = 4
  money              = 0
  levels             = { "Pair" = 3, "Flush" = 2 }
}
`

func TestParse(t *testing.T) {
	t.Parallel()

	scenarios, err := Parse([]byte(sampleFile), "sample.hcl")
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	def := scenarios[0]
	assert.Equal(t, "defaults", def.Name)
	assert.Len(t, def.Hand, 5)
	assert.Equal(t, DefaultTargetScore, def.TargetScore)
	assert.Equal(t, DefaultHandsRemaining, def.HandsRemaining)
	assert.Equal(t, DefaultDiscardsRemaining, def.DiscardsRemaining)
	assert.Equal(t, DefaultAnte, def.Ante)
	assert.Equal(t, DefaultMoney, def.Money)
	assert.Equal(t, 2, def.Levels.Level(poker.Pair))

	exp := scenarios[1]
	assert.Equal(t, "Last hand", exp.Description)
	assert.Equal(t, poker.Glass, exp.Hand[0].Enhancement())
	assert.Equal(t, poker.MultCard, exp.Hand[1].Enhancement())
	assert.Equal(t, 800, exp.TargetScore)
	assert.Equal(t, 1, exp.HandsRemaining)
	assert.Equal(t, 0, exp.DiscardsRemaining, "explicit zero is kept")
	assert.Equal(t, 0, exp.Money)
	assert.Equal(t, 3, exp.Levels.Level(poker.Pair))
	assert.Equal(t, 2, exp.Levels.Level(poker.Flush))
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		is      error
		wantErr string
	}{
		{name: "no scenarios", src: `levels = {}`, is: ErrNoScenarios},
		{name: "syntax", src: `scenario "x" {`, wantErr: "failed to parse HCL file"},
		{name: "missing hand", src: `scenario "x" {}`, wantErr: "failed to decode HCL"},
		{name: "bad card", src: `scenario "x" { hand = "Zz" }`, is: poker.ErrInvalidCard},
		{name: "empty hand", src: `scenario "x" { hand = "" }`, wantErr: "hand is empty"},
		{name: "negative hands", src: `scenario "x" {
  hand = "As"
  hands_remaining = -1
}`, is: advisor.ErrInvalidGameState},
		{name: "negative money", src: `scenario "x" {
  hand = "As"
  money = -3
}`, is: advisor.ErrInvalidGameState},
		{name: "bad level", src: `
levels = { "Pair" = 0 }
scenario "x" { hand = "As" }`, is: scoring.ErrInvalidLevel},
		{name: "duplicate", src: `
scenario "x" { hand = "As" }
scenario "x" { hand = "Ks" }`, wantErr: `duplicate scenario "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0o644))

	scenarios, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, scenarios, 2)

	_, err = Load(filepath.Join(dir, "missing.hcl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuiltins(t *testing.T) {
	t.Parallel()

	builtins := Builtins()
	require.Len(t, builtins, 4)
	for _, s := range builtins {
		assert.NoError(t, s.Validate(), s.Name)
		assert.Len(t, s.Hand, 8, s.Name)
	}

	s, ok := Builtin("critical")
	require.True(t, ok)
	assert.Equal(t, 500, s.TargetScore)
	assert.Equal(t, 0, s.DiscardsRemaining)

	_, ok = Builtin("nope")
	assert.False(t, ok)
}

func TestRandom(t *testing.T) {
	t.Parallel()

	a := Random(randutil.New(1), 8)
	b := Random(randutil.New(1), 8)
	require.Len(t, a.Hand, 8)
	require.NoError(t, a.Validate())

	seen := map[string]bool{}
	for i, c := range a.Hand {
		assert.Equal(t, c.Notation(), b.Hand[i].Notation())
		assert.False(t, seen[c.Notation()], "cards are dealt without replacement")
		seen[c.Notation()] = true
	}

	assert.Len(t, Random(randutil.New(1), 0).Hand, DefaultHandSize)
}

func TestRunAllBuiltins(t *testing.T) {
	t.Parallel()

	results, err := RunAll(context.Background(), testLogger(), Builtins())
	require.NoError(t, err)
	require.Len(t, results, 4)

	tests := []struct {
		name     string
		handType poker.HandType
		score    int
		action   advisor.Action
		urgency  advisor.Urgency
	}{
		{"easy-win", poker.StraightFlush, 1192, advisor.ActionPlay, advisor.UrgencyLow},
		{"tough-decision", poker.Flush, 344, advisor.ActionDiscard, advisor.UrgencyMedium},
		{"critical", poker.FullHouse, 264, advisor.ActionPlay, advisor.UrgencyCritical},
		{"enhanced", poker.Pair, 2484, advisor.ActionPlay, advisor.UrgencyLow},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := results[i]
			assert.Equal(t, tt.name, r.Scenario.Name)
			assert.Equal(t, tt.handType, r.Report.Primary.HandType)
			assert.Equal(t, tt.score, r.Report.Primary.ExpectedScore)
			assert.Equal(t, tt.action, r.Report.Primary.Action)
			assert.Equal(t, tt.urgency, r.Report.Urgency)
		})
	}
}

func TestRunAllUsesScenarioLevels(t *testing.T) {
	t.Parallel()

	scenarios, err := Parse([]byte(`
scenario "base" {
  hand         = "Ks Kh 7d 3c 2s"
  target_score = 250
}
scenario "upgraded" {
  hand         = "Ks Kh 7d 3c 2s"
  target_score = 250
  levels       = { "Pair" = 3 }
}
`), "levels.hcl")
	require.NoError(t, err)

	results, err := RunAll(context.Background(), testLogger(), scenarios)
	require.NoError(t, err)
	assert.Equal(t, 84, results[0].Report.Primary.ExpectedScore)
	assert.Equal(t, 288, results[1].Report.Primary.ExpectedScore)
	assert.True(t, results[1].Report.Primary.MeetsTarget)
}

func TestRunAllStopsOnInvalidScenario(t *testing.T) {
	t.Parallel()

	scenarios := append(Builtins(), Scenario{Name: "broken", Hand: []poker.Card{{}}})
	_, err := RunAll(context.Background(), testLogger(), scenarios)
	assert.ErrorIs(t, err, poker.ErrInvalidCard)
	assert.Contains(t, err.Error(), "scenario broken")
}

func TestRunAllCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunAll(ctx, testLogger(), Builtins())
	assert.ErrorIs(t, err, context.Canceled)
}
