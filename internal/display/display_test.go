package display

import (
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/balatro-advisor/internal/advisor"
	"github.com/lox/balatro-advisor/internal/scoring"
	"github.com/lox/balatro-advisor/internal/search"
	"github.com/lox/balatro-advisor/poker"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Plain output keeps assertions free of escape codes
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestCards(t *testing.T) {
	assert.Equal(t, "[K♠ 7♦ A♥ [Glass]]", Cards(poker.MustParseCards("Ks 7d Ah:glass")))
	assert.Equal(t, "[]", Cards(nil))
	assert.Equal(t, "  1. K♠\n  2. 7♦\n", CardList(poker.MustParseCards("Ks 7d")))
}

func TestScore(t *testing.T) {
	result, err := scoring.NewCalculator().Score(poker.MustParseCards("Ks Kh 7d 3c 2s"))
	require.NoError(t, err)

	out := Score(result)
	assert.Contains(t, out, "Pair (level 1)")
	assert.Contains(t, out, "10 chips × 2 mult")
	assert.Contains(t, out, "42 × 2 × 1.00 = 84")
}

func TestRecommendation(t *testing.T) {
	rec := advisor.Recommendation{
		Action:         advisor.ActionDiscard,
		Confidence:     advisor.ConfidenceMedium,
		Cards:          poker.MustParseCards("Ks Kh 7d 3c 2s"),
		HandType:       poker.Pair,
		ExpectedScore:  84,
		CardsToDiscard: poker.MustParseCards("4h 5c"),
		Reasoning:      []string{"short of target"},
	}

	out := Recommendation(rec)
	for _, want := range []string{"RECOMMENDATION", "DISCARD", "MEDIUM", "Pair", "84", "NO", "1. K♠", "5. 2♠", "4♥", "short of target"} {
		assert.Contains(t, out, want)
	}
}

func TestPlays(t *testing.T) {
	plays, err := search.RankAllPlays(scoring.NewCalculator(), poker.MustParseCards("Ks Kh 7d 3c 2s 9h"))
	require.NoError(t, err)

	out := Plays(plays, 2)
	assert.Contains(t, out, "★ 1. Pair: 98 points")
	assert.Contains(t, out, "  2. Pair:")
	assert.NotContains(t, out, "3.")
}

func TestGameState(t *testing.T) {
	out := GameState(advisor.GameState{
		Hand:              poker.MustParseCards("As Kd"),
		TargetScore:       300,
		HandsRemaining:    3,
		DiscardsRemaining: 2,
		Ante:              1,
		Money:             4,
	})
	for _, want := range []string{"GAME STATE", "Money: $4", "Target Score: 300", "Discards Remaining: 2", "YOUR HAND:", "2. K♦"} {
		assert.Contains(t, out, want)
	}
}

func TestReport(t *testing.T) {
	r := advisor.Report{
		Timestamp: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		Ante:      2,
		Money:     7,
		Situation: advisor.Situation{TargetScore: 400, HandsRemaining: 1, HandSize: 8},
		Primary:   advisor.Recommendation{Action: advisor.ActionPlay, Confidence: advisor.ConfidenceLow},
		Urgency:   advisor.UrgencyCritical,
	}

	out := Report(r)
	assert.Contains(t, out, "2025-03-14 09:30:00")
	assert.Contains(t, out, "Hand Size: 8")
	assert.Contains(t, out, "Urgency: CRITICAL")
}

func TestScoringReference(t *testing.T) {
	levels, err := scoring.DefaultLevels().With(poker.Flush, 2)
	require.NoError(t, err)

	out := ScoringReference(levels)
	assert.Contains(t, out, "Score = Chips × Mult × XMult")
	assert.Contains(t, out, "High Card:")
	assert.Contains(t, out, "Flush Five:")
	assert.Contains(t, out, "50 chips ×  6 mult  (lvl 2)")
	assert.Contains(t, out, "Polychrome:  ×1.5 XMult")
}
