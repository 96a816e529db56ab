// Package display renders cards, scores and advice for the terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/balatro-advisor/internal/advisor"
	"github.com/lox/balatro-advisor/internal/scoring"
	"github.com/lox/balatro-advisor/internal/search"
	"github.com/lox/balatro-advisor/poker"
)

// boxWidth is the content width of boxed panels.
const boxWidth = 52

// Card renders a card in its suit colour.
func Card(c poker.Card) string {
	if c.Suit().IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// Cards renders cards inline, e.g. "[K♠ K♥ 7♦]".
func Cards(cards []poker.Card) string {
	if len(cards) == 0 {
		return "[]"
	}
	formatted := make([]string, len(cards))
	for i, c := range cards {
		formatted[i] = Card(c)
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

// CardList renders one numbered card per line.
func CardList(cards []poker.Card) string {
	var b strings.Builder
	for i, c := range cards {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, Card(c))
	}
	return b.String()
}

func row(label string, value any) string {
	return LabelStyle.Render(label+":") + " " + fmt.Sprint(value)
}

func box(title string, lines ...string) string {
	body := append([]string{HeaderStyle.Render(title), ""}, lines...)
	return BoxStyle.Width(boxWidth).Render(strings.Join(body, "\n"))
}

func stateRows(ante, money, target, hands, discards int) []string {
	return []string{
		row("Ante", ante),
		row("Money", fmt.Sprintf("$%d", money)),
		row("Target Score", target),
		row("Hands Remaining", hands),
		row("Discards Remaining", discards),
	}
}

// GameState renders the round counters followed by the hand.
func GameState(state advisor.GameState) string {
	panel := box("GAME STATE", stateRows(state.Ante, state.Money, state.TargetScore, state.HandsRemaining, state.DiscardsRemaining)...)
	return panel + "\n\n" + LabelStyle.Render("YOUR HAND:") + "\n" + CardList(state.Hand)
}

// Score renders a score result with its breakdown.
func Score(result scoring.ScoreResult) string {
	return strings.Join([]string{
		row("Hand", Cards(result.Cards)),
		row("Hand Type", fmt.Sprintf("%s (level %d)", result.HandType, result.Level)),
		row("Base", fmt.Sprintf("%d chips × %d mult", result.Breakdown.BaseChips, result.Breakdown.BaseMult)),
		row("Score", ScoreStyle.Render(result.Breakdown.String())),
	}, "\n")
}

func actionStyle(a advisor.Action) lipgloss.Style {
	if a == advisor.ActionDiscard {
		return WarningStyle
	}
	return SuccessStyle
}

func yesNo(b bool) string {
	if b {
		return SuccessStyle.Render("YES")
	}
	return ErrorStyle.Render("NO")
}

// Recommendation renders a recommendation panel.
func Recommendation(rec advisor.Recommendation) string {
	lines := []string{
		row("Action", actionStyle(rec.Action).Render(string(rec.Action))),
		row("Confidence", rec.Confidence),
		row("Hand Type", rec.HandType),
		row("Expected Score", ScoreStyle.Render(fmt.Sprint(rec.ExpectedScore))),
		row("Meets Target", yesNo(rec.MeetsTarget)),
		"",
		LabelStyle.Render("RECOMMENDED CARDS:"),
		strings.TrimRight(CardList(rec.Cards), "\n"),
	}
	if len(rec.CardsToDiscard) > 0 {
		lines = append(lines, row("Discard", Cards(rec.CardsToDiscard)))
	}
	lines = append(lines, "", LabelStyle.Render("REASONING:"))
	lines = append(lines, rec.Reasoning...)
	return box("RECOMMENDATION", lines...)
}

// Plays renders up to n ranked plays, marking the best with a star.
func Plays(plays []search.Play, n int) string {
	if n > len(plays) || n <= 0 {
		n = len(plays)
	}
	var b strings.Builder
	for i, p := range plays[:n] {
		marker := " "
		if i == 0 {
			marker = ScoreStyle.Render("★")
		}
		fmt.Fprintf(&b, "%s %d. %s: %s points\n", marker, i+1, p.HandType, ScoreStyle.Render(fmt.Sprint(p.Score)))
		fmt.Fprintf(&b, "      %s\n", Cards(p.RecommendedCards))
	}
	return b.String()
}

// DiscardSuggestion renders which cards to keep and which to throw away.
func DiscardSuggestion(s advisor.DiscardSuggestion) string {
	return strings.Join([]string{
		row("Keep", Cards(s.Keep)),
		row("Discard", Cards(s.Discard)),
		InfoStyle.Render(s.Reasoning),
	}, "\n")
}

func urgencyStyle(u advisor.Urgency) lipgloss.Style {
	switch u {
	case advisor.UrgencyCritical, advisor.UrgencyHigh:
		return ErrorStyle
	case advisor.UrgencyMedium:
		return WarningStyle
	default:
		return SuccessStyle
	}
}

// Report renders a full game report.
func Report(r advisor.Report) string {
	sit := r.Situation
	rows := stateRows(r.Ante, r.Money, sit.TargetScore, sit.HandsRemaining, sit.DiscardsRemaining)
	parts := []string{
		InfoStyle.Render(r.Timestamp.Format("2006-01-02 15:04:05")),
		box("GAME STATE", append(rows, row("Hand Size", sit.HandSize))...),
		Recommendation(r.Primary),
		row("Urgency", urgencyStyle(r.Urgency).Render(string(r.Urgency))),
		LabelStyle.Render("TOP ALTERNATIVE PLAYS:"),
		Plays(r.Alternatives, len(r.Alternatives)),
	}
	return strings.Join(parts, "\n")
}

// ScoringReference renders the hand table at the given levels plus the
// card modifier effects.
func ScoringReference(levels scoring.LevelTable) string {
	lines := []string{
		"FORMULA: Score = Chips × Mult × XMult",
		"",
		LabelStyle.Render("POKER HANDS:"),
	}
	for _, ht := range poker.AllHandTypes() {
		level := levels.Level(ht)
		chips, mult := scoring.BaseValues(ht).AtLevel(level)
		lines = append(lines, fmt.Sprintf("  %-16s %4d chips × %2d mult  (lvl %d)", ht.String()+":", chips, mult, level))
	}
	lines = append(lines,
		"",
		LabelStyle.Render("CARD ENHANCEMENTS:"),
		"  Bonus:  +30 chips",
		"  Mult:   +4 mult",
		"  Glass:  ×2 XMult",
		"  Steel:  ×1.5 XMult",
		"  Stone:  +50 chips",
		"",
		LabelStyle.Render("EDITIONS:"),
		"  Foil:        +50 chips",
		"  Holographic: +10 mult",
		"  Polychrome:  ×1.5 XMult",
	)
	return box("SCORING REFERENCE", lines...)
}
