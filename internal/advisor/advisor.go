// Package advisor turns the best available play into advice: whether to
// play or discard, which cards to throw away, and how urgent the situation is.
package advisor

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/balatro-advisor/internal/scoring"
	"github.com/lox/balatro-advisor/internal/search"
	"github.com/lox/balatro-advisor/poker"
)

// ErrInvalidGameState is returned for negative targets or counters.
var ErrInvalidGameState = errors.New("invalid game state")

// GameState is a snapshot of the round the player is in.
type GameState struct {
	Hand              []poker.Card `json:"hand"`
	TargetScore       int          `json:"target_score"`
	HandsRemaining    int          `json:"hands_remaining"`
	DiscardsRemaining int          `json:"discards_remaining"`
	Ante              int          `json:"ante"`
	Money             int          `json:"money"`
}

// Validate rejects negative counters
func (s GameState) Validate() error {
	return validateCounters(s.TargetScore, s.HandsRemaining, s.DiscardsRemaining)
}

func validateCounters(target, hands, discards int) error {
	switch {
	case target < 0:
		return fmt.Errorf("%w: target score %d", ErrInvalidGameState, target)
	case hands < 0:
		return fmt.Errorf("%w: hands remaining %d", ErrInvalidGameState, hands)
	case discards < 0:
		return fmt.Errorf("%w: discards remaining %d", ErrInvalidGameState, discards)
	}
	return nil
}

// Advisor owns a score calculator and answers questions about hands scored
// against its level table.
type Advisor struct {
	calc   *scoring.Calculator
	logger *log.Logger
	clock  quartz.Clock
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithClock sets the clock used to timestamp reports.
func WithClock(clock quartz.Clock) Option {
	return func(a *Advisor) { a.clock = clock }
}

// WithCalculator shares an existing calculator (and its levels).
func WithCalculator(calc *scoring.Calculator) Option {
	return func(a *Advisor) { a.calc = calc }
}

// New creates an advisor with a fresh calculator at default levels.
func New(logger *log.Logger, opts ...Option) *Advisor {
	a := &Advisor{
		logger: logger.WithPrefix("advisor"),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.calc == nil {
		a.calc = scoring.NewCalculator()
	}
	return a
}

// Calculator returns the calculator the advisor scores with.
func (a *Advisor) Calculator() *scoring.Calculator {
	return a.calc
}

// SetLevels applies hand level upgrades, all or nothing.
func (a *Advisor) SetLevels(levels map[poker.HandType]int) error {
	if err := a.calc.SetLevels(levels); err != nil {
		return err
	}
	a.logger.Debug("Hand levels updated", "changed", len(levels))
	return nil
}

// BestPlay returns the best five-card play in hand.
func (a *Advisor) BestPlay(hand []poker.Card) (search.Play, error) {
	return search.BestPlay(a.calc, hand)
}

// Recommend finds the best play in hand and decides whether to play or discard.
func (a *Advisor) Recommend(hand []poker.Card, targetScore, handsRemaining, discardsRemaining int) (Recommendation, error) {
	if err := validateCounters(targetScore, handsRemaining, discardsRemaining); err != nil {
		return Recommendation{}, err
	}

	best, err := search.BestPlay(a.calc, hand)
	if err != nil {
		return Recommendation{}, err
	}

	rec := Decide(best, targetScore, handsRemaining, discardsRemaining)
	a.logger.Debug("Recommendation",
		"action", rec.Action,
		"confidence", rec.Confidence,
		"handType", rec.HandType,
		"score", rec.ExpectedScore,
		"target", targetScore)
	return rec, nil
}

// Alternatives returns every play in hand, best first.
func (a *Advisor) Alternatives(hand []poker.Card) ([]search.Play, error) {
	return search.RankAllPlays(a.calc, hand)
}
