// Package scoring computes the score of a played hand: hand type base values
// scaled by level, plus additive chips and mult from each card, times the
// product of every card's xmult.
package scoring

import (
	"fmt"
	"math"
	"sync"

	"github.com/lox/balatro-advisor/poker"
	"github.com/samber/lo"
)

// Joker is a modifier-applying agent that may take part in scoring.
//
// TODO: apply joker effects once their trigger order (per card, per hand,
// independent) is modelled; jokers are accepted but do not change scores yet.
type Joker interface {
	Name() string
}

// Breakdown shows how a score was reached.
type Breakdown struct {
	BaseChips  int     `json:"base_chips"`
	BaseMult   int     `json:"base_mult"`
	TotalChips int     `json:"total_chips"`
	TotalMult  int     `json:"total_mult"`
	XMult      float64 `json:"xmult"`
}

// Score returns floor(TotalChips × TotalMult × XMult).
func (b Breakdown) Score() int {
	return int(math.Floor(float64(b.TotalChips) * float64(b.TotalMult) * b.XMult))
}

// String renders the calculation, e.g. "42 × 2 × 1.00 = 84".
func (b Breakdown) String() string {
	return fmt.Sprintf("%d × %d × %.2f = %d", b.TotalChips, b.TotalMult, b.XMult, b.Score())
}

// ScoreResult is the outcome of scoring one played hand.
type ScoreResult struct {
	HandType  poker.HandType `json:"hand_type"`
	Level     int            `json:"level"`
	Score     int            `json:"score"`
	Cards     []poker.Card   `json:"cards"`
	Breakdown Breakdown      `json:"breakdown"`
}

// Calculator scores hands against its own level table. Level updates and
// scoring may be called from different goroutines: writers take the lock and
// each Score call works on a snapshot of the table.
type Calculator struct {
	mu     sync.RWMutex
	levels LevelTable
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLevels starts the calculator from an existing level table.
func WithLevels(levels LevelTable) Option {
	return func(c *Calculator) { c.levels = levels }
}

// NewCalculator creates a calculator with every hand type at level 1 unless
// configured otherwise.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{levels: DefaultLevels()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Levels returns a snapshot of the level table.
func (c *Calculator) Levels() LevelTable {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.levels
}

// Level returns the current level of a hand type.
func (c *Calculator) Level(ht poker.HandType) int {
	return c.Levels().Level(ht)
}

// SetLevel sets the level of one hand type.
func (c *Calculator) SetLevel(ht poker.HandType, level int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	levels, err := c.levels.With(ht, level)
	if err != nil {
		return err
	}
	c.levels = levels
	return nil
}

// SetLevels applies several level changes at once. Nothing is applied if any
// entry is invalid.
func (c *Calculator) SetLevels(levels map[poker.HandType]int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.levels
	for ht, level := range levels {
		var err error
		if next, err = next.With(ht, level); err != nil {
			return err
		}
	}
	c.levels = next
	return nil
}

// Score classifies and scores a played hand. Only the first five cards take
// part. Every card is validated first, so a malformed card fails the whole
// call with poker.ErrInvalidCard. An empty hand scores 0 as High Card.
func (c *Calculator) Score(cards []poker.Card, jokers ...Joker) (ScoreResult, error) {
	for i, card := range cards {
		if err := card.Validate(); err != nil {
			return ScoreResult{}, fmt.Errorf("card %d: %w", i+1, err)
		}
	}
	if len(cards) > poker.MaxHandSize {
		cards = cards[:poker.MaxHandSize]
	}

	levels := c.Levels()
	if len(cards) == 0 {
		return ScoreResult{HandType: poker.HighCard, Level: levels.Level(poker.HighCard), Cards: []poker.Card{}, Breakdown: Breakdown{XMult: 1.0}}, nil
	}

	handType := poker.Classify(cards)
	level := levels.Level(handType)
	baseChips, baseMult := BaseValues(handType).AtLevel(level)

	b := Breakdown{
		BaseChips:  baseChips,
		BaseMult:   baseMult,
		TotalChips: baseChips,
		TotalMult:  baseMult,
		XMult:      1.0,
	}
	b.TotalChips += lo.SumBy(cards, poker.Card.Chips)
	b.TotalMult += lo.SumBy(cards, poker.Card.Mult)
	for _, card := range cards {
		b.XMult *= card.XMult()
	}

	scored := make([]poker.Card, len(cards))
	copy(scored, cards)

	return ScoreResult{
		HandType:  handType,
		Level:     level,
		Score:     b.Score(),
		Cards:     scored,
		Breakdown: b,
	}, nil
}
