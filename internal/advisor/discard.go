package advisor

import (
	"fmt"

	"github.com/lox/balatro-advisor/poker"
	"github.com/samber/lo"
)

// strongPlayScore is the best-play score above which the hand is worth
// keeping as is.
const strongPlayScore = 100

// minKeep is the fewest cards a discard suggestion keeps.
const minKeep = 3

// DiscardSuggestion splits a hand into cards to keep and cards to throw away.
type DiscardSuggestion struct {
	Keep      []poker.Card `json:"keep"`
	Discard   []poker.Card `json:"discard"`
	Reasoning string       `json:"reasoning"`
}

// SuggestDiscard picks cards to discard. A hand whose best play already
// scores over 100 keeps that play. Otherwise cards that pair up, or share a
// suit with at least two others, are kept, and discards are pulled back
// (most recent first) until at least three cards are kept.
func (a *Advisor) SuggestDiscard(hand []poker.Card) (DiscardSuggestion, error) {
	best, err := a.BestPlay(hand)
	if err != nil {
		return DiscardSuggestion{}, err
	}

	if best.Score > strongPlayScore {
		return DiscardSuggestion{
			Keep:      best.RecommendedCards,
			Discard:   best.CardsToDiscard,
			Reasoning: fmt.Sprintf("Current hand is %s (%d points). Discard these cards to improve.", best.HandType, best.Score),
		}, nil
	}

	rankCounts := lo.CountValuesBy(hand, poker.Card.Rank)
	suitCounts := lo.CountValuesBy(hand, poker.Card.Suit)

	keep := []poker.Card{}
	discard := []poker.Card{}
	for _, c := range hand {
		if rankCounts[c.Rank()] >= 2 || suitCounts[c.Suit()] >= 3 {
			keep = append(keep, c)
		} else {
			discard = append(discard, c)
		}
	}

	for len(keep) < minKeep && len(discard) > 0 {
		last := discard[len(discard)-1]
		discard = discard[:len(discard)-1]
		keep = append(keep, last)
	}

	a.logger.Debug("Discard suggestion", "keep", len(keep), "discard", len(discard), "bestScore", best.Score)

	return DiscardSuggestion{
		Keep:      keep,
		Discard:   discard,
		Reasoning: fmt.Sprintf("Looking for pairs or flushes. Discarding %d low-value cards.", len(discard)),
	}, nil
}
