// Package search finds the highest scoring play within a hand by exhaustive
// enumeration of its k-card subsets. Hands in play hold at most a dozen
// cards, so C(N, 5) stays in the hundreds and brute force is exact.
package search

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/lox/balatro-advisor/internal/scoring"
	"github.com/lox/balatro-advisor/poker"
	"github.com/samber/lo"
)

// ErrInvalidSubsetSize is returned when a negative play size is requested.
var ErrInvalidSubsetSize = errors.New("invalid subset size")

// Scorer scores a played hand. *scoring.Calculator satisfies it.
type Scorer interface {
	Score(cards []poker.Card, jokers ...scoring.Joker) (scoring.ScoreResult, error)
}

// Play is one candidate play: the score of RecommendedCards plus the cards
// left over from the hand.
type Play struct {
	scoring.ScoreResult
	RecommendedCards []poker.Card `json:"recommended_cards"`
	CardsToDiscard   []poker.Card `json:"cards_to_discard"`
}

// MarshalJSON leaves out the scored cards, which always equal RecommendedCards.
func (p Play) MarshalJSON() ([]byte, error) {
	type play Play
	return json.Marshal(struct {
		play
		Cards []poker.Card `json:"cards,omitempty"`
	}{play: play(p)})
}

// BestPlay returns the highest scoring play of up to five cards from hand.
func BestPlay(s Scorer, hand []poker.Card) (Play, error) {
	return BestPlayK(s, hand, poker.MaxHandSize)
}

// BestPlayK returns the highest scoring k-card play from hand. A hand of k
// cards or fewer is scored whole. Ties keep the first combination in
// lexicographic index order.
func BestPlayK(s Scorer, hand []poker.Card, k int) (Play, error) {
	if k < 0 {
		return Play{}, fmt.Errorf("%w: %d", ErrInvalidSubsetSize, k)
	}
	if err := validateHand(hand); err != nil {
		return Play{}, err
	}

	if len(hand) <= k {
		return scorePlay(s, hand, hand)
	}

	var best Play
	found := false
	combos := NewCombinations(len(hand), k)
	for combos.Next() {
		play, err := scorePlay(s, hand, pick(hand, combos.Indices()))
		if err != nil {
			return Play{}, err
		}
		if !found || play.Score > best.Score {
			best = play
			found = true
		}
	}
	return best, nil
}

// RankAllPlays scores every five-card play from hand (or the whole hand when
// it holds five or fewer) and returns them best first. Plays with equal
// scores keep their enumeration order.
func RankAllPlays(s Scorer, hand []poker.Card) ([]Play, error) {
	if err := validateHand(hand); err != nil {
		return nil, err
	}
	if len(hand) <= poker.MaxHandSize {
		play, err := scorePlay(s, hand, hand)
		if err != nil {
			return nil, err
		}
		return []Play{play}, nil
	}

	plays := make([]Play, 0, Count(len(hand), poker.MaxHandSize))
	combos := NewCombinations(len(hand), poker.MaxHandSize)
	for combos.Next() {
		play, err := scorePlay(s, hand, pick(hand, combos.Indices()))
		if err != nil {
			return nil, err
		}
		plays = append(plays, play)
	}

	slices.SortStableFunc(plays, func(a, b Play) int {
		return b.Score - a.Score
	})
	return plays, nil
}

// Complement returns the cards of hand that are not in selected, matched by
// card identity so duplicate-valued cards are told apart.
func Complement(hand, selected []poker.Card) []poker.Card {
	chosen := lo.SliceToMap(selected, func(c poker.Card) (uuid.UUID, struct{}) {
		return c.ID(), struct{}{}
	})
	return lo.Filter(hand, func(c poker.Card, _ int) bool {
		_, ok := chosen[c.ID()]
		return !ok
	})
}

func validateHand(hand []poker.Card) error {
	for i, c := range hand {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("card %d: %w", i+1, err)
		}
	}
	return nil
}

func pick(hand []poker.Card, indices []int) []poker.Card {
	cards := make([]poker.Card, len(indices))
	for i, idx := range indices {
		cards[i] = hand[idx]
	}
	return cards
}

func scorePlay(s Scorer, hand, cards []poker.Card) (Play, error) {
	result, err := s.Score(cards)
	if err != nil {
		return Play{}, err
	}
	recommended := make([]poker.Card, len(cards))
	copy(recommended, cards)
	return Play{
		ScoreResult:      result,
		RecommendedCards: recommended,
		CardsToDiscard:   Complement(hand, recommended),
	}, nil
}
