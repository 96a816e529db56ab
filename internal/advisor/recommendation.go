package advisor

import (
	"fmt"

	"github.com/lox/balatro-advisor/internal/search"
	"github.com/lox/balatro-advisor/poker"
)

// Action is what the player should do with the current hand.
type Action string

const (
	ActionPlay    Action = "PLAY"
	ActionDiscard Action = "DISCARD"
)

// Confidence qualifies a recommendation.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Recommendation is the advice for one decision point.
type Recommendation struct {
	Action         Action         `json:"action"`
	Confidence     Confidence     `json:"confidence"`
	Cards          []poker.Card   `json:"cards"`
	HandType       poker.HandType `json:"hand_type"`
	ExpectedScore  int            `json:"expected_score"`
	MeetsTarget    bool           `json:"meets_target"`
	CardsToDiscard []poker.Card   `json:"cards_to_discard"`
	Reasoning      []string       `json:"reasoning"`
}

// Decide applies the play/discard policy to the best available play:
//
//  1. the best play reaches the target: play it now
//  2. otherwise, with discards left: discard the unused cards
//  3. otherwise, with more than one hand left: play and chip away
//  4. otherwise: last hand, play the best available
func Decide(best search.Play, targetScore, handsRemaining, discardsRemaining int) Recommendation {
	rec := Recommendation{
		Action:         ActionPlay,
		Confidence:     ConfidenceHigh,
		Cards:          best.RecommendedCards,
		HandType:       best.HandType,
		ExpectedScore:  best.Score,
		MeetsTarget:    best.Score >= targetScore,
		CardsToDiscard: best.CardsToDiscard,
	}

	if rec.MeetsTarget {
		rec.addReasoning("✓ This play scores %d, exceeding target of %d", best.Score, targetScore)
		rec.addReasoning("→ Play immediately to conserve hands for next blind")
		return rec
	}

	deficit := targetScore - best.Score
	rec.addReasoning("⚠ This play scores %d, %d short of target %d", best.Score, deficit, targetScore)

	switch {
	case discardsRemaining > 0:
		rec.Action = ActionDiscard
		rec.Confidence = ConfidenceMedium
		rec.addReasoning("→ Consider discarding %d cards to fish for better hand", len(best.CardsToDiscard))
		rec.addReasoning("   Discards remaining: %d", discardsRemaining)
	case handsRemaining > 1:
		rec.addReasoning("→ Play now, you have %d more hands to reach target", handsRemaining-1)
	default:
		rec.Confidence = ConfidenceLow
		rec.addReasoning("→ Last hand - play best available")
	}
	return rec
}

func (r *Recommendation) addReasoning(format string, args ...any) {
	r.Reasoning = append(r.Reasoning, fmt.Sprintf(format, args...))
}
