package advisor

import (
	"time"

	"github.com/lox/balatro-advisor/internal/search"
)

// Urgency describes how much pressure the player is under.
type Urgency string

const (
	UrgencyLow      Urgency = "LOW"
	UrgencyMedium   Urgency = "MEDIUM"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyCritical Urgency = "CRITICAL"
)

// maxAlternatives is how many ranked plays a report lists.
const maxAlternatives = 3

// Situation summarises the round in a report.
type Situation struct {
	TargetScore       int `json:"target_score"`
	HandsRemaining    int `json:"hands_remaining"`
	DiscardsRemaining int `json:"discards_remaining"`
	HandSize          int `json:"hand_size"`
}

// Report is a full analysis of a game state.
type Report struct {
	Timestamp    time.Time      `json:"timestamp"`
	Ante         int            `json:"ante"`
	Money        int            `json:"money"`
	Situation    Situation      `json:"current_situation"`
	Primary      Recommendation `json:"primary_recommendation"`
	Alternatives []search.Play  `json:"alternative_plays"`
	Urgency      Urgency        `json:"urgency"`
}

// CalculateUrgency grades a recommendation: LOW when it meets the target,
// CRITICAL on the last hand, HIGH when it reaches less than half the target
// and MEDIUM otherwise.
func CalculateUrgency(rec Recommendation, handsRemaining, targetScore int) Urgency {
	switch {
	case rec.MeetsTarget:
		return UrgencyLow
	case handsRemaining <= 1:
		return UrgencyCritical
	case 2*rec.ExpectedScore < targetScore:
		return UrgencyHigh
	default:
		return UrgencyMedium
	}
}

// Report analyses a game state: the primary recommendation, the top
// alternative plays and the urgency.
func (a *Advisor) Report(state GameState) (Report, error) {
	if err := state.Validate(); err != nil {
		return Report{}, err
	}

	rec, err := a.Recommend(state.Hand, state.TargetScore, state.HandsRemaining, state.DiscardsRemaining)
	if err != nil {
		return Report{}, err
	}
	plays, err := a.Alternatives(state.Hand)
	if err != nil {
		return Report{}, err
	}
	if len(plays) > maxAlternatives {
		plays = plays[:maxAlternatives]
	}

	report := Report{
		Timestamp: a.clock.Now(),
		Ante:      state.Ante,
		Money:     state.Money,
		Situation: Situation{
			TargetScore:       state.TargetScore,
			HandsRemaining:    state.HandsRemaining,
			DiscardsRemaining: state.DiscardsRemaining,
			HandSize:          len(state.Hand),
		},
		Primary:      rec,
		Alternatives: plays,
		Urgency:      CalculateUrgency(rec, state.HandsRemaining, state.TargetScore),
	}
	a.logger.Info("Report generated", "ante", state.Ante, "urgency", report.Urgency, "action", rec.Action)
	return report, nil
}
