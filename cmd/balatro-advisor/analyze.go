package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lox/balatro-advisor/internal/advisor"
	"github.com/lox/balatro-advisor/internal/display"
	"github.com/lox/balatro-advisor/internal/scoring"
	"github.com/lox/balatro-advisor/poker"
)

// parseHand joins card arguments so both "Ks Kh" and Ks Kh work
func parseHand(args []string) ([]poker.Card, error) {
	cards, err := poker.ParseCards(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("no cards given")
	}
	return cards, nil
}

// ScoreCmd scores cards as a single played hand
type ScoreCmd struct {
	Cards []string `arg:"" help:"Cards to play, e.g. Ks Kh 7d 3c 2s or As:glass"`
}

func (c *ScoreCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	hand, err := parseHand(c.Cards)
	if err != nil {
		return err
	}

	calc := scoring.NewCalculator(scoring.WithLevels(e.levels))
	result, err := calc.Score(hand)
	if err != nil {
		return err
	}
	e.logger.Debug("Scored hand", "hand", poker.FormatCards(hand), "type", result.HandType, "score", result.Score)

	printf("%s\n", display.Score(result))
	return nil
}

// BestCmd searches a hand for its highest scoring play
type BestCmd struct {
	Cards []string `arg:"" help:"Cards held"`
	Top   int      `default:"5" help:"Number of ranked plays to show"`
}

func (c *BestCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	hand, err := parseHand(c.Cards)
	if err != nil {
		return err
	}

	adv := advisor.New(e.logger, advisor.WithCalculator(scoring.NewCalculator(scoring.WithLevels(e.levels))))
	plays, err := adv.Alternatives(hand)
	if err != nil {
		return err
	}

	printf("%s\n", display.HeaderStyle.Render("🃏 BEST PLAYS"))
	printf("%s\n", display.Cards(hand))
	printf("\n%s", display.Plays(plays, c.Top))
	return nil
}

// RecommendCmd advises on a full game situation
type RecommendCmd struct {
	Cards    []string `arg:"" help:"Cards held"`
	Target   int      `default:"300" help:"Score needed to beat the blind"`
	Hands    int      `default:"3" help:"Hands remaining"`
	Discards int      `default:"3" help:"Discards remaining"`
	Ante     int      `default:"1" help:"Current ante"`
	Money    int      `default:"4" help:"Money held"`
	JSON     bool     `name:"json" help:"Print the report as JSON"`
}

func (c *RecommendCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	hand, err := parseHand(c.Cards)
	if err != nil {
		return err
	}

	adv := advisor.New(e.logger, advisor.WithCalculator(scoring.NewCalculator(scoring.WithLevels(e.levels))))
	report, err := adv.Report(advisor.GameState{
		Hand:              hand,
		TargetScore:       c.Target,
		HandsRemaining:    c.Hands,
		DiscardsRemaining: c.Discards,
		Ante:              c.Ante,
		Money:             c.Money,
	})
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printf("%s\n", display.Report(report))
	if report.Primary.Action == advisor.ActionDiscard {
		suggestion, err := adv.SuggestDiscard(hand)
		if err != nil {
			return err
		}
		printf("\n%s\n", display.DiscardSuggestion(suggestion))
	}
	return nil
}
