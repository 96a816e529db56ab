// Package scenario loads game situations from HCL files and evaluates them.
//
//	levels = { "Pair" = 2 }
//
//	scenario "easy-win" {
//	  description        = "Spade flush available"
//	  hand               = "Ks Qs Js Ts 9s 7d 3c 2h"
//	  target_score       = 250
//	  hands_remaining    = 3
//	  discards_remaining = 3
//	}
package scenario

import (
	"errors"
	"fmt"
	"maps"
	rand "math/rand/v2"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/balatro-advisor/internal/advisor"
	"github.com/lox/balatro-advisor/internal/scoring"
	"github.com/lox/balatro-advisor/poker"
)

// Defaults for counters a scenario block leaves out.
const (
	DefaultTargetScore       = 300
	DefaultHandsRemaining    = 3
	DefaultDiscardsRemaining = 3
	DefaultAnte              = 1
	DefaultMoney             = 4
	DefaultHandSize          = 8
)

// ErrNoScenarios is returned for a file without scenario blocks.
var ErrNoScenarios = errors.New("no scenarios defined")

// Scenario is one game situation to analyse.
type Scenario struct {
	Name              string
	Description       string
	Hand              []poker.Card
	TargetScore       int
	HandsRemaining    int
	DiscardsRemaining int
	Ante              int
	Money             int
	Levels            scoring.LevelTable
}

// GameState converts the scenario into advisor input.
func (s Scenario) GameState() advisor.GameState {
	return advisor.GameState{
		Hand:              s.Hand,
		TargetScore:       s.TargetScore,
		HandsRemaining:    s.HandsRemaining,
		DiscardsRemaining: s.DiscardsRemaining,
		Ante:              s.Ante,
		Money:             s.Money,
	}
}

// Validate checks a scenario is playable.
func (s Scenario) Validate() error {
	if len(s.Hand) == 0 {
		return fmt.Errorf("scenario %s: hand is empty", s.Name)
	}
	for i, c := range s.Hand {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("scenario %s: card %d: %w", s.Name, i+1, err)
		}
	}
	if err := s.GameState().Validate(); err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	if s.Ante < 0 || s.Money < 0 {
		return fmt.Errorf("scenario %s: %w: ante and money must not be negative", s.Name, advisor.ErrInvalidGameState)
	}
	return nil
}

// fileConfig is the HCL layout of a scenario file
type fileConfig struct {
	Levels    map[string]int `hcl:"levels,optional"`
	Scenarios []blockConfig  `hcl:"scenario,block"`
}

type blockConfig struct {
	Name              string         `hcl:"name,label"`
	Description       string         `hcl:"description,optional"`
	Hand              string         `hcl:"hand"`
	TargetScore       *int           `hcl:"target_score,optional"`
	HandsRemaining    *int           `hcl:"hands_remaining,optional"`
	DiscardsRemaining *int           `hcl:"discards_remaining,optional"`
	Ante              *int           `hcl:"ante,optional"`
	Money             *int           `hcl:"money,optional"`
	Levels            map[string]int `hcl:"levels,optional"`
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// Load reads scenarios from an HCL file.
func Load(filename string) ([]Scenario, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes scenarios from HCL source. File level hand levels apply to
// every scenario; a scenario's own levels override them per hand type.
func Parse(src []byte, filename string) ([]Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoScenarios)
	}

	seen := make(map[string]bool, len(cfg.Scenarios))
	scenarios := make([]Scenario, 0, len(cfg.Scenarios))
	for _, block := range cfg.Scenarios {
		if seen[block.Name] {
			return nil, fmt.Errorf("%s: duplicate scenario %q", filename, block.Name)
		}
		seen[block.Name] = true

		s, err := block.scenario(cfg.Levels)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func (b blockConfig) scenario(fileLevels map[string]int) (Scenario, error) {
	hand, err := poker.ParseCards(b.Hand)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", b.Name, err)
	}

	merged := maps.Clone(fileLevels)
	if merged == nil {
		merged = map[string]int{}
	}
	maps.Copy(merged, b.Levels)
	levels, err := scoring.ParseLevels(merged)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", b.Name, err)
	}

	s := Scenario{
		Name:              b.Name,
		Description:       b.Description,
		Hand:              hand,
		TargetScore:       intOr(b.TargetScore, DefaultTargetScore),
		HandsRemaining:    intOr(b.HandsRemaining, DefaultHandsRemaining),
		DiscardsRemaining: intOr(b.DiscardsRemaining, DefaultDiscardsRemaining),
		Ante:              intOr(b.Ante, DefaultAnte),
		Money:             intOr(b.Money, DefaultMoney),
		Levels:            levels,
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Random deals a hand of size cards from a freshly shuffled deck and pairs it
// with the default counters.
func Random(rng *rand.Rand, size int) Scenario {
	if size <= 0 || size > poker.DeckSize {
		size = DefaultHandSize
	}
	return Scenario{
		Name:              "random",
		Description:       "Random hand",
		Hand:              poker.NewDeck(rng).Deal(size),
		TargetScore:       DefaultTargetScore,
		HandsRemaining:    DefaultHandsRemaining,
		DiscardsRemaining: DefaultDiscardsRemaining,
		Ante:              DefaultAnte,
		Money:             DefaultMoney,
	}
}
