package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/balatro-advisor/internal/advisor"
	"github.com/lox/balatro-advisor/internal/display"
	"github.com/lox/balatro-advisor/internal/randutil"
	"github.com/lox/balatro-advisor/internal/scoring"
	"github.com/lox/balatro-advisor/internal/tui"
)

// ReferenceCmd prints the scoring reference at the configured levels
type ReferenceCmd struct{}

func (c *ReferenceCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	printf("%s\n", display.ScoringReference(e.levels))
	return nil
}

// DemoCmd runs the interactive menu
type DemoCmd struct {
	Seed *int64 `help:"Deterministic seed for random hands (optional)"`
}

func (c *DemoCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	seed := randutil.Seed()
	if c.Seed != nil {
		seed = *c.Seed
	}
	e.logger.Debug("Starting demo", "seed", seed)

	adv := advisor.New(e.logger, advisor.WithCalculator(scoring.NewCalculator(scoring.WithLevels(e.levels))))
	model := tui.NewModel(adv, randutil.New(seed), e.logger)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}
