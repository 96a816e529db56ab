package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/lox/balatro-advisor/internal/advisor"
	"github.com/lox/balatro-advisor/internal/display"
	"github.com/lox/balatro-advisor/internal/fileutil"
	"github.com/lox/balatro-advisor/internal/scenario"
)

// ScenarioCmd analyses one scenario, built in or from a file
type ScenarioCmd struct {
	Name string `arg:"" optional:"" help:"Scenario name (defaults to every scenario)"`
	File string `short:"f" type:"existingfile" help:"HCL scenario file to load instead of the built-ins"`
	List bool   `help:"List scenario names and exit"`
}

func (c *ScenarioCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	scenarios := scenario.Builtins()
	if c.File != "" {
		if scenarios, err = scenario.Load(c.File); err != nil {
			return err
		}
	}

	if c.List {
		for _, s := range scenarios {
			printf("%-16s %s\n", s.Name, s.Description)
		}
		return nil
	}

	if c.Name != "" {
		i := slices.IndexFunc(scenarios, func(s scenario.Scenario) bool { return s.Name == c.Name })
		if i < 0 {
			return fmt.Errorf("unknown scenario %q (try --list)", c.Name)
		}
		scenarios = scenarios[i : i+1]
	}

	results, err := scenario.RunAll(context.Background(), e.logger, scenarios)
	if err != nil {
		return err
	}
	printResults(results)
	return nil
}

// BatchCmd analyses every scenario across several files concurrently
type BatchCmd struct {
	Files []string `arg:"" type:"existingfile" help:"HCL scenario files"`
	Out   string   `type:"path" help:"Also write the reports as JSON to this file"`
}

func (c *BatchCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	var scenarios []scenario.Scenario
	for _, file := range c.Files {
		loaded, err := scenario.Load(file)
		if err != nil {
			return err
		}
		e.logger.Debug("Loaded scenarios", "file", file, "count", len(loaded))
		scenarios = append(scenarios, loaded...)
	}

	results, err := scenario.RunAll(context.Background(), e.logger, scenarios)
	if err != nil {
		return err
	}
	printResults(results)
	if c.Out != "" {
		if err := writeResults(c.Out, results); err != nil {
			return err
		}
		e.logger.Info("Wrote reports", "file", c.Out, "count", len(results))
	}

	printf("\n%s\n", display.HeaderStyle.Render("SUMMARY"))
	for _, r := range results {
		p := r.Report.Primary
		printf("%-20s %-8s %-16s %6d  %s\n", r.Scenario.Name, p.Action, p.HandType, p.ExpectedScore, r.Report.Urgency)
	}
	return nil
}

type resultJSON struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Report      advisor.Report `json:"report"`
}

// writeResults saves reports atomically so a reader polling the file never
// sees a partial write.
func writeResults(path string, results []scenario.Result) error {
	out := make([]resultJSON, len(results))
	for i, r := range results {
		out[i] = resultJSON{Name: r.Scenario.Name, Description: r.Scenario.Description, Report: r.Report}
	}
	return fileutil.WriteJSON(path, out)
}

func printResults(results []scenario.Result) {
	for i, r := range results {
		if i > 0 {
			printf("\n")
		}
		printf("%s\n", display.HeaderStyle.Render(fmt.Sprintf("📖 %s", r.Scenario.Name)))
		if r.Scenario.Description != "" {
			printf("%s\n", display.InfoStyle.Render(r.Scenario.Description))
		}
		printf("%s\n", display.Report(r.Report))
	}
}
