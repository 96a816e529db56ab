package scenario

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lox/balatro-advisor/internal/advisor"
	"github.com/lox/balatro-advisor/internal/scoring"
	"golang.org/x/sync/errgroup"
)

// Result pairs a scenario with its report.
type Result struct {
	Scenario Scenario
	Report   advisor.Report
}

// Evaluate reports on a single scenario with its own calculator.
func Evaluate(logger *log.Logger, s Scenario, opts ...advisor.Option) (Result, error) {
	calc := scoring.NewCalculator(scoring.WithLevels(s.Levels))
	adv := advisor.New(logger.With("scenario", s.Name), slices.Concat(opts, []advisor.Option{advisor.WithCalculator(calc)})...)

	report, err := adv.Report(s.GameState())
	if err != nil {
		return Result{}, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	return Result{Scenario: s, Report: report}, nil
}

// RunAll evaluates scenarios concurrently, one calculator each. Results keep
// the input order. The first failure cancels the remaining work.
func RunAll(ctx context.Context, logger *log.Logger, scenarios []Scenario, opts ...advisor.Option) ([]Result, error) {
	results := make([]Result, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, s := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := Evaluate(logger, s, opts...)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
