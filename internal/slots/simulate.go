package slots

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/logger"
	"github.com/osse101/SlotMachine_Go/internal/metrics"
)

// Summary aggregates a batch of simulated spins
type Summary struct {
	Spins       int `json:"spins"`
	TotalPayout int `json:"total_payout"`
	Triples     int `json:"triples"`
	Pairs       int `json:"pairs"`
}

func (s *Summary) add(o domain.SpinOutcome) {
	s.Spins++
	s.TotalPayout += o.Payout
	switch o.Match {
	case domain.MatchTriple:
		s.Triples++
	case domain.MatchPair:
		s.Pairs++
	}
}

// HitRate is the fraction of spins that paid anything
func (s Summary) HitRate() float64 {
	if s.Spins == 0 {
		return 0
	}
	return float64(s.Triples+s.Pairs) / float64(s.Spins)
}

// ReturnToPlayer is total payout over what the spins would have cost
func (s Summary) ReturnToPlayer(costPerSpin int) float64 {
	if s.Spins == 0 || costPerSpin <= 0 {
		return 0
	}
	return float64(s.TotalPayout) / float64(s.Spins*costPerSpin)
}

// Simulator spins and scores without tracking credits
type Simulator struct {
	table   *Paytable
	spinner Spinner
}

// NewSimulator creates a batch simulator
func NewSimulator(spinner Spinner, table *Paytable) *Simulator {
	return &Simulator{table: table, spinner: spinner}
}

// Spins lazily yields count scored spins. Iteration stops early on the first
// scoring error, which is yielded with a zero outcome.
func (s *Simulator) Spins(count int) iter.Seq2[domain.SpinOutcome, error] {
	return func(yield func(domain.SpinOutcome, error) bool) {
		for i := 1; i <= count; i++ {
			outcome, err := s.table.Score(i, s.spinner.Spin())
			if !yield(outcome, err) || err != nil {
				return
			}
		}
	}
}

// Simulate produces exactly count outcomes, handing each to report as it is
// produced. A nil report is allowed. count must not be negative.
func (s *Simulator) Simulate(ctx context.Context, count int, report func(domain.SpinOutcome)) (Summary, error) {
	var summary Summary
	if count < 0 {
		return summary, fmt.Errorf("%w: spin count must not be negative, got %d", domain.ErrInvalidConfig, count)
	}

	log := logger.FromContext(ctx)
	for outcome, err := range s.Spins(count) {
		if err != nil {
			return summary, err
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		summary.add(outcome)
		metrics.RecordSpin(metrics.ModeSimulate, string(outcome.Match), outcome.Payout)
		log.Debug("Simulated spin", "spin", outcome.Index, "result", FormatResult(outcome.Result), "payout", outcome.Payout)
		if report != nil {
			report(outcome)
		}
	}
	return summary, nil
}

// Run simulates count spins, printing each one followed by a summary priced at costPerSpin
func (s *Simulator) Run(ctx context.Context, out io.Writer, count, costPerSpin int) (Summary, error) {
	if count < 0 {
		return Summary{}, fmt.Errorf("%w: spin count must not be negative, got %d", domain.ErrInvalidConfig, count)
	}

	printer := NewPrinter(out)
	printer.SimulationHeader(count)

	summary, err := s.Simulate(ctx, count, printer.SimulatedSpin)
	if err != nil {
		return summary, err
	}
	printer.SimulationSummary(summary, costPerSpin)
	return summary, nil
}
