package slots

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/osse101/SlotMachine_Go/internal/logger"
)

// Game runs interactive sessions over a line-oriented text interface
type Game struct {
	table   *Paytable
	spinner Spinner
}

// NewGame creates a game using the given paytable and spinner
func NewGame(table *Paytable, spinner Spinner) *Game {
	return &Game{table: table, spinner: spinner}
}

// Run plays one session: it prompts on out, reads one line per decision from
// in, and returns the final credit balance. End of input counts as declining.
// Configuration is validated before anything is written.
func (g *Game) Run(ctx context.Context, in io.Reader, out io.Writer, cfg SessionConfig) (int, error) {
	session, err := NewSession(cfg, g.spinner, g.table)
	if err != nil {
		return 0, err
	}

	if _, ok := logger.SessionIDFromContext(ctx); !ok {
		ctx = logger.WithSessionID(ctx, logger.GenerateSessionID())
	}
	log := logger.FromContext(ctx)
	log.Info("Game session started", "starting_credits", cfg.StartingCredits, "cost_per_spin", cfg.CostPerSpin)

	printer := NewPrinter(out)
	printer.Welcome(session.Credits(), cfg.CostPerSpin)

	input := newLineReader(in)
	for session.State() == StateAwaitingInput {
		if err := ctx.Err(); err != nil {
			session.Cancel()
			log.Warn("Game session cancelled", "credits", session.Credits(), "error", err)
			return session.Credits(), err
		}

		printer.Prompt()
		res := input.next(ctx)
		switch {
		case res.err == nil:
		case errors.Is(res.err, io.EOF):
		case ctx.Err() != nil:
			session.Cancel()
			log.Warn("Game session cancelled", "credits", session.Credits(), "error", res.err)
			return session.Credits(), res.err
		default:
			session.Cancel()
			return session.Credits(), fmt.Errorf("failed to read player input: %w", res.err)
		}
		if res.tooLong {
			log.Warn("Discarded over-long input line", "max_bytes", MaxInputLineBytes)
		}
		line := res.line

		report, err := session.Step(line)
		if err != nil {
			log.Error("Spin failed", "error", err, "credits", report.Credits)
			return report.Credits, err
		}
		if report.Outcome != nil {
			log.Debug("Spin completed",
				"spin", report.Outcome.Index,
				"result", FormatResult(report.Outcome.Result),
				"payout", report.Outcome.Payout,
				"credits", report.Credits)
			printer.Spin(*report.Outcome, report.Credits)
		}
	}

	printer.GameOver(session.Credits())
	log.Info("Game session ended",
		"reason", session.EndReason(),
		"spins", session.Spins(),
		"final_credits", session.Credits())
	return session.Credits(), nil
}

// RunGame plays one session on the default paytable with crypto-random reels
func RunGame(ctx context.Context, in io.Reader, out io.Writer, startingCredits, costPerSpin int) (int, error) {
	table := DefaultPaytable()
	game := NewGame(table, NewReelSpinner(table, nil))
	return game.Run(ctx, in, out, SessionConfig{
		StartingCredits: startingCredits,
		CostPerSpin:     costPerSpin,
	})
}
