package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/osse101/SlotMachine_Go/internal/config"
	"github.com/osse101/SlotMachine_Go/internal/server"
	"github.com/osse101/SlotMachine_Go/internal/slots"
	"github.com/osse101/SlotMachine_Go/internal/utils"
	"github.com/osse101/SlotMachine_Go/internal/validation"
)

const shutdownTimeout = 5 * time.Second

// run simulates the configured batch and then plays the interactive game
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	table, err := loadPaytable(cfg)
	if err != nil {
		return err
	}

	if cfg.MetricsPort > 0 {
		srv := server.NewServer(cfg.MetricsPort, cfg.Version, table, nil)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				slog.Warn("Metrics server shutdown failed", "error", err)
			}
		}()
	}

	var simRNG func(int) int
	if cfg.SimSeed != 0 {
		simRNG = utils.SeededIntn(cfg.SimSeed)
		slog.Debug("Using seeded simulator", "seed", cfg.SimSeed)
	}

	simulator := slots.NewSimulator(slots.NewReelSpinner(table, simRNG), table)
	if _, err := simulator.Run(ctx, out, cfg.SimulatedSpins, cfg.CostPerSpin); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	slots.NewPrinter(out).StartingGame()

	game := slots.NewGame(table, slots.NewReelSpinner(table, nil))
	credits, err := game.Run(ctx, in, out, slots.SessionConfig{
		StartingCredits: cfg.StartingCredits,
		CostPerSpin:     cfg.CostPerSpin,
	})
	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	slog.Info("Game finished", "credits", credits)
	return nil
}

func loadPaytable(cfg *config.Config) (*slots.Paytable, error) {
	if cfg.PaytableFile == "" {
		return slots.DefaultPaytable(), nil
	}

	table, err := slots.LoadPaytable(cfg.PaytableFile, cfg.PaytableSchema, validation.NewSchemaValidator())
	if err != nil {
		return nil, fmt.Errorf("failed to load paytable: %w", err)
	}
	slog.Info("Loaded paytable", "path", cfg.PaytableFile, "symbols", table.Len())
	return table, nil
}
