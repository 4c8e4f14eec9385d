package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/napolitain/settlement-solver/internal/loader"
	"github.com/napolitain/settlement-solver/internal/solver/settlement"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <snapshot>",
		Short: "Compare slot models and celebration policies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loader.LoadSnapshot(args[0])
			if err != nil {
				return fmt.Errorf("loading snapshot: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt)
			defer stop()

			results, err := settlement.CompareStrategies(ctx, snap, settlement.DefaultStrategies(engineOptions()))
			if err != nil {
				return fmt.Errorf("comparing strategies: %w", err)
			}

			w := cmd.OutOrStdout()
			if jsonOutput() {
				return writeJSON(w, results)
			}
			best, _ := settlement.Best(results)
			printComparison(w, results, best.Strategy)
			return nil
		},
	}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
