package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/napolitain/settlement-solver/internal/loader"
	"github.com/napolitain/settlement-solver/internal/solver/settlement"
)

func newPredictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predict <snapshot>",
		Short: "Predict when a second village can be settled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loader.LoadSnapshot(args[0])
			if err != nil {
				return fmt.Errorf("loading snapshot: %w", err)
			}

			p := settlement.Predict(snap, engineOptions())

			w := cmd.OutOrStdout()
			if jsonOutput() {
				return writeJSON(w, p)
			}
			printPrediction(w, p)
			return nil
		},
	}
}
