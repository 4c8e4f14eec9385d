package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/napolitain/settlement-solver/internal/loader"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a snapshot between JSON and protobuf",
		Long: `Reads a snapshot (.json or .pb) and writes it in the format named by
the output file extension.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loader.LoadSnapshot(args[0])
			if err != nil {
				return fmt.Errorf("loading snapshot: %w", err)
			}

			var data []byte
			switch strings.ToLower(filepath.Ext(args[1])) {
			case ".pb", ".binpb":
				data, err = loader.MarshalSnapshotProto(snap)
			default:
				data, err = json.MarshalIndent(snap, "", "  ")
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[1], err)
			}
			logger.Info("snapshot converted", "from", args[0], "to", args[1], "bytes", len(data))
			return nil
		},
	}
}
