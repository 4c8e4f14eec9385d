package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/napolitain/settlement-solver/internal/loader"
	"github.com/napolitain/settlement-solver/internal/solver/settlement"
)

func newTimelineCmd() *cobra.Command {
	var every int
	var eventsOnly bool

	cmd := &cobra.Command{
		Use:   "timeline <snapshot>",
		Short: "Print the simulated hour-by-hour timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if every < 1 {
				return fmt.Errorf("--every must be at least 1, got %d", every)
			}

			snap, err := loader.LoadSnapshot(args[0])
			if err != nil {
				return fmt.Errorf("loading snapshot: %w", err)
			}

			res := settlement.Simulate(snap, engineOptions())

			w := cmd.OutOrStdout()
			if jsonOutput() {
				return writeJSON(w, res.Timeline)
			}
			printTimeline(w, sampleTimeline(res.Timeline, every, eventsOnly))
			printCard(w, res.Prediction)
			return nil
		},
	}

	cmd.Flags().IntVar(&every, "every", 24, "Show every Nth hour")
	cmd.Flags().BoolVar(&eventsOnly, "events", false, "Show only hours with events")
	return cmd
}

// sampleTimeline keeps hour 0, the last hour and every Nth hour. With
// eventsOnly it keeps the hours that carry events instead.
func sampleTimeline(tl settlement.Timeline, every int, eventsOnly bool) settlement.Timeline {
	var out settlement.Timeline
	for i, e := range tl {
		keep := e.Hour%every == 0 || i == len(tl)-1
		if eventsOnly {
			keep = len(e.Events) > 0
		}
		if keep {
			out = append(out, e)
		}
	}
	return out
}
