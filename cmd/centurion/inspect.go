package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zeusync/centurion/internal/core/trace"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect TRACE",
		Short: "Summarize a recorded trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			recs, err := trace.ReadAll(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			ticks, hits := 0, 0
			for _, r := range recs {
				switch r.Kind {
				case trace.KindHeader:
					h := r.Header
					fmt.Fprintf(out, "run %s seed=%d arena=%gx%g epoch=%g objects=%d agents=%d\n",
						h.RunID, h.Seed, h.SizeX, h.SizeY, h.Epoch, len(h.Objects), len(h.Agents))
				case trace.KindTick:
					ticks++
					for _, b := range r.Tick.Beams {
						if b.Hit && b.Fresh {
							hits++
						}
					}
				case trace.KindFooter:
					ft := r.Footer
					fmt.Fprintf(out, "footer ticks=%d sim_time=%.3f collisions=%d fingerprint=%s canceled=%t\n",
						ft.Ticks, ft.SimTime, ft.Collisions, ft.Fingerprint, ft.Canceled)
				}
			}
			fmt.Fprintf(out, "ticks recorded=%d fresh beam hits=%d\n", ticks, hits)
			return nil
		},
	}
}
