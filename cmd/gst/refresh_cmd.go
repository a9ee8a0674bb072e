package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gst/internal/output"
	"github.com/raphi011/gst/internal/record"
	"github.com/raphi011/gst/internal/scan"
	"github.com/raphi011/gst/internal/status"
)

func newRefreshCmd() *cobra.Command {
	var showIgnored bool

	cmd := &cobra.Command{
		Use:   "refresh [pathspec...]",
		Short: "Scan now and capture a maximally reusable record",
		Args:  cobra.ArbitraryArgs,
		Long: `Run a full live scan at the "complete" untracked granularity and
overwrite the record slot with the result.

A complete record stores every untracked file individually plus markers
for fully untracked directories, so it can answer later queries at any
untracked granularity. Branch metadata (including ahead/behind counts)
is captured now and served verbatim from the record afterwards; this
command is also the way to deliberately refresh those cached counts.`,
		Example: `  gst refresh             # recapture the whole repo
  gst refresh --ignored   # also record ignored paths
  gst refresh src/        # record scoped to a subtree`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			info, err := locateRepo(ctx, cfg, workDir)
			if err != nil {
				return err
			}
			scope, err := relativeScope(workDir, info.topLevel, args)
			if err != nil {
				return err
			}

			q := status.Query{
				Untracked: status.UntrackedComplete,
				Ignored:   ignoredMode(showIgnored),
				Scope:     scope,
				Branch:    true,
			}

			scanner := &scan.GitScanner{Dir: workDir, AheadBehind: cfg.AheadBehind}
			res, err := scan.Rescan(ctx, scanner, q)
			if err != nil {
				return err
			}

			if err := record.Save(info.slot, record.Capture(q, res.Entries, res.Branch)); err != nil {
				return err
			}

			out.Printf("Captured %d entries to %s\n", len(res.Entries), info.slot)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showIgnored, "ignored", cfg.ShowIgnored, "also record ignored paths")

	return cmd
}
