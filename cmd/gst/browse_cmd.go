package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gst/internal/output"
	"github.com/raphi011/gst/internal/scan"
	"github.com/raphi011/gst/internal/status"
	"github.com/raphi011/gst/internal/ui"
)

func newBrowseCmd() *cobra.Command {
	var (
		untracked   string
		showIgnored bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "browse [pathspec...]",
		Short: "Interactively browse status entries",
		Args:  cobra.ArbitraryArgs,
		Long: `Open an interactive, fuzzy-filterable browser over the status entries.
Enter prints the highlighted path (for use in shell substitutions),
ctrl+y copies it to the clipboard.

The entries come from the same record-or-rescan pipeline as gst status.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			mode, err := status.ParseUntrackedMode(untracked)
			if err != nil {
				return err
			}

			info, err := locateRepo(ctx, cfg, workDir)
			if err != nil {
				return err
			}
			scope, err := relativeScope(workDir, info.topLevel, args)
			if err != nil {
				return err
			}

			q := status.Query{
				Untracked: mode,
				Ignored:   ignoredMode(showIgnored),
				Scope:     scope,
				Branch:    true,
			}

			scanner := &scan.GitScanner{Dir: workDir, AheadBehind: cfg.AheadBehind}
			res, err := resolveStatus(ctx, scanner, info.slot, q, noCache)
			if err != nil {
				return err
			}

			result, err := ui.RunBrowser(res.entries, res.branch)
			if err != nil {
				return err
			}
			if result.Selected {
				out.Println(result.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&untracked, "untracked-files", "u", cfg.Untracked, "untracked reporting: no, normal or all")
	cmd.Flags().BoolVar(&showIgnored, "ignored", cfg.ShowIgnored, "show ignored paths")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "always scan live; do not read or write the record")

	return cmd
}
