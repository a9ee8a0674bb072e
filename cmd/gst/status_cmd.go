package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/gst/internal/log"
	"github.com/raphi011/gst/internal/output"
	"github.com/raphi011/gst/internal/scan"
	"github.com/raphi011/gst/internal/status"
)

// statusJSON is the --json output shape.
type statusJSON struct {
	Branch  *status.BranchInfo `json:"branch,omitempty"`
	Entries []status.Entry     `json:"entries"`
	Cached  bool               `json:"cached"`
}

func newStatusCmd() *cobra.Command {
	var (
		untracked   string
		showIgnored bool
		showBranch  bool
		jsonOutput  bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:     "status [pathspec...]",
		Short:   "Show working tree status, from the record when possible",
		Aliases: []string{"st"},
		Args:    cobra.ArbitraryArgs,
		Long: `Show the working tree status.

If the persisted record's parameters can satisfy the query (same ignored
mode, derivable untracked mode, covering path scope), the answer is
derived from the record without scanning the filesystem. Otherwise a
full live scan runs at exactly the requested parameters and its result
replaces the record.`,
		Example: `  gst status                   # status for the whole repo
  gst status src/              # limit to a subtree
  gst status -u all            # list every untracked file
  gst status --ignored         # include ignored paths
  gst status -b --json         # machine-readable output with branch info`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
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
				Branch:    showBranch,
			}

			scanner := &scan.GitScanner{Dir: workDir, AheadBehind: cfg.AheadBehind}
			res, err := resolveStatus(ctx, scanner, info.slot, q, noCache)
			if err != nil {
				return err
			}

			if res.derived {
				l.Debugf("answered from record %s\n", info.slot)
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(statusJSON{
					Branch:  res.branch,
					Entries: res.entries,
					Cached:  res.derived,
				})
			}

			styled := output.StyleEnabled(cfg.Color, os.Stdout.Fd())
			if showBranch && res.branch != nil {
				out.Println(output.BranchLine(res.branch, styled))
			}
			for _, e := range res.entries {
				out.Println(output.Render(e, styled))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&untracked, "untracked-files", "u", cfg.Untracked, "untracked reporting: no, normal or all")
	cmd.Flags().BoolVar(&showIgnored, "ignored", cfg.ShowIgnored, "show ignored paths")
	cmd.Flags().BoolVarP(&showBranch, "branch", "b", false, "show branch and ahead/behind info")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "always scan live; do not read or write the record")

	return cmd
}
