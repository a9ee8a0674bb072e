package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/raphi011/gst/internal/output"
	"github.com/raphi011/gst/internal/record"
	"github.com/raphi011/gst/internal/storage"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the status record",
		Long: `Show the repository's persisted status record: where it lives, when it
was captured and with which parameters.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			info, err := locateRepo(ctx, cfg, workDir)
			if err != nil {
				return err
			}

			rec, err := record.Load(info.slot)
			if err != nil {
				if errors.Is(err, record.ErrNotFound) {
					out.Printf("no record at %s\n", info.slot)
					return nil
				}
				return err
			}

			out.Printf("location:    %s\n", info.slot)
			out.Printf("captured at: %s\n", rec.CapturedAt.Format("2006-01-02 15:04:05"))
			out.Printf("untracked:   %s\n", rec.Untracked)
			out.Printf("ignored:     %s\n", rec.Ignored)
			if rec.Scope.IsRoot() {
				out.Printf("scope:       (whole repository)\n")
			} else {
				out.Printf("scope:       %v\n", []string(rec.Scope))
			}
			if rec.Branch != nil {
				out.Printf("branch:      %s (ahead %d, behind %d)\n", rec.Branch.Head, rec.Branch.Ahead, rec.Branch.Behind)
			}
			out.Printf("entries:     %d\n", len(rec.Entries))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete the status record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			info, err := locateRepo(ctx, cfg, workDir)
			if err != nil {
				return err
			}
			if err := storage.Remove(info.slot); err != nil {
				return err
			}
			out.Printf("cleared %s\n", info.slot)
			return nil
		},
	})

	return cmd
}
