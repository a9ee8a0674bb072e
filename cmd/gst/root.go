package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/gst/internal/config"
	"github.com/raphi011/gst/internal/git"
	"github.com/raphi011/gst/internal/log"
	"github.com/raphi011/gst/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg     *config.Config
	workDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gst",
	Short: "Cached git status",
	Long: `gst answers git status queries from a persisted scan record when the
record's parameters can satisfy the query, and falls back to a full live
scan when they cannot.

A record captured at the "complete" untracked granularity (gst refresh)
can answer later queries at any coarser granularity without touching the
filesystem. Staleness is defined purely by parameter compatibility: a
compatible record is trusted as-is.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Flags are parsed by now; attach the logger here so -v/-q take effect.
		cmd.SetContext(log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet)))

		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print executed git commands")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress diagnostic output")
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Get working directory
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gst: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.AddCommand(
		newStatusCmd(),
		newRefreshCmd(),
		newCacheCmd(),
		newBrowseCmd(),
		newVersionCmd(),
	)

	// Printer (stdout for primary data); the logger is attached in
	// PersistentPreRunE once flags are parsed.
	ctx = output.WithPrinter(ctx, os.Stdout)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "gst: %v\n", err)
		os.Exit(1)
	}
}
