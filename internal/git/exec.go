package git

import (
	"context"

	"github.com/raphi011/gst/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// outputGit executes a git command with context support and verbose logging,
// returning stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
}

// Output executes a git command with context support and verbose logging,
// returning stdout. This is the exported version of outputGit for callers
// that assemble their own argument lists, like the scan package.
func Output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return outputGit(ctx, dir, args...)
}
