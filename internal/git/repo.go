package git

import (
	"context"
	"fmt"
	"strings"
)

// TopLevel returns the absolute path of the repository root for path.
func TopLevel(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// Dir returns the absolute path of the repository's git directory for path.
// For worktrees this is the per-worktree git dir, which keeps one record
// slot per checkout.
func Dir(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}
