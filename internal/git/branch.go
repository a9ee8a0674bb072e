package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/gst/internal/status"
)

// Branch collects branch metadata for the repository at path.
// The ahead/behind counts are computed only when aheadBehind is set and an
// upstream is configured; everything else degrades to zero values instead of
// failing (unborn branches, detached HEAD, missing upstream).
func Branch(ctx context.Context, path string, aheadBehind bool) (*status.BranchInfo, error) {
	info := &status.BranchInfo{}

	// HEAD may be unresolvable on an unborn branch; leave the OID empty then.
	if output, err := outputGit(ctx, path, "rev-parse", "HEAD"); err == nil {
		info.OID = strings.TrimSpace(string(output))
	}

	output, err := outputGit(ctx, path, "branch", "--show-current")
	if err != nil {
		return nil, fmt.Errorf("failed to get branch: %v", err)
	}
	info.Head = strings.TrimSpace(string(output))
	if info.Head == "" {
		info.Head = status.Detached
	}

	// No upstream configured is not an error.
	if output, err := outputGit(ctx, path, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}"); err == nil {
		info.Upstream = strings.TrimSpace(string(output))
	}

	if aheadBehind && info.Upstream != "" {
		output, err := outputGit(ctx, path, "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
		if err != nil {
			return nil, fmt.Errorf("failed to count ahead/behind: %v", err)
		}
		info.Ahead, info.Behind, err = parseAheadBehind(string(output))
		if err != nil {
			return nil, err
		}
	}

	return info, nil
}

// parseAheadBehind parses `git rev-list --left-right --count` output,
// a tab-separated "ahead<TAB>behind" pair.
func parseAheadBehind(s string) (ahead, behind int, err error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list count output %q", s)
	}
	if _, err := fmt.Sscanf(fields[0], "%d", &ahead); err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list count output %q", s)
	}
	if _, err := fmt.Sscanf(fields[1], "%d", &behind); err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list count output %q", s)
	}
	return ahead, behind, nil
}
