package scan

import (
	"strconv"
	"strings"

	"github.com/raphi011/gst/internal/status"
)

// ParseStatus parses `git status --porcelain` (v1) output into entries.
// Lines it cannot make sense of are skipped.
func ParseStatus(output string) []status.Entry {
	var entries []status.Entry
	for _, line := range strings.Split(output, "\n") {
		if e, ok := parseStatusLine(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// parseStatusLine parses one porcelain line: a two-character XY code, a
// space, and the path. Untracked paths use "??", ignored paths "!!"; a
// trailing slash marks a collapsed directory.
func parseStatusLine(line string) (status.Entry, bool) {
	if len(line) < 4 || line[2] != ' ' {
		return status.Entry{}, false
	}
	code := line[:2]
	p := unquotePath(line[3:])
	if p == "" {
		return status.Entry{}, false
	}

	switch code {
	case "??":
		if strings.HasSuffix(p, "/") {
			return status.Entry{Kind: status.KindUntrackedDir, Path: strings.TrimSuffix(p, "/")}, true
		}
		return status.Entry{Kind: status.KindUntracked, Path: p}, true
	case "!!":
		return status.Entry{Kind: status.KindIgnored, Path: strings.TrimSuffix(p, "/")}, true
	default:
		// Renames and copies list "orig -> dest"; the destination is the
		// path that exists in the working tree.
		if i := strings.Index(p, " -> "); i != -1 {
			p = unquotePath(p[i+4:])
		}
		return status.Entry{Kind: status.KindTracked, Path: p, Code: code}, true
	}
}

// unquotePath undoes git's C-style quoting of paths with special characters.
func unquotePath(p string) string {
	if strings.HasPrefix(p, `"`) {
		if unquoted, err := strconv.Unquote(p); err == nil {
			return unquoted
		}
	}
	return p
}
