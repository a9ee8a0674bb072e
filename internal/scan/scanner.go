package scan

import (
	"context"
	"sort"

	"github.com/raphi011/gst/internal/git"
	"github.com/raphi011/gst/internal/status"
)

// Result is the output of one live scan.
type Result struct {
	Entries []status.Entry
	Branch  *status.BranchInfo
}

// Scanner runs a live working-tree scan.
type Scanner interface {
	Scan(ctx context.Context, q status.Query) (*Result, error)
}

// GitScanner scans by shelling out to `git status --porcelain`.
type GitScanner struct {
	// Dir is the directory to scan from; empty means the current directory.
	Dir string
	// AheadBehind enables ahead/behind computation when branch info is
	// requested. It only affects live scans: cached counts are returned
	// verbatim no matter how this is set at query time.
	AheadBehind bool
}

var _ Scanner = (*GitScanner)(nil)

// Scan runs a live scan at exactly the query's parameters.
//
// The "complete" untracked mode has no direct git equivalent, so it is
// assembled from two passes: --untracked-files=all supplies every untracked
// file individually, and the collapsed `dir/` lines of a
// --untracked-files=normal pass become the fully-untracked directory markers
// that later make collapsing derivable.
func (s *GitScanner) Scan(ctx context.Context, q status.Query) (*Result, error) {
	var entries []status.Entry

	if q.Untracked == status.UntrackedComplete {
		all, err := s.statusPass(ctx, q, "all")
		if err != nil {
			return nil, err
		}
		normal, err := s.statusPass(ctx, q, "normal")
		if err != nil {
			return nil, err
		}
		entries = all
		for _, e := range normal {
			if e.Kind == status.KindUntrackedDir {
				entries = append(entries, e)
			}
		}
	} else {
		var err error
		entries, err = s.statusPass(ctx, q, untrackedFlag(q.Untracked))
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	res := &Result{Entries: entries}
	if q.Branch {
		branch, err := git.Branch(ctx, s.Dir, s.AheadBehind)
		if err != nil {
			return nil, err
		}
		res.Branch = branch
	}
	return res, nil
}

// statusPass runs one `git status --porcelain` invocation and parses it.
func (s *GitScanner) statusPass(ctx context.Context, q status.Query, untracked string) ([]status.Entry, error) {
	args := []string{"status", "--porcelain", "--untracked-files=" + untracked}
	if q.Ignored == status.IgnoredMatching {
		args = append(args, "--ignored=matching")
	}
	if !q.Scope.IsRoot() {
		args = append(args, "--")
		args = append(args, q.Scope...)
	}

	output, err := git.Output(ctx, s.Dir, args...)
	if err != nil {
		return nil, err
	}
	return ParseStatus(string(output)), nil
}

// untrackedFlag maps an UntrackedMode to git's --untracked-files value.
func untrackedFlag(m status.UntrackedMode) string {
	switch m {
	case status.UntrackedNone:
		return "no"
	case status.UntrackedNormal:
		return "normal"
	case status.UntrackedAll, status.UntrackedComplete:
		return "all"
	}
	return "normal"
}
