// Package derive projects a stored scan record onto a requested reporting
// mode and path scope without touching the filesystem.
//
// Derivation is a pure, linear projection: the compatibility gate has
// already confirmed the (record, query) pair, and nothing here re-validates
// mode compatibility. The output is exactly the entry set a live scan at the
// requested mode and scope would have produced against the captured tree
// state, in the same lexicographic order.
package derive

import (
	"sort"
	"strings"

	"github.com/raphi011/gst/internal/record"
	"github.com/raphi011/gst/internal/status"
)

// View filters rec's entries to scope and projects them onto mode.
func View(rec *record.Record, mode status.UntrackedMode, scope status.Scope) []status.Entry {
	// Directory markers are collected before scope filtering: a marker
	// above the requested scope still proves that everything beneath it
	// is untracked.
	markers := make(map[string]bool)
	for _, e := range rec.Entries {
		if e.Kind == status.KindUntrackedDir {
			markers[e.Path] = true
		}
	}

	scoped := make([]status.Entry, 0, len(rec.Entries))
	for _, e := range rec.Entries {
		if scope.Contains(e.Path) {
			scoped = append(scoped, e)
		}
	}

	var out []status.Entry
	if rec.Untracked == status.UntrackedComplete && mode != status.UntrackedComplete {
		out = project(scoped, markers, mode, scope)
	} else {
		out = scoped
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// project rewrites the untracked portion of a complete record to the
// requested coarser mode. Tracked and ignored entries pass through.
func project(entries []status.Entry, markers map[string]bool, mode status.UntrackedMode, scope status.Scope) []status.Entry {
	out := make([]status.Entry, 0, len(entries))
	collapsed := make(map[string]bool)

	for _, e := range entries {
		switch e.Kind {
		case status.KindTracked, status.KindIgnored:
			out = append(out, e)

		case status.KindUntracked:
			switch mode {
			case status.UntrackedNone:
				// dropped
			case status.UntrackedAll:
				out = append(out, e)
			case status.UntrackedNormal:
				if dir := collapseTarget(parentDir(e.Path), markers, scope); dir != "" {
					collapsed[dir] = true
				} else {
					out = append(out, e)
				}
			case status.UntrackedComplete:
				// identity projection is handled by the caller
				out = append(out, e)
			}

		case status.KindUntrackedDir:
			// Markers exist only to support collapsing. They surface as
			// entries at normal granularity and disappear otherwise.
			if mode == status.UntrackedNormal {
				if dir := collapseTarget(e.Path, markers, scope); dir != "" {
					collapsed[dir] = true
				}
			}
		}
	}

	for dir := range collapsed {
		out = append(out, status.Entry{Kind: status.KindUntrackedDir, Path: dir})
	}
	return out
}

// collapseTarget returns the topmost ancestor of dir (dir included) that is
// both within scope and fully untracked, or "" if there is none. Maximality
// guarantees a collapsed directory never coexists with a descendant entry:
// every path beneath it resolves to the same target.
func collapseTarget(dir string, markers map[string]bool, scope status.Scope) string {
	if dir == "" {
		return ""
	}
	for i := 1; i <= len(dir); i++ {
		if i == len(dir) || dir[i] == '/' {
			candidate := dir[:i]
			if scope.Contains(candidate) && fullyUntracked(candidate, markers) {
				return candidate
			}
		}
	}
	return ""
}

// fullyUntracked reports whether dir contained no tracked path beneath it at
// capture time. The record stores markers for the maximal such directories;
// anything beneath a marker is fully untracked too.
func fullyUntracked(dir string, markers map[string]bool) bool {
	for d := dir; d != ""; d = parentDir(d) {
		if markers[d] {
			return true
		}
	}
	return false
}

func parentDir(p string) string {
	if i := strings.LastIndexByte(p, '/'); i > 0 {
		return p[:i]
	}
	return ""
}
