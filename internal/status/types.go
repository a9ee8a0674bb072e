// Package status defines the working-tree status data model shared by the
// scanner, the record store, and the view deriver.
package status

import "fmt"

// UntrackedMode controls how untracked paths are reported.
//
// The modes form a lattice: "complete" records every untracked file
// individually plus directory markers, and is the only mode every other
// mode can be derived from. See [CanDerive].
type UntrackedMode string

const (
	// UntrackedNone omits untracked paths entirely.
	UntrackedNone UntrackedMode = "none"
	// UntrackedNormal collapses fully untracked directories into a single entry.
	UntrackedNormal UntrackedMode = "normal"
	// UntrackedAll lists every untracked file individually.
	UntrackedAll UntrackedMode = "all"
	// UntrackedComplete lists every untracked file individually and
	// additionally records which directories are fully untracked, so
	// coarser views can be derived later without rescanning.
	UntrackedComplete UntrackedMode = "complete"
)

// ParseUntrackedMode parses a user-supplied untracked mode.
// Accepts the values git itself uses for --untracked-files.
// "complete" is internal-only and not accepted here.
func ParseUntrackedMode(s string) (UntrackedMode, error) {
	switch s {
	case "no", "none":
		return UntrackedNone, nil
	case "normal":
		return UntrackedNormal, nil
	case "all":
		return UntrackedAll, nil
	}
	return "", fmt.Errorf("invalid untracked mode %q: must be \"no\", \"normal\" or \"all\"", s)
}

// IgnoredMode controls whether ignored paths are reported.
// There is no partial order between the two modes: a record can only
// answer queries with the identical ignored mode.
type IgnoredMode string

const (
	// IgnoredDisabled omits ignored paths.
	IgnoredDisabled IgnoredMode = "disabled"
	// IgnoredMatching reports paths matching ignore rules.
	IgnoredMatching IgnoredMode = "matching"
)

// EntryKind classifies a path reported by a scan.
type EntryKind string

const (
	// KindTracked is a tracked path with changes; Entry.Code holds the
	// two-character XY status pair.
	KindTracked EntryKind = "tracked"
	// KindUntracked is a single untracked file.
	KindUntracked EntryKind = "untracked"
	// KindUntrackedDir marks a directory that contained no tracked path
	// anywhere beneath it at scan time. These markers are what makes
	// directory collapsing derivable from a complete record.
	KindUntrackedDir EntryKind = "untracked-dir"
	// KindIgnored is a path excluded by ignore rules.
	KindIgnored EntryKind = "ignored"
)

// Entry is one classified path from a scan.
type Entry struct {
	Kind EntryKind `json:"kind"`
	Path string    `json:"path"`
	Code string    `json:"code,omitempty"` // XY pair, tracked entries only
}

// BranchInfo holds branch metadata captured at scan time.
// Cached values are returned verbatim on derived views and are never
// recomputed, regardless of configuration at query time.
type BranchInfo struct {
	OID      string `json:"oid"`                // HEAD object id, empty on unborn branch
	Head     string `json:"head"`               // branch name, or "(detached)"
	Upstream string `json:"upstream,omitempty"` // upstream branch, empty if none
	Ahead    int    `json:"ahead"`
	Behind   int    `json:"behind"`
}

// Detached is the Head value used for a detached HEAD.
const Detached = "(detached)"

// Query carries the parameters of a single status request.
type Query struct {
	Untracked UntrackedMode
	Ignored   IgnoredMode
	Scope     Scope
	Branch    bool // include branch metadata
}
