package record

import (
	"fmt"

	"github.com/raphi011/gst/internal/status"
)

// Decision is the outcome of evaluating a record against a query.
type Decision int

const (
	// Rescan means the record cannot answer the query; the caller must run
	// a full live scan at the query's own parameters. No partial derivation
	// and no merging of cached and fresh data.
	Rescan Decision = iota
	// Derive means the record can answer the query via a pure projection.
	Derive
)

// Evaluate decides whether rec can answer q. The returned reason is empty on
// Derive and describes the first failing condition on Rescan; it exists for
// verbose diagnostics only.
//
// Mode, scope and ignored-mode mismatches are expected outcomes here, not
// errors: every incompatibility degrades to a rescan.
func Evaluate(rec *Record, q status.Query) (Decision, string) {
	if rec == nil {
		return Rescan, "no record"
	}
	if !status.IgnoredCompatible(rec.Ignored, q.Ignored) {
		return Rescan, fmt.Sprintf("ignored mode %s not satisfied by recorded %s", q.Ignored, rec.Ignored)
	}
	if !status.CanDerive(rec.Untracked, q.Untracked) {
		return Rescan, fmt.Sprintf("untracked mode %s not derivable from recorded %s", q.Untracked, rec.Untracked)
	}
	if !rec.Scope.Covers(q.Scope) {
		return Rescan, "requested paths outside recorded scope"
	}
	if q.Branch && rec.Branch == nil {
		return Rescan, "branch info not recorded"
	}
	return Derive, ""
}
