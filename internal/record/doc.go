// Package record persists working-tree scan snapshots and decides whether a
// stored snapshot can answer a later status query.
//
// Each repository has exactly one record slot, overwritten on every capture.
// A record is self-describing: it carries the scan parameters it was captured
// with (untracked mode, ignored mode, path scope), optional branch metadata,
// and the ordered list of classified paths.
//
// # Compatibility
//
// [Evaluate] is the gate between a stored record and an incoming query. It
// never serves a view whose guarantees exceed what the record's parameters
// actually captured; any failing condition routes the query to a full rescan.
// Staleness is defined purely by parameter incompatibility: a compatible
// record is trusted as-is even if the tree changed after capture.
//
// # Durability
//
// Records are written with an atomic temp-then-rename replace, so concurrent
// readers see either the old record or the new one. Missing, corrupt and
// version-incompatible files are all reported as [ErrNotFound], which callers
// treat as "rescan", never as a fatal error.
package record
