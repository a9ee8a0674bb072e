// Package git provides git operations via shell commands.
//
// All operations use [os/exec.Cmd] to call the git CLI directly rather than
// using Go git libraries. This approach is simpler, more reliable, and
// ensures compatibility with user configurations (ignore rules, sparse
// checkouts, core.excludesFile).
//
// The package covers exactly what the status cache needs:
//
//   - [TopLevel], [Dir]: repository discovery and record slot location
//   - [Branch]: HEAD oid, current branch, upstream, ahead/behind counts
//   - [CheckGit]: environment check
//   - [Output]: raw git invocation for callers assembling their own args
//
// The status scan itself lives in the scan package.
package git
