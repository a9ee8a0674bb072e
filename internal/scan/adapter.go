package scan

import (
	"context"

	"github.com/raphi011/gst/internal/status"
)

// Rescan performs a full live scan at the query's exact parameters. It is
// the fallback seam the compatibility gate routes to: the scanner's output
// is returned unfiltered and its errors propagate unchanged, with no retry
// or recovery semantics on top.
func Rescan(ctx context.Context, s Scanner, q status.Query) (*Result, error) {
	return s.Scan(ctx, q)
}
