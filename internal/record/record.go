package record

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/raphi011/gst/internal/status"
	"github.com/raphi011/gst/internal/storage"
)

// FormatVersion tags the on-disk encoding. A record written with any other
// version is treated as not found, forcing a rescan instead of
// misinterpreting bytes.
const FormatVersion = 1

// ErrNotFound indicates there is no usable record at the slot: the file is
// missing, unreadable, corrupt, or written by an incompatible format version.
// All of these resolve to a rescan, never to a failure of the query itself.
var ErrNotFound = errors.New("no usable status record")

// Record is one persisted working-tree scan. It is immutable once written
// and is only ever superseded by a full overwrite of its slot.
type Record struct {
	Format     int                  `json:"format"`
	CapturedAt time.Time            `json:"captured_at"` // informational only, never used for invalidation
	Untracked  status.UntrackedMode `json:"untracked"`
	Ignored    status.IgnoredMode   `json:"ignored"`
	Scope      status.Scope         `json:"scope,omitempty"`
	Branch     *status.BranchInfo   `json:"branch,omitempty"`
	Entries    []status.Entry       `json:"entries"`
}

// Capture wraps a completed scan into a record. The entries are stored
// without reinterpretation; the query's parameters become the record's
// parameters.
func Capture(q status.Query, entries []status.Entry, branch *status.BranchInfo) *Record {
	if !q.Branch {
		branch = nil
	}
	return &Record{
		Format:     FormatVersion,
		CapturedAt: time.Now(),
		Untracked:  q.Untracked,
		Ignored:    q.Ignored,
		Scope:      q.Scope,
		Branch:     branch,
		Entries:    entries,
	}
}

// Save persists rec to the slot at path, fully overwriting any prior record.
// The write is an atomic replace so concurrent readers never see a torn file.
func Save(path string, rec *Record) error {
	return storage.WriteJSON(path, rec)
}

// Load reads the record at path. Any condition that makes the record
// unusable returns an error wrapping [ErrNotFound].
func Load(path string) (*Record, error) {
	var rec Record
	if err := storage.ReadJSON(path, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if rec.Format != FormatVersion {
		return nil, fmt.Errorf("%w: format version %d, want %d", ErrNotFound, rec.Format, FormatVersion)
	}
	return &rec, nil
}

// SlotPath returns the on-disk location of a repository's record slot.
// By default the slot lives inside the repository's git dir. A non-empty
// cacheDir overrides that with one file per repository, keyed by the
// sanitized toplevel path.
func SlotPath(gitDir, cacheDir, topLevel string) string {
	if cacheDir == "" {
		return filepath.Join(gitDir, "gst", "status.json")
	}
	key := sanitizeForPath(strings.Trim(topLevel, "/\\"))
	return filepath.Join(cacheDir, key+".json")
}

// sanitizeForPath replaces characters that are problematic in file names.
func sanitizeForPath(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
	)
	return replacer.Replace(name)
}
