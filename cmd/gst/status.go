package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raphi011/gst/internal/config"
	"github.com/raphi011/gst/internal/derive"
	"github.com/raphi011/gst/internal/git"
	"github.com/raphi011/gst/internal/log"
	"github.com/raphi011/gst/internal/record"
	"github.com/raphi011/gst/internal/scan"
	"github.com/raphi011/gst/internal/status"
)

// repoInfo locates the repository and its record slot for a command run.
type repoInfo struct {
	topLevel string
	gitDir   string
	slot     string
}

func locateRepo(ctx context.Context, cfg *config.Config, dir string) (*repoInfo, error) {
	topLevel, err := git.TopLevel(ctx, dir)
	if err != nil {
		return nil, err
	}
	gitDir, err := git.Dir(ctx, dir)
	if err != nil {
		return nil, err
	}
	return &repoInfo{
		topLevel: topLevel,
		gitDir:   gitDir,
		slot:     record.SlotPath(gitDir, cfg.CacheDir, topLevel),
	}, nil
}

// relativeScope converts pathspec arguments (relative to dir) into a
// repo-relative scope.
func relativeScope(dir, topLevel string, args []string) (status.Scope, error) {
	var prefixes []string
	for _, arg := range args {
		abs := arg
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(dir, arg)
		}
		rel, err := filepath.Rel(topLevel, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return nil, fmt.Errorf("path %q is outside the repository", arg)
		}
		prefixes = append(prefixes, filepath.ToSlash(rel))
	}
	return status.NewScope(prefixes...), nil
}

// ignoredMode maps the --ignored flag to an IgnoredMode.
func ignoredMode(show bool) status.IgnoredMode {
	if show {
		return status.IgnoredMatching
	}
	return status.IgnoredDisabled
}

type statusResult struct {
	entries []status.Entry
	branch  *status.BranchInfo
	derived bool // answered from the record without scanning
}

// resolveStatus answers q from the record slot when the compatibility gate
// allows it, otherwise rescans live at q's exact parameters and (unless
// noCache) captures the fresh result as the new record.
//
// Branch metadata on the derived path comes from the record verbatim,
// including ahead/behind counts; live configuration never overrides it.
func resolveStatus(ctx context.Context, scanner scan.Scanner, slot string, q status.Query, noCache bool) (*statusResult, error) {
	l := log.FromContext(ctx)

	if !noCache {
		rec, err := record.Load(slot)
		if err != nil {
			l.Debugf("record: %v\n", err)
		} else if decision, reason := record.Evaluate(rec, q); decision == record.Derive {
			res := &statusResult{
				entries: derive.View(rec, q.Untracked, q.Scope),
				derived: true,
			}
			if q.Branch {
				res.branch = rec.Branch
			}
			return res, nil
		} else {
			l.Debugf("record: rescan: %s\n", reason)
		}
	}

	res, err := scan.Rescan(ctx, scanner, q)
	if err != nil {
		return nil, err
	}

	if !noCache {
		if err := record.Save(slot, record.Capture(q, res.Entries, res.Branch)); err != nil {
			l.Printf("Warning: failed to save status record: %v\n", err)
		}
	}

	return &statusResult{entries: res.Entries, branch: res.Branch}, nil
}
