//go:build integration

package main

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/raphi011/gst/internal/record"
	"github.com/raphi011/gst/internal/scan"
	"github.com/raphi011/gst/internal/status"
)

// setupStatusRepo creates a git repo with an initial commit and a known
// working tree shape: a modified tracked file, a loose untracked file and
// a fully untracked directory.
func setupStatusRepo(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("failed to run %v: %v\n%s", args, err, out)
		}
	}

	run("git", "init")
	run("git", "config", "user.email", "test@test.com")
	run("git", "config", "user.name", "Test User")
	run("git", "config", "commit.gpgsign", "false")

	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}

	write("README.md", "# test\n")
	run("git", "add", "README.md")
	run("git", "commit", "-m", "Initial commit")

	write("README.md", "# test changed\n")
	write("notes.txt", "untracked\n")
	write("tmp/a.txt", "a\n")
	write("tmp/b.txt", "b\n")

	return dir
}

func entryPaths(entries []status.Entry) map[string]status.EntryKind {
	m := make(map[string]status.EntryKind, len(entries))
	for _, e := range entries {
		m[e.Path] = e.Kind
	}
	return m
}

func TestResolveStatusAgainstRealRepo(t *testing.T) {
	repo := setupStatusRepo(t)
	slot := filepath.Join(t.TempDir(), "status.json")
	ctx := context.Background()

	scanner := &scan.GitScanner{Dir: repo}

	// Capture a complete record first.
	captureQ := status.Query{
		Untracked: status.UntrackedComplete,
		Ignored:   status.IgnoredDisabled,
		Branch:    true,
	}
	res, err := scan.Rescan(ctx, scanner, captureQ)
	if err != nil {
		t.Fatalf("Rescan() error = %v", err)
	}
	if err := record.Save(slot, record.Capture(captureQ, res.Entries, res.Branch)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// A file created after the capture must not appear in a derived answer.
	if err := os.WriteFile(filepath.Join(repo, "later.txt"), []byte("late\n"), 0644); err != nil {
		t.Fatalf("failed to write later.txt: %v", err)
	}

	normalQ := status.Query{Untracked: status.UntrackedNormal, Ignored: status.IgnoredDisabled}
	got, err := resolveStatus(ctx, scanner, slot, normalQ, false)
	if err != nil {
		t.Fatalf("resolveStatus() error = %v", err)
	}
	if !got.derived {
		t.Fatal("expected a derived answer from the record")
	}

	paths := entryPaths(got.entries)
	if _, ok := paths["later.txt"]; ok {
		t.Error("derived answer includes later.txt, which postdates the record")
	}
	if kind, ok := paths["tmp"]; !ok || kind != status.KindUntrackedDir {
		t.Errorf("tmp = %v (present=%v), want collapsed untracked dir", kind, ok)
	}
	if _, ok := paths["tmp/a.txt"]; ok {
		t.Error("derived normal answer lists tmp/a.txt individually")
	}
	if _, ok := paths["notes.txt"]; !ok {
		t.Error("derived answer is missing notes.txt")
	}
	if _, ok := paths["README.md"]; !ok {
		t.Error("derived answer is missing modified README.md")
	}

	// An incompatible ignored mode forces a live rescan, which sees later.txt.
	ignoredQ := status.Query{Untracked: status.UntrackedNormal, Ignored: status.IgnoredMatching}
	got, err = resolveStatus(ctx, scanner, slot, ignoredQ, false)
	if err != nil {
		t.Fatalf("resolveStatus() error = %v", err)
	}
	if got.derived {
		t.Fatal("expected a live rescan for the incompatible ignored mode")
	}
	paths = entryPaths(got.entries)
	if _, ok := paths["later.txt"]; !ok {
		t.Error("live rescan is missing later.txt")
	}
}
