package ops

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/branchwell/gwt/internal/git"
)

func TestCleaner_Scan_Classification(t *testing.T) {
	t.Parallel()
	r := testRepo(t.TempDir())
	g := newFakeGit()
	g.entries = []git.Entry{
		{Path: r.MainPath, Branch: "master"},                                  // main checkout, skipped
		{Path: filepath.Join(r.WorktreeDir, "alive"), Branch: "alive"},        // local ref exists
		{Path: filepath.Join(r.WorktreeDir, "remote-only"), Branch: "remote-only"}, // remote ref exists
		{Path: filepath.Join(r.WorktreeDir, "parked"), Detached: true},        // detached, never orphaned
		{Path: filepath.Join(r.WorktreeDir, "old-branch"), Branch: "old-branch"}, // both refs gone
	}
	g.local["alive"] = true
	g.remote["remote-only"] = true

	l, _ := testLogger()
	c := &Cleaner{Git: g, Log: l}

	orphans, err := c.Scan(context.Background(), r)
	if err != nil {
		t.Fatalf("Scan = %v, want nil", err)
	}

	want := []Orphan{{Path: filepath.Join(r.WorktreeDir, "old-branch"), Branch: "old-branch"}}
	if !reflect.DeepEqual(orphans, want) {
		t.Errorf("orphans = %+v, want %+v", orphans, want)
	}

	// Strict step order: prune, then fetch, then enumerate.
	if len(g.calls) < 3 || g.calls[0] != "prune" || g.calls[1] != "fetch" || g.calls[2] != "list" {
		t.Errorf("call order = %v, want prune, fetch, list, ...", g.calls)
	}
}

func TestCleaner_Scan_FetchFailureIsNonFatal(t *testing.T) {
	t.Parallel()
	r := testRepo(t.TempDir())
	g := newFakeGit()
	g.fetchErr = errors.New("network down")
	g.entries = []git.Entry{{Path: r.MainPath, Branch: "master"}}

	l, buf := testLogger()
	c := &Cleaner{Git: g, Log: l}

	if _, err := c.Scan(context.Background(), r); err != nil {
		t.Fatalf("Scan = %v, want nil despite fetch failure", err)
	}
	if !strings.Contains(buf.String(), "fetch failed") {
		t.Errorf("log = %q, want fetch warning", buf.String())
	}
}

func TestCleaner_Scan_ListFailure(t *testing.T) {
	t.Parallel()
	r := testRepo(t.TempDir())
	g := newFakeGit()
	g.listErr = errors.New("not a repository")

	l, _ := testLogger()
	c := &Cleaner{Git: g, Log: l}

	if _, err := c.Scan(context.Background(), r); err == nil {
		t.Error("Scan = nil error, want list error")
	}
}

func TestCleaner_Remove(t *testing.T) {
	t.Parallel()
	r := testRepo(t.TempDir())
	g := newFakeGit()
	orphans := []Orphan{
		{Path: filepath.Join(r.WorktreeDir, "a"), Branch: "a"},
		{Path: filepath.Join(r.WorktreeDir, "b"), Branch: "b"},
	}
	g.entries = []git.Entry{
		{Path: r.MainPath, Branch: "master"},
		{Path: orphans[0].Path, Branch: "a"},
		{Path: orphans[1].Path, Branch: "b"},
	}

	l, _ := testLogger()
	c := &Cleaner{
		Git:   g,
		Log:   l,
		Getwd: func() (string, error) { return r.MainPath, nil },
		Chdir: func(string) error { t.Error("unexpected chdir"); return nil },
	}

	removed := c.Remove(context.Background(), r, orphans)
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}

	// Cleanup converges: with the worktrees gone and refs unchanged, a
	// second scan finds nothing.
	again, err := c.Scan(context.Background(), r)
	if err != nil {
		t.Fatalf("second Scan = %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second scan orphans = %+v, want none", again)
	}
}

func TestCleaner_Remove_FallbackOnGitFailure(t *testing.T) {
	t.Parallel()
	r := testRepo(t.TempDir())
	g := newFakeGit()
	stuck := filepath.Join(r.WorktreeDir, "stuck")
	g.failRm[stuck] = true

	var deleted []string
	l, buf := testLogger()
	c := &Cleaner{
		Git:       g,
		Log:       l,
		Getwd:     func() (string, error) { return "/elsewhere", nil },
		RemoveAll: func(p string) error { deleted = append(deleted, p); return nil },
	}

	removed := c.Remove(context.Background(), r, []Orphan{{Path: stuck, Branch: "stuck"}})
	if removed != 1 {
		t.Errorf("removed = %d, want 1 via fallback", removed)
	}
	if !reflect.DeepEqual(deleted, []string{stuck}) {
		t.Errorf("deleted = %v, want [%s]", deleted, stuck)
	}
	if !strings.Contains(buf.String(), "deleting directly") {
		t.Errorf("log = %q, want fallback notice", buf.String())
	}
	// Fallback is followed by a prune of the stale record.
	if g.calls[len(g.calls)-1] != "prune" {
		t.Errorf("calls = %v, want trailing prune", g.calls)
	}
}

func TestCleaner_Remove_OneFailureDoesNotAbort(t *testing.T) {
	t.Parallel()
	r := testRepo(t.TempDir())
	g := newFakeGit()
	bad := filepath.Join(r.WorktreeDir, "bad")
	good := filepath.Join(r.WorktreeDir, "good")
	g.failRm[bad] = true

	l, _ := testLogger()
	c := &Cleaner{
		Git:       g,
		Log:       l,
		Getwd:     func() (string, error) { return "/elsewhere", nil },
		RemoveAll: func(p string) error { return errors.New("permission denied") },
	}

	removed := c.Remove(context.Background(), r, []Orphan{
		{Path: bad, Branch: "bad"},
		{Path: good, Branch: "good"},
	})
	if removed != 1 {
		t.Errorf("removed = %d, want 1 (bad fails, good succeeds)", removed)
	}
}

func TestCleaner_Remove_EscapesDoomedCwd(t *testing.T) {
	t.Parallel()
	r := testRepo(t.TempDir())
	g := newFakeGit()
	doomed := filepath.Join(r.WorktreeDir, "old-branch")

	var movedTo []string
	l, _ := testLogger()
	c := &Cleaner{
		Git:   g,
		Log:   l,
		Getwd: func() (string, error) { return filepath.Join(doomed, "src"), nil },
		Chdir: func(p string) error { movedTo = append(movedTo, p); return nil },
	}

	c.Remove(context.Background(), r, []Orphan{{Path: doomed, Branch: "old-branch"}})
	if !reflect.DeepEqual(movedTo, []string{r.MainPath}) {
		t.Errorf("chdir targets = %v, want [%s]", movedTo, r.MainPath)
	}
}

func TestIsWithin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dir, path string
		want      bool
	}{
		{"/wt/a", "/wt/a", true},
		{"/wt/a", "/wt/a/src/deep", true},
		{"/wt/a", "/wt/ab", false},
		{"/wt/a", "/wt", false},
		{"/wt/a", "/other", false},
	}

	for _, tt := range tests {
		if got := isWithin(tt.dir, tt.path); got != tt.want {
			t.Errorf("isWithin(%q, %q) = %v, want %v", tt.dir, tt.path, got, tt.want)
		}
	}
}
