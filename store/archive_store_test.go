package store

import (
	"testing"
	"time"

	"github.com/spf13/afero"
)

func newTestArchiveStore(t *testing.T) (*ArchiveStore, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	s := NewArchiveStore(fsys, "data/insights-archive")
	s.now = func() time.Time { return time.Date(2026, 2, 24, 10, 0, 0, 0, time.UTC) }
	return s, fsys
}

func writeSnapshot(t *testing.T, fsys afero.Fs, path, narrative string) {
	t.Helper()
	doc := `{"project_areas":{"areas":[{"name":"backend","session_count":5}]},"interaction_style":{"narrative":"` + narrative + `"}}`
	if err := afero.WriteFile(fsys, path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
}

func TestArchiveCreatesDatedCopy(t *testing.T) {
	s, fsys := newTestArchiveStore(t)
	writeSnapshot(t, fsys, "data/insights.json", "run one")

	name, err := s.Archive("data/insights.json")
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if name != "2026-02-24.json" {
		t.Errorf("expected dated filename, got %q", name)
	}

	exists, _ := afero.Exists(fsys, "data/insights-archive/2026-02-24.json")
	if !exists {
		t.Error("archive file was not created")
	}
}

func TestArchiveIdempotentPerDay(t *testing.T) {
	s, fsys := newTestArchiveStore(t)
	writeSnapshot(t, fsys, "data/insights.json", "run one")

	if _, err := s.Archive("data/insights.json"); err != nil {
		t.Fatalf("first Archive failed: %v", err)
	}

	// A changed snapshot on the same day must not overwrite the archive.
	writeSnapshot(t, fsys, "data/insights.json", "run two")
	name, err := s.Archive("data/insights.json")
	if err != nil {
		t.Fatalf("second Archive failed: %v", err)
	}
	if name != "" {
		t.Errorf("expected no-op on same day, got %q", name)
	}

	runs, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Snapshot.InteractionStyle.Narrative != "run one" {
		t.Errorf("archive was overwritten: %q", runs[0].Snapshot.InteractionStyle.Narrative)
	}
}

func TestArchiveMissingSnapshotIsNoOp(t *testing.T) {
	s, _ := newTestArchiveStore(t)

	name, err := s.Archive("data/insights.json")
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if name != "" {
		t.Errorf("expected no archive for missing snapshot, got %q", name)
	}
}

func TestLoadAllChronologicalOrder(t *testing.T) {
	s, fsys := newTestArchiveStore(t)
	writeSnapshot(t, fsys, "data/insights-archive/2026-02-10.json", "second")
	writeSnapshot(t, fsys, "data/insights-archive/2026-01-05.json", "first")
	writeSnapshot(t, fsys, "data/insights-archive/2026-02-24.json", "third")
	// Non-JSON entries are ignored.
	if err := afero.WriteFile(fsys, "data/insights-archive/notes.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	runs, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	wantDates := []string{"2026-01-05", "2026-02-10", "2026-02-24"}
	for i, want := range wantDates {
		if runs[i].Date != want {
			t.Errorf("run %d: expected date %s, got %s", i, want, runs[i].Date)
		}
	}
	if runs[0].Snapshot.InteractionStyle.Narrative != "first" {
		t.Errorf("runs out of order: %q", runs[0].Snapshot.InteractionStyle.Narrative)
	}
}

func TestLoadAllMissingDirIsEmpty(t *testing.T) {
	s, _ := newTestArchiveStore(t)

	runs, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty history, got %d runs", len(runs))
	}
}
