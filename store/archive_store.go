package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/insightscodes/devlog/models"
	"github.com/spf13/afero"
)

// ArchivedRun is one immutable dated copy of an insights snapshot. Runs are
// never mutated or deleted once written.
type ArchivedRun struct {
	Date     string
	Snapshot models.InsightsSnapshot
}

// ArchiveStore owns the archive directory: one JSON file per calendar day,
// filename = ISO date, content = a verbatim copy of the live snapshot at
// archive time. Nothing else writes into this directory.
type ArchiveStore struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

// NewArchiveStore creates a store over the given filesystem. Use
// afero.NewOsFs() for real operation or afero.NewMemMapFs() in tests.
func NewArchiveStore(fsys afero.Fs, dir string) *ArchiveStore {
	return &ArchiveStore{fs: fsys, dir: dir, now: time.Now}
}

// Archive copies the live snapshot into the archive under today's date.
// Idempotent per calendar day: if today's file already exists the call is a
// no-op. Archiving is best-effort: a missing live snapshot silently returns
// without error. Returns the created filename, or "" if nothing was written.
func (s *ArchiveStore) Archive(snapshotPath string) (string, error) {
	exists, err := afero.Exists(s.fs, snapshotPath)
	if err != nil {
		return "", fmt.Errorf("check snapshot: %w", err)
	}
	if !exists {
		return "", nil
	}

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create archive dir %s: %w", s.dir, err)
	}

	name := s.now().Format("2006-01-02") + ".json"
	target := filepath.Join(s.dir, name)
	archived, err := afero.Exists(s.fs, target)
	if err != nil {
		return "", fmt.Errorf("check archive file: %w", err)
	}
	if archived {
		return "", nil
	}

	data, err := afero.ReadFile(s.fs, snapshotPath)
	if err != nil {
		return "", fmt.Errorf("read snapshot %s: %w", snapshotPath, err)
	}
	if err := afero.WriteFile(s.fs, target, data, 0o644); err != nil {
		return "", fmt.Errorf("write archive %s: %w", target, err)
	}
	return name, nil
}

// LoadAll reads every archived run in chronological order (the ISO-date
// filenames sort naturally). A missing archive directory yields an empty
// history, not an error.
func (s *ArchiveStore) LoadAll() ([]ArchivedRun, error) {
	exists, err := afero.DirExists(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("check archive dir: %w", err)
	}
	if !exists {
		return nil, nil
	}

	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("read archive dir %s: %w", s.dir, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".json") {
			continue
		}
		names = append(names, info.Name())
	}
	sort.Strings(names)

	runs := make([]ArchivedRun, 0, len(names))
	for _, name := range names {
		data, err := afero.ReadFile(s.fs, filepath.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read archived run %s: %w", name, err)
		}
		var snap models.InsightsSnapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parse archived run %s: %w", name, err)
		}
		runs = append(runs, ArchivedRun{
			Date:     strings.TrimSuffix(name, ".json"),
			Snapshot: snap,
		})
	}
	return runs, nil
}
