package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/insightscodes/devlog/models"
	"github.com/spf13/afero"
)

// Artifact filenames within the data directory. These are the contract with
// the site renderer.
const (
	IndexFile    = "posts-index.json"
	StatsFile    = "site-stats.json"
	TimelineFile = "timeline.json"
)

// ArtifactStore writes the generation outputs (per-post files, index, stats,
// timeline) into the data directory and reads back what a previous run left
// behind. It never touches the archive directory.
type ArtifactStore struct {
	fs       afero.Fs
	dataDir  string
	postsDir string
}

// NewArtifactStore creates a store rooted at dataDir, with post files under
// postsDir.
func NewArtifactStore(fsys afero.Fs, dataDir, postsDir string) *ArtifactStore {
	return &ArtifactStore{fs: fsys, dataDir: dataDir, postsDir: postsDir}
}

func (s *ArtifactStore) writeJSON(path string, v any) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := afero.WriteFile(s.fs, path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *ArtifactStore) readJSON(path string, v any) error {
	b, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// WritePosts writes one JSON file per post, named by slug.
func (s *ArtifactStore) WritePosts(posts []models.BlogPost) error {
	for _, post := range posts {
		path := filepath.Join(s.postsDir, post.Slug+".json")
		if err := s.writeJSON(path, post); err != nil {
			return err
		}
	}
	return nil
}

// WriteIndex writes the index artifact: every post with its body stripped,
// preserving generation order.
func (s *ArtifactStore) WriteIndex(posts []models.BlogPost) error {
	index := make([]models.BlogPost, 0, len(posts))
	for _, post := range posts {
		index = append(index, post.Meta())
	}
	return s.writeJSON(filepath.Join(s.dataDir, IndexFile), index)
}

// WriteStats writes the aggregate stats artifact.
func (s *ArtifactStore) WriteStats(stats models.SiteStats) error {
	return s.writeJSON(filepath.Join(s.dataDir, StatsFile), stats)
}

// WriteTimeline writes the timeline artifact.
func (s *ArtifactStore) WriteTimeline(entries []models.TimelineEntry) error {
	return s.writeJSON(filepath.Join(s.dataDir, TimelineFile), entries)
}

// LoadTimeline reads the timeline a previous run persisted. A missing file
// yields an empty timeline.
func (s *ArtifactStore) LoadTimeline() ([]models.TimelineEntry, error) {
	path := filepath.Join(s.dataDir, TimelineFile)
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("check timeline: %w", err)
	}
	if !exists {
		return nil, nil
	}
	var entries []models.TimelineEntry
	if err := s.readJSON(path, &entries); err != nil {
		return nil, fmt.Errorf("load timeline: %w", err)
	}
	return entries, nil
}

// LoadPostMetas reads slug/title/subtitle for every generated post file,
// sorted by filename for a stable order. Used by the notifier.
func (s *ArtifactStore) LoadPostMetas() ([]models.BlogPost, error) {
	exists, err := afero.DirExists(s.fs, s.postsDir)
	if err != nil {
		return nil, fmt.Errorf("check posts dir: %w", err)
	}
	if !exists {
		return nil, nil
	}
	infos, err := afero.ReadDir(s.fs, s.postsDir)
	if err != nil {
		return nil, fmt.Errorf("read posts dir %s: %w", s.postsDir, err)
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".json") {
			continue
		}
		names = append(names, info.Name())
	}
	sort.Strings(names)

	metas := make([]models.BlogPost, 0, len(names))
	for _, name := range names {
		var post models.BlogPost
		if err := s.readJSON(filepath.Join(s.postsDir, name), &post); err != nil {
			return nil, fmt.Errorf("load post %s: %w", name, err)
		}
		metas = append(metas, post.Meta())
	}
	return metas, nil
}

// LoadPost reads one generated post, body included.
func (s *ArtifactStore) LoadPost(slug string) (models.BlogPost, error) {
	var post models.BlogPost
	path := filepath.Join(s.postsDir, slug+".json")
	if err := s.readJSON(path, &post); err != nil {
		return models.BlogPost{}, fmt.Errorf("load post %s: %w", slug, err)
	}
	return post, nil
}
