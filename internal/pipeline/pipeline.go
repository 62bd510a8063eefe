// Package pipeline sequences one generation run: verify the live snapshot,
// archive it, merge the full history, render posts and timeline, write every
// artifact, then self-check the output for anonymization leaks. Strictly
// linear and single-pass; a failed run exits without touching artifacts
// written by earlier runs.
package pipeline

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/insightscodes/devlog/internal/insight"
	"github.com/insightscodes/devlog/internal/posts"
	"github.com/insightscodes/devlog/internal/textclean"
	"github.com/insightscodes/devlog/internal/timeline"
	"github.com/insightscodes/devlog/models"
	"github.com/insightscodes/devlog/store"
	"github.com/insightscodes/devlog/types"
	"github.com/spf13/afero"
)

// Paths is the resolved file layout for one run.
type Paths struct {
	DataDir      string
	InsightsPath string
	ArchiveDir   string
	PostsDir     string
	RulesPath    string
	DateRange    string
}

// PathsFromConfig resolves the relative entries of DataConfig against the
// data directory.
func PathsFromConfig(cfg types.AppConfig) Paths {
	dir := cfg.Data.Dir
	p := Paths{
		DataDir:      dir,
		InsightsPath: filepath.Join(dir, cfg.Data.InsightsFile),
		ArchiveDir:   filepath.Join(dir, cfg.Data.ArchiveDir),
		PostsDir:     filepath.Join(dir, cfg.Data.PostsDir),
		DateRange:    cfg.Site.DateRange,
	}
	if cfg.Data.RulesFile != "" {
		p.RulesPath = filepath.Join(dir, cfg.Data.RulesFile)
	}
	return p
}

// Result summarizes a completed run.
type Result struct {
	Posts        []models.BlogPost
	Timeline     []models.TimelineEntry
	Stats        models.SiteStats
	Runs         int
	ArchivedFile string
	// Leaks holds anonymization patterns still matching the output. A
	// non-empty slice is a warning, never a failure: publication is not
	// blocked on a heuristic check.
	Leaks []string
}

// Run executes the full generation sequence. The only fatal input condition
// is a missing live snapshot.
func Run(fsys afero.Fs, paths Paths, cleaner *textclean.Cleaner) (*Result, error) {
	exists, err := afero.Exists(fsys, paths.InsightsPath)
	if err != nil {
		return nil, fmt.Errorf("check snapshot: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("no insights snapshot found at %s", paths.InsightsPath)
	}

	archive := store.NewArchiveStore(fsys, paths.ArchiveDir)
	archived, err := archive.Archive(paths.InsightsPath)
	if err != nil {
		return nil, fmt.Errorf("archive snapshot: %w", err)
	}
	if archived != "" {
		slog.Info("archived insights", "file", archived)
	}

	runs, err := archive.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load archive: %w", err)
	}
	slog.Info("loaded archived runs", "count", len(runs))

	snapshots := make([]models.InsightsSnapshot, 0, len(runs))
	for _, run := range runs {
		snapshots = append(snapshots, run.Snapshot)
	}
	merged, err := insight.Merge(snapshots)
	if err != nil {
		return nil, fmt.Errorf("merge runs: %w", err)
	}
	if err := models.ValidateStruct(merged); err != nil {
		return nil, fmt.Errorf("merged snapshot invalid: %w", err)
	}

	today := time.Now().Format("2006-01-02")
	generated := posts.NewGenerator(cleaner).Generate(merged, today)

	artifacts := store.NewArtifactStore(fsys, paths.DataDir, paths.PostsDir)
	existing, err := artifacts.LoadTimeline()
	if err != nil {
		return nil, err
	}
	tl := timeline.Generate(merged, existing, today, cleaner)

	if err := artifacts.WritePosts(generated); err != nil {
		return nil, err
	}
	if err := artifacts.WriteIndex(generated); err != nil {
		return nil, err
	}

	facts := insight.ExtractFacts(merged)
	stats := models.SiteStats{
		TotalSessions: facts.Sessions,
		TotalMessages: insight.Count(facts.Messages),
		TotalHours:    insight.Count(facts.Hours),
		TotalCommits:  insight.Count(facts.Commits),
		DateRange:     paths.DateRange,
		ProjectCount:  facts.ProjectCount,
	}
	if err := artifacts.WriteStats(stats); err != nil {
		return nil, err
	}
	if err := artifacts.WriteTimeline(tl); err != nil {
		return nil, err
	}

	leaks := verifyAnonymized(generated, tl, cleaner)
	for _, pattern := range leaks {
		slog.Warn("sensitive name still present in output", "pattern", pattern)
	}

	return &Result{
		Posts:        generated,
		Timeline:     tl,
		Stats:        stats,
		Runs:         len(runs),
		ArchivedFile: archived,
		Leaks:        leaks,
	}, nil
}

// verifyAnonymized scans every post body plus the serialized timeline for
// anonymization source patterns. A regression guard against rules silently
// failing to fire.
func verifyAnonymized(generated []models.BlogPost, tl []models.TimelineEntry, cleaner *textclean.Cleaner) []string {
	var all strings.Builder
	for _, p := range generated {
		all.WriteString(p.Content)
		all.WriteString("\n")
	}
	if serialized, err := json.Marshal(tl); err == nil {
		all.Write(serialized)
	}
	return cleaner.Leaks(all.String())
}
