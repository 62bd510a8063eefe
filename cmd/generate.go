/*
Copyright © 2026 insights.codes hello@insights.codes
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/insightscodes/devlog/internal/pipeline"
	"github.com/insightscodes/devlog/internal/textclean"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var generateWatch bool

// generateCmd runs the full insights-to-posts pipeline.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate blog posts from insights data",
	Long: `Generate archives the live insights snapshot, merges it with every
previous run, and writes the post, index, stats and timeline artifacts the
site renders.

Repeated runs on the same day reuse that day's archive entry; content
accumulates across days, with the latest run winning for stats and
narrative.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "re-run generation when the snapshot file changes")
}

// newCleaner builds the text cleaner, preferring the rules file in the data
// directory over the built-in defaults.
func newCleaner(fsys afero.Fs, rulesPath string) (*textclean.Cleaner, error) {
	if rulesPath == "" {
		return textclean.New(textclean.DefaultRules()), nil
	}
	rules, err := textclean.LoadRules(fsys, rulesPath)
	if err != nil {
		return nil, err
	}
	return textclean.New(rules), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	fsys := afero.NewOsFs()
	paths := pipeline.PathsFromConfig(cfg)

	cleaner, err := newCleaner(fsys, paths.RulesPath)
	if err != nil {
		return err
	}

	tel := newTelemetry(cfg, version)
	defer func() { _ = tel.Close() }()

	runOnce := func() error {
		result, err := pipeline.Run(fsys, paths, cleaner)
		if err != nil {
			return err
		}
		tel.Track("generate", map[string]any{"runs": result.Runs, "posts": len(result.Posts)})
		printRunSummary(cmd, result)
		return nil
	}

	if err := runOnce(); err != nil {
		return err
	}
	if !generateWatch {
		return nil
	}
	return watchAndRegenerate(cmd, paths.InsightsPath, runOnce)
}

func printRunSummary(cmd *cobra.Command, result *pipeline.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %d blog posts + timeline (%d archived runs)\n", len(result.Posts), result.Runs)
	for _, post := range result.Posts {
		fmt.Fprintf(out, "  - %s: %q (%s)\n", post.Slug, post.Title, dimStyle.Render(post.ReadingTime))
	}
	p := message.NewPrinter(language.English)
	fmt.Fprintln(out, dimStyle.Render(p.Sprintf("%d sessions, %d messages, %d commits across %d projects",
		result.Stats.TotalSessions, result.Stats.TotalMessages, result.Stats.TotalCommits, result.Stats.ProjectCount)))
	if len(result.Leaks) > 0 {
		fmt.Fprintln(out, warnStyle.Render("WARNING: sensitive names still present in output:"))
		for _, pattern := range result.Leaks {
			fmt.Fprintf(out, "  - pattern: %s\n", pattern)
		}
	} else {
		fmt.Fprintln(out, okStyle.Render("✓ No sensitive names detected in output"))
	}
}

// watchAndRegenerate re-runs the pipeline whenever the snapshot file is
// rewritten. Runs stay sequential: events arriving mid-run queue behind it.
func watchAndRegenerate(cmd *cobra.Command, snapshotPath string, runOnce func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(snapshotPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(snapshotPath), err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("watching "+snapshotPath+" (ctrl-c to stop)"))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != snapshotPath || !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			slog.Info("snapshot changed, regenerating", "event", event.Op.String())
			if err := runOnce(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("generation failed: "+err.Error()))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)
		case <-interrupt:
			return nil
		}
	}
}
