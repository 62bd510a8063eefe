/*
Copyright © 2026 insights.codes hello@insights.codes
*/
package cmd

import (
	"fmt"

	"github.com/insightscodes/devlog/internal/notify"
	"github.com/insightscodes/devlog/internal/pipeline"
	"github.com/insightscodes/devlog/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var notifySend bool

// notifyCmd announces newly generated posts to subscribers.
var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Notify subscribers about new posts",
	Long: `Notify diffs the generated posts against the slugs that were already
announced and previews what would go out. With --send it emails every
confirmed subscriber about each new post, then records the slugs so they
are never announced twice.`,
	RunE: runNotify,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.Flags().BoolVar(&notifySend, "send", false, "actually send notifications (default is a dry-run preview)")
}

func runNotify(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	fsys := afero.NewOsFs()
	out := cmd.OutOrStdout()
	paths := pipeline.PathsFromConfig(cfg)

	artifacts := store.NewArtifactStore(fsys, paths.DataDir, paths.PostsDir)
	allPosts, err := artifacts.LoadPostMetas()
	if err != nil {
		return err
	}
	notified, err := notify.LoadNotified(fsys, notifiedPath(cfg))
	if err != nil {
		return err
	}

	newPosts := notify.Diff(allPosts, notified)
	if len(newPosts) == 0 {
		fmt.Fprintln(out, "No new posts to notify about.")
		return nil
	}

	fmt.Fprintf(out, "Found %d new post(s):\n\n", len(newPosts))
	for _, post := range newPosts {
		fmt.Fprintf(out, "  - %s\n    %s\n    %s/posts/%s\n\n", post.Title, post.Subtitle, cfg.Site.URL, post.Slug)
	}

	if !notifySend {
		fmt.Fprintln(out, "Run with --send to send notifications to all subscribers.")
		return nil
	}

	if cfg.Notify.APIKey == "" {
		return fmt.Errorf("notify.apiKey is not set (configure it or export DEVLOG_NOTIFY_APIKEY)")
	}

	subs, err := openSubscribers(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = subs.Close() }()

	recipients, err := subs.List(true)
	if err != nil {
		return err
	}

	tel := newTelemetry(cfg, version)
	defer func() { _ = tel.Close() }()

	mailer := notify.NewResendMailer(cfg.Notify.APIKey, cfg.Notify.From)
	notifier := notify.NewNotifier(mailer, cfg.Site.URL)
	sent, err := notifier.SendAll(cmd.Context(), newPosts, recipients)
	if err != nil {
		return err
	}
	tel.Track("notify", map[string]any{"posts": len(sent), "recipients": len(recipients)})

	if err := notify.AppendNotified(fsys, notifiedPath(cfg), notified, sent); err != nil {
		return err
	}
	fmt.Fprintf(out, "Updated %s with %d new slug(s).\n", cfg.Notify.NotifiedFile, len(sent))
	return nil
}
