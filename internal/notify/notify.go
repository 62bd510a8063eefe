// Package notify announces newly generated posts to subscribers. It diffs
// the generated post set against the persisted list of already-notified
// slugs; actual dispatch is gated behind an explicit send flag upstream.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/insightscodes/devlog/models"
	"github.com/spf13/afero"
)

// Diff returns the posts whose slug is not yet in notified, preserving order.
func Diff(all []models.BlogPost, notified []string) []models.BlogPost {
	seen := make(map[string]bool, len(notified))
	for _, slug := range notified {
		seen[slug] = true
	}
	var fresh []models.BlogPost
	for _, p := range all {
		if !seen[p.Slug] {
			fresh = append(fresh, p)
		}
	}
	return fresh
}

// LoadNotified reads the persisted slug list. A missing file means nothing
// has been announced yet.
func LoadNotified(fsys afero.Fs, path string) ([]string, error) {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("check notified file: %w", err)
	}
	if !exists {
		return nil, nil
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read notified file %s: %w", path, err)
	}
	var slugs []string
	if err := json.Unmarshal(data, &slugs); err != nil {
		return nil, fmt.Errorf("parse notified file %s: %w", path, err)
	}
	return slugs, nil
}

// AppendNotified persists the given slugs as announced.
func AppendNotified(fsys afero.Fs, path string, notified, sent []string) error {
	updated := append(append([]string(nil), notified...), sent...)
	data, err := json.MarshalIndent(updated, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal notified slugs: %w", err)
	}
	if err := afero.WriteFile(fsys, path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write notified file %s: %w", path, err)
	}
	return nil
}

// Mailer sends one email. Satisfied by ResendMailer in production and by
// fakes in tests.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// Notifier dispatches announcement emails for new posts.
type Notifier struct {
	mailer  Mailer
	siteURL string
}

// NewNotifier builds a Notifier around a Mailer.
func NewNotifier(mailer Mailer, siteURL string) *Notifier {
	return &Notifier{mailer: mailer, siteURL: siteURL}
}

// SendAll emails every recipient about every new post, returning the slugs
// that were announced. A per-recipient failure is logged and skipped; a post
// counts as announced if at least one send succeeded.
func (n *Notifier) SendAll(ctx context.Context, newPosts []models.BlogPost, recipients []models.Subscriber) ([]string, error) {
	var sent []string
	for _, post := range newPosts {
		subject := fmt.Sprintf("New post: %s", post.Title)
		html := EmailHTML(n.siteURL, post)
		delivered := 0
		for _, sub := range recipients {
			if err := n.mailer.Send(ctx, sub.Email, subject, html); err != nil {
				slog.Error("send notification failed", "slug", post.Slug, "to", sub.Email, "error", err)
				continue
			}
			delivered++
		}
		if delivered > 0 || len(recipients) == 0 {
			sent = append(sent, post.Slug)
		}
		slog.Info("notified subscribers", "slug", post.Slug, "delivered", delivered, "recipients", len(recipients))
	}
	return sent, nil
}

// EmailHTML renders the announcement email body.
func EmailHTML(siteURL string, post models.BlogPost) string {
	return fmt.Sprintf(`
<div style="font-family: system-ui, sans-serif; max-width: 480px; margin: 0 auto; padding: 40px 20px;">
  <p style="color: #737373; font-size: 13px; margin-bottom: 20px;">insights.codes</p>
  <h2 style="color: #e5e5e5; font-size: 20px; margin-bottom: 8px;">%s</h2>
  <p style="color: #a3a3a3; line-height: 1.6; margin-bottom: 24px;">
    %s
  </p>
  <a href="%s/posts/%s"
     style="display: inline-block; padding: 12px 24px; background: #10b981; color: #000; text-decoration: none; border-radius: 6px; font-weight: 600;">
    Read post
  </a>
</div>`, post.Title, post.Subtitle, siteURL, post.Slug)
}
