/*
Copyright © 2026 insights.codes hello@insights.codes
*/
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/insightscodes/devlog/internal/directive"
	"github.com/insightscodes/devlog/internal/pipeline"
	"github.com/insightscodes/devlog/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <slug>",
	Short: "Render a generated post in the terminal",
	Long: `Preview loads a generated post by slug, lowers its content directives
to plain markdown, and renders it with terminal styling.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		paths := pipeline.PathsFromConfig(cfg)
		artifacts := store.NewArtifactStore(afero.NewOsFs(), paths.DataDir, paths.PostsDir)

		post, err := artifacts.LoadPost(args[0])
		if err != nil {
			return err
		}
		nodes, err := directive.Parse(post.Content)
		if err != nil {
			return fmt.Errorf("parse %s: %w", post.Slug, err)
		}

		md := fmt.Sprintf("# %s\n\n*%s · %s*\n\n%s", post.Title, post.Subtitle, post.ReadingTime, directive.Markdown(nodes))
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return err
		}
		rendered, err := renderer.Render(md)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
