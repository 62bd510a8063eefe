/*
Copyright © 2026 insights.codes hello@insights.codes
*/
package cmd

import (
	"github.com/insightscodes/devlog/internal/pipeline"
	"github.com/insightscodes/devlog/internal/wrapped"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var wrappedCmd = &cobra.Command{
	Use:   "wrapped [snapshot]",
	Short: "Play the Wrapped slideshow in the terminal",
	Long: `Wrapped turns the insights snapshot into a short slideshow: headline
numbers, project highlights, a top workflow, and a personality card.
Reads the configured snapshot by default, or a path given as argument.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		path := pipeline.PathsFromConfig(cfg).InsightsPath
		if len(args) == 1 {
			path = args[0]
		}
		raw, err := afero.ReadFile(afero.NewOsFs(), path)
		if err != nil {
			return err
		}
		data, err := wrapped.Extract(raw)
		if err != nil {
			return err
		}
		tel := newTelemetry(cfg, version)
		defer func() { _ = tel.Close() }()
		tel.Track("wrapped", map[string]any{"projects": len(data.Projects)})

		return wrapped.Run(data)
	},
}

func init() {
	rootCmd.AddCommand(wrappedCmd)
}
