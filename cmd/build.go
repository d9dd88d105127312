package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbouhar/sitegen/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static site",
	Long:  `Loads markdown content, builds the navigation menu, and renders the static site into the configured output directory. Unchanged pages come from the build cache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		b := siteBuilder{cfg: cfg}
		count, err := b.build(nil, progress.NewReporter())
		if err != nil {
			return err
		}

		fmt.Printf("Site generated: %s (%d pages)\n", cfg.OutputDir, count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
