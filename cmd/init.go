package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbouhar/sitegen/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize sitegen configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure sitegen for your project, generates a .sitegen.yml file, and scaffolds a starter content directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}

		if err := scaffoldContent(cfg.ContentDir); err != nil {
			return fmt.Errorf("scaffolding content: %w", err)
		}

		fmt.Printf("Configuration written to %s\n", cfgFile)
		fmt.Printf("Starter content created in %s — run `sitegen serve` to preview\n", cfg.ContentDir)
		return nil
	},
}

// scaffoldContent creates a starter content tree so a fresh project
// builds and shows both header behaviors right away. Existing files
// are never overwritten.
func scaffoldContent(dir string) error {
	starter := map[string]string{
		"index.md": `# Welcome

This is your new site. Edit files under the content directory and run
` + "`sitegen serve`" + ` to preview changes live.
`,
		"guides/getting-started.md": `---
title: Getting Started
date: ` + todayDate() + `
summary: First steps with your new site.
---

# Getting Started

Add markdown files under a section directory and they appear in that
section's dropdown menu automatically.
`,
		"blog/hello-world.md": `---
title: Hello World
date: ` + todayDate() + `
---

# Hello World

A first post. Sections become dropdowns in the site header.
`,
	}

	for relPath, body := range starter {
		path := filepath.Join(dir, filepath.FromSlash(relPath))
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func todayDate() string {
	return time.Now().Format("2006-01-02")
}

func init() {
	rootCmd.AddCommand(initCmd)
}
