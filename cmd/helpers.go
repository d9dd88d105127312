package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/tbouhar/sitegen/internal/cache"
	"github.com/tbouhar/sitegen/internal/config"
	"github.com/tbouhar/sitegen/internal/content"
	"github.com/tbouhar/sitegen/internal/progress"
	"github.com/tbouhar/sitegen/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `sitegen init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// siteBuilder renders the site, remembering the menu shape between
// watch-mode rebuilds so edits that leave the header unchanged only
// re-render the touched pages.
type siteBuilder struct {
	cfg     *config.Config
	menuKey string
}

// build loads content and renders into the configured output directory.
// changed lists the files a watch event reported; nil means build
// everything. Returns the number of pages rendered.
func (b *siteBuilder) build(changed []string, reporter progress.Reporter) (int, error) {
	pages, err := content.Walk(b.cfg.ContentDir, content.WalkOptions{
		Include: b.cfg.Include,
		Exclude: b.cfg.Exclude,
		Drafts:  b.cfg.Drafts,
	})
	if err != nil {
		return 0, fmt.Errorf("loading content: %w", err)
	}

	menu := site.BuildMenu(pages, b.cfg.Menu)

	gen, err := site.NewGenerator(b.cfg.OutputDir, b.cfg.Title, b.cfg.BaseURL, config.AccentColor(b.cfg.Accent))
	if err != nil {
		return 0, err
	}
	gen.Reporter = reporter

	cachePath := filepath.Join(b.cfg.OutputDir, ".sitegen-cache.db")
	if c, cacheErr := cache.Open(cachePath); cacheErr == nil {
		defer c.Close()
		gen.Cache = c
		defer pruneCache(c, pages)
	}

	// A targeted render is only valid while the header stays the same
	// on every other page, so the menu key must match the last full
	// build's.
	key := menu.Key()
	if targets := targetPages(b.cfg.ContentDir, pages, changed); targets != nil && key == b.menuKey {
		for _, p := range targets {
			if err := gen.RenderPage(p, menu); err != nil {
				return 0, fmt.Errorf("rendering %s: %w", p.RelPath, err)
			}
		}
		return len(targets), nil
	}

	count, err := gen.Generate(pages, menu)
	if err != nil {
		return 0, err
	}
	b.menuKey = key
	return count, nil
}

// targetPages maps changed file paths onto loaded pages. A nil result
// means the change set cannot be narrowed and the whole site rebuilds:
// no change information, a non-content file, or a page that no longer
// loads (deleted, excluded, or turned draft).
func targetPages(contentDir string, pages []*content.Page, changed []string) []*content.Page {
	if len(changed) == 0 {
		return nil
	}

	byRel := make(map[string]*content.Page, len(pages))
	for _, p := range pages {
		byRel[p.RelPath] = p
	}

	targets := make([]*content.Page, 0, len(changed))
	for _, path := range changed {
		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return nil
		}
		p, ok := byRel[filepath.ToSlash(rel)]
		if !ok {
			return nil
		}
		targets = append(targets, p)
	}
	return targets
}

// pruneCache drops cached renders for pages that no longer exist.
func pruneCache(c *cache.Cache, pages []*content.Page) {
	live := make(map[string]bool, len(pages))
	for _, p := range pages {
		live[p.RelPath] = true
	}
	_ = c.Prune(live)
}
