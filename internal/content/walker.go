package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// WalkOptions controls which content files are loaded.
type WalkOptions struct {
	Include []string // doublestar globs; empty means all markdown files
	Exclude []string
	Drafts  bool // load pages marked draft: true
}

// Walk loads every markdown page under dir, applying the option filters.
// Pages come back sorted by path for deterministic builds.
func Walk(dir string, opts WalkOptions) ([]*Page, error) {
	var pages []*Page

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".md") {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !MatchesInclude(rel, opts.Include) || MatchesExclude(rel, opts.Exclude) {
			return nil
		}

		page, err := loadPage(path, rel)
		if err != nil {
			return fmt.Errorf("loading %s: %w", rel, err)
		}
		if page.Draft && !opts.Drafts {
			return nil
		}
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking content dir: %w", err)
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].RelPath < pages[j].RelPath })
	return pages, nil
}

// loadPage reads one markdown file and resolves its metadata.
func loadPage(path, relPath string) (*Page, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fm, body, err := parseFrontMatter(raw)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(fm.Date)
	if err != nil {
		return nil, err
	}

	page := &Page{
		RelPath: relPath,
		Section: fm.Section,
		Title:   fm.Title,
		Date:    date,
		Summary: fm.Summary,
		Tags:    fm.Tags,
		Draft:   fm.Draft,
		Body:    body,
	}
	if page.Title == "" {
		page.Title = fallbackTitle(body, relPath)
	}
	// Nested pages default to their top-level directory as the section.
	if page.Section == "" {
		if i := strings.Index(relPath, "/"); i > 0 {
			page.Section = relPath[:i]
		}
	}
	return page, nil
}
