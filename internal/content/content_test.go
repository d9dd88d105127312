package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParseFrontMatter(t *testing.T) {
	raw := []byte(`---
title: Getting Started
section: guides
date: 2025-03-14
tags: [setup, intro]
---
# Heading

Body text.
`)
	fm, body, err := parseFrontMatter(raw)
	if err != nil {
		t.Fatalf("parseFrontMatter: %v", err)
	}
	if fm.Title != "Getting Started" {
		t.Errorf("title = %q, want %q", fm.Title, "Getting Started")
	}
	if fm.Section != "guides" {
		t.Errorf("section = %q, want guides", fm.Section)
	}
	if len(fm.Tags) != 2 {
		t.Errorf("tags = %v, want 2 entries", fm.Tags)
	}
	if string(body[:9]) != "# Heading" {
		t.Errorf("body starts with %q, want heading", body[:9])
	}
}

func TestParseFrontMatterAbsent(t *testing.T) {
	raw := []byte("# Just Markdown\n")
	fm, body, err := parseFrontMatter(raw)
	if err != nil {
		t.Fatalf("parseFrontMatter: %v", err)
	}
	if fm.Title != "" {
		t.Errorf("title = %q, want empty", fm.Title)
	}
	if string(body) != string(raw) {
		t.Error("body should be unchanged when no front matter present")
	}
}

func TestParseFrontMatterDashRulerIsBody(t *testing.T) {
	raw := []byte("----\ntitle: not front matter\n----\n")
	fm, body, err := parseFrontMatter(raw)
	if err != nil {
		t.Fatalf("parseFrontMatter: %v", err)
	}
	if fm.Title != "" {
		t.Errorf("title = %q, want empty", fm.Title)
	}
	if string(body) != string(raw) {
		t.Error("a longer dash run should be left in the body")
	}
}

func TestParseFrontMatterUnclosed(t *testing.T) {
	if _, _, err := parseFrontMatter([]byte("---\ntitle: x\n")); err == nil {
		t.Error("unclosed front matter should fail")
	}
}

func TestWalkLoadsAndSortsPages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.md", "# Home\n")
	writeFile(t, dir, "guides/setup.md", "---\ntitle: Setup\ndate: 2025-01-02\n---\ntext\n")
	writeFile(t, dir, "blog/hello.md", "---\ntitle: Hello\ndraft: true\n---\ntext\n")
	writeFile(t, dir, "notes.txt", "not markdown")

	pages, err := Walk(dir, WalkOptions{})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("loaded %d pages, want 2 (draft and non-markdown skipped)", len(pages))
	}
	if pages[0].RelPath != "guides/setup.md" || pages[1].RelPath != "index.md" {
		t.Errorf("page order = %s, %s", pages[0].RelPath, pages[1].RelPath)
	}

	setup := pages[0]
	if setup.Section != "guides" {
		t.Errorf("section = %q, want guides", setup.Section)
	}
	if want := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC); !setup.Date.Equal(want) {
		t.Errorf("date = %v, want %v", setup.Date, want)
	}
	if setup.OutputPath() != "guides/setup.html" {
		t.Errorf("OutputPath = %q", setup.OutputPath())
	}

	home := pages[1]
	if home.Title != "Home" {
		t.Errorf("fallback title = %q, want Home", home.Title)
	}
	if home.Section != "" {
		t.Errorf("root page section = %q, want empty", home.Section)
	}
}

func TestWalkDrafts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blog/wip.md", "---\ntitle: WIP\ndraft: true\n---\ntext\n")

	pages, err := Walk(dir, WalkOptions{Drafts: true})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("loaded %d pages with drafts enabled, want 1", len(pages))
	}
}

func TestWalkFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "guides/a.md", "# A\n")
	writeFile(t, dir, "internal/b.md", "# B\n")

	pages, err := Walk(dir, WalkOptions{Exclude: []string{"internal/**"}})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(pages) != 1 || pages[0].RelPath != "guides/a.md" {
		t.Errorf("pages = %v, want only guides/a.md", pages)
	}

	pages, err = Walk(dir, WalkOptions{Include: []string{"internal/**"}})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(pages) != 1 || pages[0].RelPath != "internal/b.md" {
		t.Errorf("pages = %v, want only internal/b.md", pages)
	}
}

func TestMatchesAny(t *testing.T) {
	if !MatchesInclude("guides/deep/page.md", []string{"guides/**"}) {
		t.Error("doublestar include should match nested path")
	}
	if MatchesExclude("guides/page.md", nil) {
		t.Error("empty exclude list should exclude nothing")
	}
	if !MatchesExclude("anywhere/README.md", []string{"README.md"}) {
		t.Error("pattern should match against bare file name")
	}
}
