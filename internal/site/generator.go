// Package site renders the markdown content tree into the static site:
// HTML pages sharing one header, the stylesheet and browser shim, and the
// search index.
package site

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/tbouhar/sitegen/internal/content"
	"github.com/tbouhar/sitegen/internal/progress"
)

// RenderCache lets the generator skip re-rendering unchanged pages.
// Implemented by the SQLite build cache; nil disables caching.
type RenderCache interface {
	Get(path, hash string) ([]byte, bool, error)
	Put(path, hash string, page []byte) error
}

// Generator converts loaded pages into the static site.
type Generator struct {
	OutputDir string
	SiteTitle string
	BaseURL   string
	Accent    string

	Cache    RenderCache
	Reporter progress.Reporter

	md   goldmark.Markdown
	tmpl *template.Template
}

// NewGenerator creates a Generator writing to outputDir.
func NewGenerator(outputDir, siteTitle, baseURL, accent string) (*Generator, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Generator{
		OutputDir: outputDir,
		SiteTitle: siteTitle,
		BaseURL:   baseURL,
		Accent:    accent,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
		tmpl: tmpl,
	}, nil
}

// pageData is the payload for the page template.
type pageData struct {
	Title     string
	SiteTitle string
	Accent    template.CSS
	RelPath   string
	BasePath  string
	Menu      *Menu
	Content   template.HTML
}

// Generate renders every page plus the shared assets. Returns the number
// of pages written (including cache hits).
func (g *Generator) Generate(pages []*content.Page, menu *Menu) (int, error) {
	if len(pages) == 0 {
		return 0, fmt.Errorf("no content pages to generate")
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(g.styleCSS()), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(shimJS), 0o644); err != nil {
		return 0, err
	}

	entries := BuildSearchIndex(pages)
	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	if g.Reporter != nil {
		g.Reporter.Start(len(pages))
		defer g.Reporter.Finish()
	}

	for i, page := range pages {
		if err := g.renderPage(page, menu); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", page.RelPath, err)
		}
		if g.Reporter != nil {
			g.Reporter.Update(i+1, page.RelPath)
		}
	}
	return len(pages), nil
}

// RenderPage renders a single page into the output tree. Watch mode uses
// it for targeted rebuilds.
func (g *Generator) RenderPage(page *content.Page, menu *Menu) error {
	return g.renderPage(page, menu)
}

func (g *Generator) renderPage(page *content.Page, menu *Menu) error {
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(page.OutputPath()))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	hash := g.pageHash(page, menu)
	if g.Cache != nil {
		if cached, ok, err := g.Cache.Get(page.RelPath, hash); err == nil && ok {
			return os.WriteFile(outPath, cached, 0o644)
		}
	}

	var body bytes.Buffer
	if err := g.md.Convert(page.Body, &body); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	data := pageData{
		Title:     page.Title,
		SiteTitle: g.SiteTitle,
		Accent:    template.CSS(g.Accent),
		RelPath:   page.OutputPath(),
		BasePath:  strings.Repeat("../", page.Depth()),
		Menu:      menu,
		Content:   template.HTML(rewriteMDLinks(body.String())),
	}

	var rendered bytes.Buffer
	if err := g.tmpl.Execute(&rendered, data); err != nil {
		return err
	}

	if g.Cache != nil {
		if err := g.Cache.Put(page.RelPath, hash, rendered.Bytes()); err != nil {
			return fmt.Errorf("caching page: %w", err)
		}
	}
	return os.WriteFile(outPath, rendered.Bytes(), 0o644)
}

// pageHash keys the render cache: the page body plus everything that
// shapes the surrounding chrome, so menu or title changes invalidate
// cached pages too.
func (g *Generator) pageHash(page *content.Page, menu *Menu) string {
	h := sha256.New()
	h.Write(page.Body)
	fmt.Fprintf(h, "|%s|%s|%s|%s|%s", page.Title, g.SiteTitle, g.BaseURL, g.Accent, templateVersion)
	for _, item := range menu.Items {
		fmt.Fprintf(h, "|%s:%s", item.PanelID, item.Label)
		for _, e := range item.Pages {
			fmt.Fprintf(h, ",%s=%s", e.Href, e.Title)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// rewriteMDLinks changes .md links in rendered HTML to their .html
// counterparts so cross-page links work in the generated site.
func rewriteMDLinks(s string) string {
	s = strings.ReplaceAll(s, `.md"`, `.html"`)
	s = strings.ReplaceAll(s, `.md#`, `.html#`)
	return s
}
