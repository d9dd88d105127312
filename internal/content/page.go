// Package content loads the markdown source tree: walking the content
// directory, filtering by glob patterns, and parsing front matter.
package content

import (
	"strings"
	"time"
)

// Page is one markdown content file with its front matter parsed.
type Page struct {
	RelPath string // slash-separated path relative to the content dir
	Section string // top-level section ("" for root pages like index.md)
	Title   string
	Date    time.Time
	Summary string
	Tags    []string
	Draft   bool
	Body    []byte // markdown with the front matter stripped
}

// OutputPath returns the page's path in the generated site.
func (p *Page) OutputPath() string {
	return strings.TrimSuffix(p.RelPath, ".md") + ".html"
}

// Depth returns how many directories deep the page sits, used to compute
// relative asset prefixes.
func (p *Page) Depth() int {
	return strings.Count(p.RelPath, "/")
}
