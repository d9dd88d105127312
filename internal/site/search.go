package site

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/tbouhar/sitegen/internal/content"
)

// SearchEntry is one searchable page in the index the browser shim
// fetches for client-side search.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Section string `json:"section,omitempty"`
	Summary string `json:"summary,omitempty"`
	Content string `json:"content"`
}

// maxIndexedContent caps the amount of body text per entry.
const maxIndexedContent = 2000

// BuildSearchIndex builds search entries from the loaded pages.
func BuildSearchIndex(pages []*content.Page) []SearchEntry {
	entries := make([]SearchEntry, 0, len(pages))
	for _, p := range pages {
		entries = append(entries, SearchEntry{
			Path:    p.OutputPath(),
			Title:   p.Title,
			Section: p.Section,
			Summary: p.Summary,
			Content: indexableText(p.Body),
		})
	}
	return entries
}

// WriteSearchIndex writes the index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, path string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// indexableText flattens markdown into plain-ish text for substring
// search: heading markers and code fences are stripped, and the result
// is capped.
func indexableText(body []byte) string {
	var b strings.Builder
	inFence := false
	for _, line := range strings.Split(string(body), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence || trimmed == "" {
			continue
		}
		trimmed = strings.TrimLeft(trimmed, "# ")
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(trimmed)
		if b.Len() >= maxIndexedContent {
			break
		}
	}
	text := b.String()
	if len(text) > maxIndexedContent {
		text = text[:maxIndexedContent]
	}
	return text
}
