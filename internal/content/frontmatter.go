package content

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var frontMatterDelim = []byte("---")

// frontMatter is the YAML block at the top of a content file.
type frontMatter struct {
	Title   string   `yaml:"title"`
	Section string   `yaml:"section"`
	Date    string   `yaml:"date"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
	Draft   bool     `yaml:"draft"`
}

// parseFrontMatter splits a file into its YAML front matter and markdown
// body. Files without a front matter block return a zero frontMatter and
// the input unchanged.
func parseFrontMatter(raw []byte) (frontMatter, []byte, error) {
	var fm frontMatter

	trimmed := bytes.TrimLeft(raw, "\n\r")
	if !bytes.HasPrefix(trimmed, frontMatterDelim) {
		return fm, raw, nil
	}

	rest := trimmed[len(frontMatterDelim):]
	// The delimiter must be a line of its own: a longer dash run is a
	// thematic break, not front matter.
	if len(rest) > 0 && rest[0] != '\n' && rest[0] != '\r' {
		return fm, raw, nil
	}
	end := bytes.Index(rest, append([]byte("\n"), frontMatterDelim...))
	if end == -1 {
		return fm, nil, fmt.Errorf("front matter: missing closing delimiter")
	}

	block := rest[:end]
	body := rest[end+1+len(frontMatterDelim):]
	body = bytes.TrimPrefix(body, []byte("\r"))
	body = bytes.TrimPrefix(body, []byte("\n"))

	if err := yaml.Unmarshal(block, &fm); err != nil {
		return fm, nil, fmt.Errorf("front matter: %w", err)
	}
	return fm, body, nil
}

// parseDate accepts the date formats front matter commonly carries.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// fallbackTitle pulls the first # heading from the body, or derives a
// title from the file name.
func fallbackTitle(body []byte, relPath string) string {
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	base := relPath
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	return strings.TrimSuffix(base, ".md")
}
