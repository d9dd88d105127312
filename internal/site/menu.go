package site

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tbouhar/sitegen/internal/content"
	"github.com/tbouhar/sitegen/internal/dom"
)

// Menu is the header navigation: one dropdown per content section.
type Menu struct {
	Items []MenuItem
}

// MenuItem is a single dropdown. PanelID and IconID are the element
// ids the generated markup carries and the controllers bind against.
type MenuItem struct {
	Label   string
	Slug    string
	PanelID string
	IconID  string
	Pages   []MenuEntry
}

// MenuEntry is one link inside a dropdown panel.
type MenuEntry struct {
	Title string
	Href  string
	Date  string
}

// BuildMenu groups pages by section into dropdowns. Sections named in
// pinned come first, in the given order; the rest follow alphabetically.
// Pages inside a section are listed newest first, ties by title. Pages
// at the content root belong to no section and join no dropdown.
func BuildMenu(pages []*content.Page, pinned []string) *Menu {
	bySection := make(map[string][]*content.Page)
	for _, p := range pages {
		if p.Section == "" {
			continue
		}
		bySection[p.Section] = append(bySection[p.Section], p)
	}

	slugs := make([]string, 0, len(bySection))
	for section := range bySection {
		slugs = append(slugs, Slugify(section))
	}
	sort.Strings(slugs)
	slugs = applyPinnedOrder(slugs, pinned)

	sectionBySlug := make(map[string]string, len(bySection))
	for section := range bySection {
		sectionBySlug[Slugify(section)] = section
	}

	menu := &Menu{}
	for _, slug := range slugs {
		section := sectionBySlug[slug]
		sectionPages := bySection[section]
		sort.SliceStable(sectionPages, func(i, j int) bool {
			if !sectionPages[i].Date.Equal(sectionPages[j].Date) {
				return sectionPages[i].Date.After(sectionPages[j].Date)
			}
			return sectionPages[i].Title < sectionPages[j].Title
		})

		item := MenuItem{
			Label:   sectionLabel(section),
			Slug:    slug,
			PanelID: "dropdown-" + dom.IDPartItems + "-" + slug,
			IconID:  "dropdown-" + dom.IDPartExpand + "-" + slug,
		}
		for _, p := range sectionPages {
			entry := MenuEntry{Title: p.Title, Href: p.OutputPath()}
			if !p.Date.IsZero() {
				entry.Date = p.Date.Format("2006-01-02")
			}
			item.Pages = append(item.Pages, entry)
		}
		menu.Items = append(menu.Items, item)
	}
	return menu
}

// Key fingerprints the menu shape: the same fields the render cache
// keys on. Two menus with equal keys produce identical header markup,
// so a page rendered against one stays valid under the other.
func (m *Menu) Key() string {
	var b strings.Builder
	for _, item := range m.Items {
		b.WriteString(item.PanelID)
		b.WriteByte(':')
		b.WriteString(item.Label)
		for _, e := range item.Pages {
			b.WriteByte(',')
			b.WriteString(e.Href)
			b.WriteByte('=')
			b.WriteString(e.Title)
		}
		b.WriteByte(';')
	}
	return b.String()
}

// applyPinnedOrder moves the pinned slugs to the front, keeping the
// alphabetical order for everything else. Pinned names without a
// matching section are ignored.
func applyPinnedOrder(slugs, pinned []string) []string {
	present := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		present[s] = true
	}

	ordered := make([]string, 0, len(slugs))
	taken := make(map[string]bool)
	for _, p := range pinned {
		slug := Slugify(p)
		if present[slug] && !taken[slug] {
			ordered = append(ordered, slug)
			taken[slug] = true
		}
	}
	for _, s := range slugs {
		if !taken[s] {
			ordered = append(ordered, s)
		}
	}
	return ordered
}

// Slugify lowercases and reduces a name to letters, digits, and single
// hyphens, matching the id character set the markup contract allows.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func sectionLabel(section string) string {
	words := strings.FieldsFunc(section, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
