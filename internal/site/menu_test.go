package site

import (
	"testing"
	"time"

	"github.com/tbouhar/sitegen/internal/content"
)

func testPages() []*content.Page {
	return []*content.Page{
		{RelPath: "index.md", Title: "Home"},
		{RelPath: "guides/setup.md", Section: "guides", Title: "Setup", Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{RelPath: "guides/deploy.md", Section: "guides", Title: "Deploy", Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{RelPath: "blog/hello.md", Section: "blog", Title: "Hello"},
		{RelPath: "reference/cli.md", Section: "reference", Title: "CLI"},
	}
}

func TestBuildMenuSections(t *testing.T) {
	menu := BuildMenu(testPages(), nil)

	if len(menu.Items) != 3 {
		t.Fatalf("menu has %d items, want 3", len(menu.Items))
	}
	// Alphabetical without pinning.
	if menu.Items[0].Slug != "blog" || menu.Items[1].Slug != "guides" || menu.Items[2].Slug != "reference" {
		t.Errorf("section order = %s, %s, %s", menu.Items[0].Slug, menu.Items[1].Slug, menu.Items[2].Slug)
	}

	guides := menu.Items[1]
	if guides.PanelID != "dropdown-items-guides" {
		t.Errorf("PanelID = %q, want dropdown-items-guides", guides.PanelID)
	}
	if guides.IconID != "dropdown-expand-guides" {
		t.Errorf("IconID = %q, want dropdown-expand-guides", guides.IconID)
	}
	if guides.Label != "Guides" {
		t.Errorf("Label = %q, want Guides", guides.Label)
	}

	// Newest page first within a section.
	if len(guides.Pages) != 2 || guides.Pages[0].Title != "Deploy" {
		t.Errorf("guides pages = %+v, want Deploy first", guides.Pages)
	}

	// Root pages join no dropdown.
	for _, item := range menu.Items {
		for _, e := range item.Pages {
			if e.Href == "index.html" {
				t.Error("root page should not appear in a dropdown")
			}
		}
	}
}

func TestBuildMenuPinnedOrder(t *testing.T) {
	menu := BuildMenu(testPages(), []string{"reference", "guides", "missing"})

	got := []string{menu.Items[0].Slug, menu.Items[1].Slug, menu.Items[2].Slug}
	want := []string{"reference", "guides", "blog"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSectionLabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"guides", "Guides"},
		{"release-notes", "Release Notes"},
		{"how_to", "How To"},
		{"änderungen", "Änderungen"},
	}
	for _, tt := range tests {
		if got := sectionLabel(tt.in); got != tt.want {
			t.Errorf("sectionLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMenuKey(t *testing.T) {
	pages := testPages()
	base := BuildMenu(pages, nil).Key()

	if got := BuildMenu(testPages(), nil).Key(); got != base {
		t.Error("identical menus should share a key")
	}

	retitled := testPages()
	retitled[1].Title = "Setup Guide"
	if got := BuildMenu(retitled, nil).Key(); got == base {
		t.Error("retitling a page should change the menu key")
	}

	extra := append(testPages(), &content.Page{RelPath: "guides/extra.md", Section: "guides", Title: "Extra"})
	if got := BuildMenu(extra, nil).Key(); got == base {
		t.Error("adding a page should change the menu key")
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"guides", "guides"},
		{"Release Notes", "release-notes"},
		{"how_to", "how-to"},
		{"v2.0 API!", "v2-0-api"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
