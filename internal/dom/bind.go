package dom

import (
	"fmt"
	"strings"

	"github.com/tbouhar/sitegen/internal/nav"
)

// Header holds the navigation controllers bound to one document.
type Header struct {
	Hamburger *nav.Hamburger
	Dropdowns *nav.DropdownGroup
	Journal   *Journal
}

// Bind locates the header elements and wires the nav controllers to them.
// The generated markup is a contract: a missing element or a broken
// trigger association is a build defect, so Bind fails instead of leaving
// a half-wired header behind.
func Bind(doc *Document) (*Header, error) {
	journal := &Journal{}

	trigger := doc.ElementByID(IDHamburger)
	if trigger == nil {
		return nil, fmt.Errorf("binding header: no element with id %q", IDHamburger)
	}
	panel := doc.ElementByID(IDNavPanel)
	if panel == nil {
		return nil, fmt.Errorf("binding header: no element with id %q", IDNavPanel)
	}
	hamburger := nav.NewHamburger(
		NewClassRegion(panel, ClassNavPanelOpen, journal),
		NewClassRegion(trigger, ClassHamburgerOpen, journal),
	)

	var items []nav.DropdownItem
	for _, btn := range doc.ElementsByClass(ClassDropdownButton) {
		panelID := attr(btn, AttrControls)
		if panelID == "" {
			return nil, fmt.Errorf("binding header: dropdown button without %s attribute", AttrControls)
		}
		dropPanel := doc.ElementByID(panelID)
		if dropPanel == nil {
			return nil, fmt.Errorf("binding header: %s=%q matches no element", AttrControls, panelID)
		}

		iconID := strings.Replace(panelID, IDPartItems, IDPartExpand, 1)
		if iconID == panelID {
			return nil, fmt.Errorf("binding header: panel id %q has no %q segment to derive its icon id from", panelID, IDPartItems)
		}
		icon := doc.ElementByID(iconID)
		if icon == nil {
			return nil, fmt.Errorf("binding header: no expand icon with id %q for panel %q", iconID, panelID)
		}

		items = append(items, nav.DropdownItem{
			ID:    panelID,
			Panel: NewClassRegion(dropPanel, ClassDropdownItemsOpen, journal),
			Icon:  NewClassRegion(icon, ClassDropdownExpandOpen, journal),
		})
	}

	return &Header{
		Hamburger: hamburger,
		Dropdowns: nav.NewDropdownGroup(items),
		Journal:   journal,
	}, nil
}
