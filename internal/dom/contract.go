// Package dom adapts the nav controllers to a parsed HTML document. The
// generated site and this package share a single markup contract: element
// ids and class tokens defined here. Class presence drives visual state;
// CSS owns the transitions.
package dom

// Element ids in the generated page header.
const (
	IDHamburger = "hamburger"
	IDNavPanel  = "site-nav-items"
)

// Class tokens toggled by the controllers.
const (
	ClassHamburgerOpen      = "hamburger--open"
	ClassNavPanelOpen       = "site-nav__items--open"
	ClassDropdownButton     = "dropdown__button"
	ClassDropdownItems      = "dropdown__items"
	ClassDropdownItemsOpen  = "dropdown__items--open"
	ClassDropdownExpand     = "dropdown__expand"
	ClassDropdownExpandOpen = "dropdown__expand--open"
)

// AttrControls is the association attribute on a dropdown trigger naming
// the element id of the panel it controls.
const AttrControls = "aria-controls"

// A dropdown's expand icon id derives from its panel id by swapping the
// first occurrence of IDPartItems for IDPartExpand. The site generator
// uses the same segments when it mints panel and icon ids.
const (
	IDPartItems  = "items"
	IDPartExpand = "expand"
)
