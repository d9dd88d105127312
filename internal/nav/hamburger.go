package nav

// Hamburger toggles the mobile nav panel and the hamburger icon in
// lockstep. Both regions flip on every click and never independently, so
// the icon's open state always mirrors the panel's.
type Hamburger struct {
	panel Region
	icon  Region
}

// NewHamburger wires the toggle to its panel and icon regions. The caller
// resolves the regions; a missing element is a markup defect surfaced at
// bind time, not here.
func NewHamburger(panel, icon Region) *Hamburger {
	return &Hamburger{panel: panel, icon: icon}
}

// Click flips the panel and the icon. Two consecutive clicks restore the
// original state of both.
func (h *Hamburger) Click() {
	h.panel.Toggle()
	h.icon.Toggle()
}

// IsOpen reports whether the nav panel is currently open.
func (h *Hamburger) IsOpen() bool {
	return h.panel.IsOpen()
}
