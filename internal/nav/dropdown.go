package nav

import "fmt"

// DropdownItem is one (button, panel, icon) triple in the header. ID is
// the panel's element id, taken from the trigger's association attribute.
type DropdownItem struct {
	ID    string
	Panel Region
	Icon  Region
}

// DropdownGroup is an ordered set of dropdown items sharing one mutual
// exclusion domain: at most one item is open at any time, and opening one
// closes all the others.
type DropdownGroup struct {
	items []DropdownItem
	index map[string]int
}

// NewDropdownGroup builds a group from the given items, preserving order.
func NewDropdownGroup(items []DropdownItem) *DropdownGroup {
	g := &DropdownGroup{
		items: items,
		index: make(map[string]int, len(items)),
	}
	for i, item := range items {
		g.index[item.ID] = i
	}
	return g
}

// Click handles a trigger click for the item identified by id.
//
// Siblings close before the target flips, so the at-most-one-open
// invariant holds at every observable point, whether the target was open
// or closed. If the target was already open, the sibling pass is a no-op
// and the flip closes it, leaving the whole group closed.
func (g *DropdownGroup) Click(id string) error {
	target, ok := g.index[id]
	if !ok {
		return fmt.Errorf("dropdown group: no item with panel id %q", id)
	}

	for i, item := range g.items {
		if i == target {
			continue
		}
		if item.Panel.IsOpen() {
			item.Panel.Close()
		}
	}
	for i, item := range g.items {
		if i == target {
			continue
		}
		if item.Icon.IsOpen() {
			item.Icon.Close()
		}
	}

	g.items[target].Panel.Toggle()
	g.items[target].Icon.Toggle()
	return nil
}

// OpenID returns the id of the currently open item, or "" when the whole
// group is closed.
func (g *DropdownGroup) OpenID() string {
	for _, item := range g.items {
		if item.Panel.IsOpen() {
			return item.ID
		}
	}
	return ""
}

// Len returns the number of items in the group.
func (g *DropdownGroup) Len() int {
	return len(g.items)
}
