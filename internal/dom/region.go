package dom

import "golang.org/x/net/html"

// Patch records one class-token mutation, addressed by element id so a
// browser shim can replay it on the live page.
type Patch struct {
	ElementID string `json:"id"`
	Class     string `json:"class"`
	On        bool   `json:"on"`
}

// Journal collects the patches produced by region mutations during one
// click. Preview sessions drain it after each event and send the result
// to the browser.
type Journal struct {
	patches []Patch
}

// Drain returns the recorded patches and resets the journal.
func (j *Journal) Drain() []Patch {
	out := j.patches
	j.patches = nil
	return out
}

func (j *Journal) record(p Patch) {
	if j == nil {
		return
	}
	j.patches = append(j.patches, p)
}

// ClassRegion is a nav.Region backed by the presence of one class token
// on one element. State changes are recorded in the journal.
type ClassRegion struct {
	node    *html.Node
	id      string
	token   string
	journal *Journal
}

// NewClassRegion binds a region to an element and class token. The
// journal may be nil when no patch relay is needed.
func NewClassRegion(node *html.Node, token string, journal *Journal) *ClassRegion {
	return &ClassRegion{
		node:    node,
		id:      attr(node, "id"),
		token:   token,
		journal: journal,
	}
}

// IsOpen reports whether the class token is present.
func (r *ClassRegion) IsOpen() bool {
	return hasClass(r.node, r.token)
}

// Open adds the class token. No-op if already present.
func (r *ClassRegion) Open() {
	if r.IsOpen() {
		return
	}
	addClass(r.node, r.token)
	r.journal.record(Patch{ElementID: r.id, Class: r.token, On: true})
}

// Close removes the class token. No-op if absent.
func (r *ClassRegion) Close() {
	if !r.IsOpen() {
		return
	}
	removeClass(r.node, r.token)
	r.journal.record(Patch{ElementID: r.id, Class: r.token, On: false})
}

// Toggle flips the class token.
func (r *ClassRegion) Toggle() {
	if r.IsOpen() {
		r.Close()
		return
	}
	r.Open()
}
