package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document wraps a parsed HTML tree with id and class lookups.
type Document struct {
	root *html.Node
}

// Parse reads and parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// ElementByID returns the first element with the given id, or nil.
func (d *Document) ElementByID(id string) *html.Node {
	return findElement(d.root, func(n *html.Node) bool {
		return attr(n, "id") == id
	})
}

// ElementsByClass returns all elements bearing the given class token, in
// document order.
func (d *Document) ElementsByClass(class string) []*html.Node {
	var out []*html.Node
	walkElements(d.root, func(n *html.Node) {
		if hasClass(n, class) {
			out = append(out, n)
		}
	})
	return out
}

func walkElements(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkElements(c, fn)
	}
}

func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasClass(n *html.Node, token string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == token {
			return true
		}
	}
	return false
}

func addClass(n *html.Node, token string) {
	if hasClass(n, token) {
		return
	}
	cur := attr(n, "class")
	if cur == "" {
		setAttr(n, "class", token)
		return
	}
	setAttr(n, "class", cur+" "+token)
}

func removeClass(n *html.Node, token string) {
	fields := strings.Fields(attr(n, "class"))
	kept := fields[:0]
	for _, c := range fields {
		if c != token {
			kept = append(kept, c)
		}
	}
	setAttr(n, "class", strings.Join(kept, " "))
}
