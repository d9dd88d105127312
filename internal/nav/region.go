// Package nav implements the header navigation controllers: the mobile
// hamburger toggle and the group of collapsible dropdown menus.
//
// The controllers operate purely over the Region interface. In production
// Regions are class tokens on a parsed HTML document (internal/dom); tests
// use in-memory fakes. The controllers hold no package-level state and
// assume single-threaded, run-to-completion event dispatch: each click is
// processed fully before the next one starts.
package nav

// Region is a collapsible UI region whose open/closed state a controller
// owns. Open and Close are idempotent; Toggle always flips.
type Region interface {
	IsOpen() bool
	Open()
	Close()
	Toggle()
}
