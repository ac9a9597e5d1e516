package sim

import "github.com/t4skforce/threatsim/internal/models"

// Node is an inserted fragment with its resolved handler.
type Node struct {
	Fragment models.Fragment

	handler Handler
}

// Bound reports whether the node carries a handler.
func (n *Node) Bound() bool { return n.handler != nil }

// Activate runs the node's handler with ev. It reports false for an unbound node.
func (n *Node) Activate(ev *Event) bool {
	if n == nil || n.handler == nil {
		return false
	}
	if ev == nil {
		ev = NewEvent(nil)
	}
	n.handler(ev)
	return true
}

// Actions is the stateless set of surface mutations beats invoke. Each
// returns false, and changes nothing, when its target is not mounted.
type Actions struct {
	page      *Page
	callbacks Callbacks
}

// NewActions creates the mutation library for page, resolving handler names
// against callbacks.
func NewActions(page *Page, callbacks Callbacks) *Actions {
	return &Actions{page: page, callbacks: callbacks}
}

// Hide clears the visibility flag of id.
func (a *Actions) Hide(id string) bool {
	return a.page.SetVisible(id, false)
}

// Reveal sets the visibility flag of id.
func (a *Actions) Reveal(id string) bool {
	return a.page.SetVisible(id, true)
}

// Insert appends frag as the last child of container, bound to the handler
// the fragment names.
func (a *Actions) Insert(container string, frag models.Fragment) bool {
	if !a.page.Has(container) {
		return false
	}
	return a.page.AppendChild(container, a.Bind(frag, frag.Handler))
}

// Bind creates a node for frag attached to the named callback. An unknown
// name yields an unbound node.
func (a *Actions) Bind(frag models.Fragment, handler string) *Node {
	n := &Node{Fragment: frag}
	if fn, ok := a.callbacks[handler]; ok {
		n.handler = fn
	}
	return n
}
