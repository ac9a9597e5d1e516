package sim

import (
	"sort"

	"github.com/t4skforce/threatsim/internal/models"
)

// Surface is an addressable region of the presented UI.
type Surface struct {
	ID       string
	Visible  bool
	Text     string
	Children []*Node

	// Revision increments on every change; renderers use it to follow the
	// newest content.
	Revision int
}

// SurfaceState is a read-only copy of a surface used for comparisons.
type SurfaceState struct {
	Visible  bool
	Text     string
	Children int
	Revision int
}

// Page is the set of currently mounted surfaces. Every mutation on an
// unmounted id is a silent no-op that reports false.
type Page struct {
	surfaces map[string]*Surface
}

// NewPage mounts the given surfaces.
func NewPage(specs ...models.SurfaceSpec) *Page {
	p := &Page{surfaces: make(map[string]*Surface, len(specs))}
	for _, s := range specs {
		p.Mount(s.ID, !s.Hidden)
	}
	return p
}

// Mount adds a surface, replacing any surface with the same id.
func (p *Page) Mount(id string, visible bool) *Surface {
	s := &Surface{ID: id, Visible: visible}
	p.surfaces[id] = s
	return s
}

// Unmount removes a surface.
func (p *Page) Unmount(id string) {
	delete(p.surfaces, id)
}

// Has reports whether id is mounted.
func (p *Page) Has(id string) bool {
	_, ok := p.surfaces[id]
	return ok
}

// Surface returns the mounted surface for id.
func (p *Page) Surface(id string) (*Surface, bool) {
	s, ok := p.surfaces[id]
	return s, ok
}

// Visible reports whether id is mounted and visible.
func (p *Page) Visible(id string) bool {
	s, ok := p.surfaces[id]
	return ok && s.Visible
}

// SetVisible toggles the visibility flag of id.
func (p *Page) SetVisible(id string, visible bool) bool {
	s, ok := p.surfaces[id]
	if !ok {
		return false
	}
	if s.Visible != visible {
		s.Visible = visible
		s.Revision++
	}
	return true
}

// SetText replaces the text content of id.
func (p *Page) SetText(id, text string) bool {
	s, ok := p.surfaces[id]
	if !ok {
		return false
	}
	s.Text = text
	s.Revision++
	return true
}

// AppendChild adds n as the last child of id.
func (p *Page) AppendChild(id string, n *Node) bool {
	s, ok := p.surfaces[id]
	if !ok {
		return false
	}
	s.Children = append(s.Children, n)
	s.Revision++
	return true
}

// Touch marks id as changed without altering it.
func (p *Page) Touch(id string) bool {
	s, ok := p.surfaces[id]
	if !ok {
		return false
	}
	s.Revision++
	return true
}

// IDs returns the mounted surface ids in lexical order.
func (p *Page) IDs() []string {
	ids := make([]string, 0, len(p.surfaces))
	for id := range p.surfaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Snapshot copies the state of every mounted surface.
func (p *Page) Snapshot() map[string]SurfaceState {
	out := make(map[string]SurfaceState, len(p.surfaces))
	for id, s := range p.surfaces {
		out[id] = SurfaceState{
			Visible:  s.Visible,
			Text:     s.Text,
			Children: len(s.Children),
			Revision: s.Revision,
		}
	}
	return out
}
