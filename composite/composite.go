// Package composite treats single leaves and groups of components uniformly
// through the Component interface.
package composite

// Component is implemented by leaves and composites.
type Component interface {
	Name() string
}

// Leaf is a named component with no children.
type Leaf struct {
	name string
}

// NewLeaf returns a Leaf named name.
func NewLeaf(name string) *Leaf { return &Leaf{name: name} }

// Name implements Component.
func (l *Leaf) Name() string { return l.name }

// Composite is a named, ordered group of child components it owns.
type Composite struct {
	name     string
	children []Component
}

// New returns an empty Composite.
func New(name string) *Composite { return &Composite{name: name} }

// Name implements Component.
func (c *Composite) Name() string { return c.name }

// Add appends children in order and returns c for chaining. Nil children are skipped.
func (c *Composite) Add(children ...Component) *Composite {
	for _, ch := range children {
		if ch != nil {
			c.children = append(c.children, ch)
		}
	}
	return c
}

// Children returns a copy of the child list.
func (c *Composite) Children() []Component {
	out := make([]Component, len(c.children))
	copy(out, c.children)
	return out
}

// Names returns each direct child's name in insertion order.
// A nested composite contributes its own name, not its children's.
func (c *Composite) Names() []string {
	out := make([]string, 0, len(c.children))
	for _, ch := range c.children {
		out = append(out, ch.Name())
	}
	return out
}

// Flatten returns leaf names depth-first across nested composites.
func (c *Composite) Flatten() []string {
	var out []string
	for _, ch := range c.children {
		if sub, ok := ch.(*Composite); ok {
			out = append(out, sub.Flatten()...)
			continue
		}
		out = append(out, ch.Name())
	}
	return out
}
