// Package decorator layers cost increments around a Coffee.
//
// Each decorator wraps exactly one inner Coffee and reports the inner cost plus
// its own increment, so nesting N decorators adds N increments to the base.
package decorator

// Coffee is the capability shared by the base component and every decorator.
type Coffee interface {
	Cost() int
	Description() string
}

// SimpleCoffee is the undecorated base component.
type SimpleCoffee struct{}

// Cost implements Coffee.
func (SimpleCoffee) Cost() int { return 5 }

// Description implements Coffee.
func (SimpleCoffee) Description() string { return "Simple coffee" }

// Milk adds 2 to the inner cost.
type Milk struct{ Inner Coffee }

// Cost implements Coffee.
func (m Milk) Cost() int { return m.Inner.Cost() + 2 }

// Description implements Coffee.
func (m Milk) Description() string { return m.Inner.Description() + ", milk" }

// Sugar adds 1 to the inner cost.
type Sugar struct{ Inner Coffee }

// Cost implements Coffee.
func (s Sugar) Cost() int { return s.Inner.Cost() + 1 }

// Description implements Coffee.
func (s Sugar) Description() string { return s.Inner.Description() + ", sugar" }

// Decorator wraps a Coffee and returns the decorated Coffee.
type Decorator func(Coffee) Coffee

// WithMilk wraps c in Milk.
func WithMilk(c Coffee) Coffee { return Milk{Inner: c} }

// WithSugar wraps c in Sugar.
func WithSugar(c Coffee) Coffee { return Sugar{Inner: c} }

// Wrap applies decorators in order; the first listed ends up innermost.
func Wrap(c Coffee, decorators ...Decorator) Coffee {
	for _, d := range decorators {
		if d == nil {
			continue
		}
		c = d(c)
	}
	return c
}
