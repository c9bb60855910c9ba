// Package catalog provides an ordered, keyed registry of runnable demos.
//
// It is intentionally:
//   - explicit: demos are registered by the composition root, never discovered
//   - ordered: listing and running follow registration order
//   - guarded: duplicate names, unknown names, nil run funcs and panicking demos
//     come back as typed errors you can assert in tests
//
// Expected usage:
//
//	cat := catalog.New().
//		Provide(catalog.Demo{Name: "adapter", Pattern: "Adapter", Run: runAdapter})
//	err := cat.Run(env, cat.MustGet("adapter"))
package catalog

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sghaida/gof"
	"go.uber.org/zap"
)

// ErrDemoPanic is returned if a demo panics while running.
var ErrDemoPanic = errors.New("catalog: panic during Run")

// Env is what a demo receives when it runs.
type Env struct {
	Out io.Writer
	Log *zap.Logger
}

// RunFunc executes a demo's usage script.
type RunFunc func(Env) error

// Demo describes one runnable usage script.
type Demo struct {
	Name    string  `json:"name" yaml:"name"`
	Pattern string  `json:"pattern" yaml:"pattern"`
	Summary string  `json:"summary" yaml:"summary"`
	Run     RunFunc `json:"-" yaml:"-"`
}

// DuplicateDemoError is returned when a name is registered twice.
type DuplicateDemoError struct{ Name string }

// Error implements the error interface.
func (e DuplicateDemoError) Error() string {
	// Example: catalog: duplicate demo "adapter"
	return "catalog: duplicate demo " + strconv.Quote(e.Name)
}

// Unwrap exposes the taxonomy sentinel.
func (e DuplicateDemoError) Unwrap() error { return gof.ErrInvalidArgument }

// UnknownDemoError is returned when a name is not registered.
type UnknownDemoError struct{ Name string }

// Error implements the error interface.
func (e UnknownDemoError) Error() string {
	// Example: catalog: unknown demo "visitor"
	return "catalog: unknown demo " + strconv.Quote(e.Name)
}

// Unwrap exposes the taxonomy sentinel.
func (e UnknownDemoError) Unwrap() error { return gof.ErrInvalidArgument }

// NotRunnableError is returned when a demo has no run func.
type NotRunnableError struct{ Name string }

// Error implements the error interface.
func (e NotRunnableError) Error() string {
	return "catalog: demo " + strconv.Quote(e.Name) + " has no run func"
}

// Unwrap exposes the taxonomy sentinel.
func (e NotRunnableError) Unwrap() error { return gof.ErrNotImplemented }

// Catalog is an in-memory ordered registry.
type Catalog struct {
	order []string
	items map[string]Demo
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{items: map[string]Demo{}}
}

// Register adds d. It fails with DuplicateDemoError if the name is taken.
func (c *Catalog) Register(d Demo) error {
	if _, exists := c.items[d.Name]; exists {
		return DuplicateDemoError{Name: d.Name}
	}
	c.items[d.Name] = d
	c.order = append(c.order, d.Name)
	return nil
}

// Provide registers d and returns the catalog for chaining.
// It panics on duplicates; use it for static wiring.
func (c *Catalog) Provide(d Demo) *Catalog {
	if err := c.Register(d); err != nil {
		panic(err)
	}
	return c
}

// Get returns the demo if present.
func (c *Catalog) Get(name string) (Demo, bool) {
	d, ok := c.items[name]
	return d, ok
}

// MustGet returns the demo or panics with a helpful message.
func (c *Catalog) MustGet(name string) Demo {
	d, ok := c.items[name]
	if !ok {
		panic(UnknownDemoError{Name: name})
	}
	return d
}

// Len returns the number of registered demos.
func (c *Catalog) Len() int { return len(c.order) }

// Demos returns all demos in registration order.
func (c *Catalog) Demos() []Demo {
	out := make([]Demo, 0, len(c.order))
	for _, n := range c.order {
		out = append(out, c.items[n])
	}
	return out
}

// Select returns the named demos in registration order, or all of them when
// names is empty. Repeated names are returned once.
func (c *Catalog) Select(names ...string) ([]Demo, error) {
	if len(names) == 0 {
		return c.Demos(), nil
	}
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := c.items[n]; !ok {
			return nil, UnknownDemoError{Name: n}
		}
		want[n] = struct{}{}
	}
	out := make([]Demo, 0, len(want))
	for _, n := range c.order {
		if _, ok := want[n]; ok {
			out = append(out, c.items[n])
		}
	}
	return out, nil
}

// Run executes d with env and converts panics into errors.
//
// A nil env.Out is replaced with io.Discard and a nil env.Log with a no-op logger.
func (c *Catalog) Run(env Env, d Demo) (err error) {
	if d.Run == nil {
		return NotRunnableError{Name: d.Name}
	}
	if env.Out == nil {
		env.Out = io.Discard
	}
	if env.Log == nil {
		env.Log = zap.NewNop()
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", ErrDemoPanic, d.Name, rec)
		}
	}()
	return d.Run(env)
}
