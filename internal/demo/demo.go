// Package demo holds the usage script of every pattern and wires them into a catalog.
package demo

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sghaida/gof/adapter"
	"github.com/sghaida/gof/catalog"
	"github.com/sghaida/gof/chain"
	"github.com/sghaida/gof/command"
	"github.com/sghaida/gof/composite"
	"github.com/sghaida/gof/decorator"
	"github.com/sghaida/gof/facade"
	"github.com/sghaida/gof/factory"
	"github.com/sghaida/gof/iterator"
	"github.com/sghaida/gof/observer"
	"github.com/sghaida/gof/singleton"
	"go.uber.org/zap"
)

// Deps are the long-lived objects owned by the composition root.
type Deps struct {
	// Singleton is the holder whose instance the singleton demo shows.
	Singleton *singleton.Holder
	// Metrics receives the observer demo's counter. Optional.
	Metrics prometheus.Registerer
}

// New returns a catalog with all ten demos in presentation order.
func New(deps Deps) (*catalog.Catalog, error) {
	if deps.Singleton == nil {
		deps.Singleton = singleton.NewHolder()
	}
	counter, err := observer.NewCounter(deps.Metrics)
	if err != nil {
		return nil, err
	}

	c := catalog.New()
	demos := []catalog.Demo{
		{Name: "singleton", Pattern: "Singleton", Summary: "lazy single shared instance", Run: runSingleton(deps.Singleton)},
		{Name: "factory", Pattern: "Factory Method", Summary: "type-keyed object creation", Run: runFactory},
		{Name: "adapter", Pattern: "Adapter", Summary: "interface translation between incompatible types", Run: runAdapter},
		{Name: "decorator", Pattern: "Decorator", Summary: "compositional behavior layering", Run: runDecorator},
		{Name: "composite", Pattern: "Composite", Summary: "uniform treatment of leaf and group nodes", Run: runComposite},
		{Name: "facade", Pattern: "Facade", Summary: "simplified entry point over subsystems", Run: runFacade},
		{Name: "observer", Pattern: "Observer", Summary: "one-to-many notification", Run: runObserver(counter)},
		{Name: "chain", Pattern: "Chain of Responsibility", Summary: "sequential delegation until handled", Run: runChain},
		{Name: "iterator", Pattern: "Iterator", Summary: "sequential traversal abstraction", Run: runIterator},
		{Name: "command", Pattern: "Command", Summary: "encapsulated invocation with decoupled invoker", Run: runCommand},
	}
	for _, d := range demos {
		if err := c.Register(d); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func runSingleton(h *singleton.Holder) catalog.RunFunc {
	return func(env catalog.Env) error {
		a := h.Instance()
		b := h.Instance()
		env.Log.Debug("singleton instance", zap.Stringer("id", a.ID()))

		fmt.Fprintf(env.Out, "Same instance: %t\n", a == b)
		fmt.Fprintf(env.Out, "Value: %v\n", a.Value())

		if _, err := h.New(); err != nil {
			fmt.Fprintf(env.Out, "Direct construction: %v\n", err)
		}
		return nil
	}
}

func runFactory(env catalog.Env) error {
	for _, kind := range []string{"car", "bike", "truck"} {
		v, err := factory.New(kind)
		if err != nil {
			fmt.Fprintf(env.Out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(env.Out, v.Create())
	}
	return nil
}

func runAdapter(env catalog.Env) error {
	var target adapter.Target = adapter.New(&adapter.Adaptee{})
	_, err := fmt.Fprintln(env.Out, target.Request())
	return err
}

func runDecorator(env catalog.Env) error {
	coffee := decorator.Coffee(decorator.SimpleCoffee{})
	for _, c := range []decorator.Coffee{
		coffee,
		decorator.WithMilk(coffee),
		decorator.Wrap(coffee, decorator.WithMilk, decorator.WithSugar),
	} {
		fmt.Fprintf(env.Out, "%s: %d\n", c.Description(), c.Cost())
	}
	return nil
}

func runComposite(env catalog.Env) error {
	root := composite.New("Composite").Add(composite.NewLeaf("Leaf 1"), composite.NewLeaf("Leaf 2"))
	for _, name := range root.Names() {
		fmt.Fprintln(env.Out, name)
	}
	return nil
}

func runFacade(env catalog.Env) error {
	_, err := fmt.Fprintln(env.Out, facade.NewComputerFacade().StartSystem())
	return err
}

func runObserver(counter *observer.Counter) catalog.RunFunc {
	return func(env catalog.Env) error {
		s := observer.NewSubject()
		s.AddObserver(&observer.Printer{Name: "Observer 1", Out: env.Out})
		s.AddObserver(&observer.Printer{Name: "Observer 2", Out: env.Out})
		s.AddObserver(observer.NewLogger(env.Log))
		s.AddObserver(counter)

		s.NotifyObservers("Hello, observers!")
		return nil
	}
}

func runChain(env catalog.Env) error {
	c := chain.Default()
	for _, req := range []string{"low", "medium", "high", "unknown"} {
		fmt.Fprintln(env.Out, c.Handle(req))
	}
	return nil
}

func runIterator(env catalog.Env) error {
	it := iterator.NewCollection("Item 1", "Item 2", "Item 3").Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Out, v)
	}
	return nil
}

func runCommand(env catalog.Env) error {
	light := command.NewLight(env.Out)
	remote := command.NewRemoteControl()

	for _, cmd := range []command.Command{command.LightOn{Light: light}, command.LightOff{Light: light}} {
		remote.SetCommand(cmd)
		if err := remote.PressButton(); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(remote.History()))
	for _, rec := range remote.History() {
		names = append(names, rec.Command)
	}
	env.Log.Debug("remote history", zap.String("commands", strings.Join(names, ",")))
	return nil
}
