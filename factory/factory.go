// Package factory implements the Factory Method pattern as a kind-keyed
// constructor table.
//
// A Factory maps a Kind to a Constructor. New(kind) returns a fresh Vehicle of
// the matching variant or an UnknownKindError (errors.Is gof.ErrInvalidArgument).
//
// The package-level New uses a default factory wired with Car and Bike.
package factory

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/sghaida/gof"
)

// Vehicle is the capability every variant provides.
type Vehicle interface {
	Create() string
}

// Kind is the type key used to select a variant.
type Kind string

const (
	KindCar  Kind = "car"
	KindBike Kind = "bike"
)

// Car is a Vehicle variant.
type Car struct{}

// Create implements Vehicle.
func (Car) Create() string { return "Car created" }

// Bike is a Vehicle variant.
type Bike struct{}

// Create implements Vehicle.
func (Bike) Create() string { return "Bike created" }

// Constructor builds a new Vehicle.
type Constructor func() Vehicle

// UnknownKindError is returned when no constructor is registered for a kind.
type UnknownKindError struct{ Kind Kind }

// Error implements the error interface.
func (e UnknownKindError) Error() string {
	// Example: factory: unknown vehicle kind "truck"
	return "factory: unknown vehicle kind " + strconv.Quote(string(e.Kind))
}

// Unwrap exposes the taxonomy sentinel.
func (e UnknownKindError) Unwrap() error { return gof.ErrInvalidArgument }

// DuplicateKindError is returned when a kind is registered twice.
type DuplicateKindError struct{ Kind Kind }

// Error implements the error interface.
func (e DuplicateKindError) Error() string {
	return "factory: duplicate vehicle kind " + strconv.Quote(string(e.Kind))
}

// Unwrap exposes the taxonomy sentinel.
func (e DuplicateKindError) Unwrap() error { return gof.ErrInvalidArgument }

// Factory is an in-memory kind -> constructor table.
type Factory struct {
	ctors map[Kind]Constructor
}

// NewFactory returns an empty Factory.
func NewFactory() *Factory {
	return &Factory{ctors: map[Kind]Constructor{}}
}

// Register adds a constructor for kind.
//
// It fails with DuplicateKindError if kind already exists, and with
// gof.ErrInvalidArgument if ctor is nil.
func (f *Factory) Register(kind Kind, ctor Constructor) error {
	if ctor == nil {
		return fmt.Errorf("%w: nil constructor for kind %q", gof.ErrInvalidArgument, kind)
	}
	if _, exists := f.ctors[kind]; exists {
		return DuplicateKindError{Kind: kind}
	}
	f.ctors[kind] = ctor
	return nil
}

// MustRegister is Register for static wiring; it panics on error and returns
// the factory for chaining.
func (f *Factory) MustRegister(kind Kind, ctor Constructor) *Factory {
	if err := f.Register(kind, ctor); err != nil {
		panic(err)
	}
	return f
}

// New returns a new Vehicle for kind.
func (f *Factory) New(kind Kind) (Vehicle, error) {
	ctor, ok := f.ctors[kind]
	if !ok {
		return nil, UnknownKindError{Kind: kind}
	}
	return ctor(), nil
}

// Kinds returns the registered kinds in sorted order.
func (f *Factory) Kinds() []Kind {
	out := make([]Kind, 0, len(f.ctors))
	for k := range f.ctors {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var defaultFactory = NewFactory().
	MustRegister(KindCar, func() Vehicle { return Car{} }).
	MustRegister(KindBike, func() Vehicle { return Bike{} })

// New creates a Vehicle from the default factory (car, bike).
func New(kind string) (Vehicle, error) {
	return defaultFactory.New(Kind(kind))
}
