// Package singleton provides a single shared Instance owned by an explicit Holder.
//
// The Holder is created by the composition root and passed to whoever needs the
// instance, so the lifecycle is visible in wiring instead of hidden in a static
// slot. GetInstance is kept for callers that want the classic accessor; it is
// backed by a process-wide default Holder.
//
// Behavior:
//   - Instance() creates the instance on first call with a random value in [0,1)
//     and returns the same pointer (and value) on every later call.
//   - New() is direct construction: it succeeds only while no instance exists and
//     fails with AlreadyExistsError (errors.Is gof.ErrInvalidOperation) afterwards.
package singleton

import (
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/sghaida/gof"
)

// Instance is the shared value managed by a Holder.
type Instance struct {
	id    uuid.UUID
	value float64
}

// ID identifies the instance for display and logging.
func (i *Instance) ID() uuid.UUID { return i.id }

// Value returns the random value generated when the instance was created.
func (i *Instance) Value() float64 { return i.value }

// AlreadyExistsError is returned by (*Holder).New once an instance exists.
type AlreadyExistsError struct{ ID uuid.UUID }

// Error implements the error interface.
func (e AlreadyExistsError) Error() string {
	// Example: singleton: instance "5f0c..." already exists
	return "singleton: instance " + strconv.Quote(e.ID.String()) + " already exists"
}

// Unwrap exposes the taxonomy sentinel.
func (e AlreadyExistsError) Unwrap() error { return gof.ErrInvalidOperation }

// Option configures a Holder.
type Option func(*Holder)

// WithSource overrides the random source used for Value. The source must
// return values in [0,1).
func WithSource(src func() float64) Option {
	return func(h *Holder) {
		if src != nil {
			h.source = src
		}
	}
}

// Holder owns at most one Instance.
type Holder struct {
	mu     sync.Mutex
	inst   *Instance
	source func() float64
}

// NewHolder returns an empty Holder.
func NewHolder(opts ...Option) *Holder {
	h := &Holder{source: rand.Float64}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Instance returns the shared instance, creating it on first call.
func (h *Holder) Instance() *Instance {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.inst == nil {
		h.inst = h.create()
	}
	return h.inst
}

// New constructs the instance directly. It fails if one already exists.
func (h *Holder) New() (*Instance, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.inst != nil {
		return nil, AlreadyExistsError{ID: h.inst.id}
	}
	h.inst = h.create()
	return h.inst, nil
}

// Exists reports whether the instance has been created.
func (h *Holder) Exists() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.inst != nil
}

func (h *Holder) create() *Instance {
	return &Instance{id: uuid.New(), value: h.source()}
}

var defaultHolder = NewHolder()

// GetInstance returns the process-wide instance.
func GetInstance() *Instance { return defaultHolder.Instance() }
