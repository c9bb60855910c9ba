// Package iterator provides a one-shot forward cursor over an ordered Collection.
package iterator

import (
	"iter"
	"strconv"

	"github.com/sghaida/gof"
)

// OutOfRangeError is returned by Next once the cursor has passed the end.
type OutOfRangeError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e OutOfRangeError) Error() string {
	// Example: iterator: index 3 out of range [0,3)
	return "iterator: index " + strconv.Itoa(e.Index) + " out of range [0," + strconv.Itoa(e.Len) + ")"
}

// Unwrap exposes the taxonomy sentinel.
func (e OutOfRangeError) Unwrap() error { return gof.ErrOutOfRange }

// Collection is an ordered sequence of items.
type Collection[T any] struct {
	items []T
}

// NewCollection returns a Collection holding items in order.
func NewCollection[T any](items ...T) *Collection[T] {
	c := &Collection[T]{}
	c.Add(items...)
	return c
}

// Add appends items.
func (c *Collection[T]) Add(items ...T) {
	c.items = append(c.items, items...)
}

// Len returns the number of items.
func (c *Collection[T]) Len() int { return len(c.items) }

// Iterator returns a cursor over a snapshot of the current items.
// Items added later are not visible to it.
func (c *Collection[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{items: c.snapshot()}
}

// All returns a range-over-func sequence over a snapshot of the current items.
func (c *Collection[T]) All() iter.Seq[T] {
	items := c.snapshot()
	return func(yield func(T) bool) {
		for _, it := range items {
			if !yield(it) {
				return
			}
		}
	}
}

func (c *Collection[T]) snapshot() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Iterator is a forward-only cursor. It cannot be restarted.
type Iterator[T any] struct {
	items  []T
	cursor int
}

// HasNext reports whether the cursor is before the end.
func (it *Iterator[T]) HasNext() bool { return it.cursor < len(it.items) }

// Next returns the element at the cursor and advances it.
func (it *Iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, OutOfRangeError{Index: it.cursor, Len: len(it.items)}
	}
	v := it.items[it.cursor]
	it.cursor++
	return v, nil
}
