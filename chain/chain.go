// Package chain implements Chain of Responsibility as an explicit, ordered list
// of handlers evaluated by a dispatcher loop.
//
// Handle walks the handlers in construction order and returns the first result
// whose handler matched. When nothing matches it returns Unhandled.
package chain

// Unhandled is returned for any request no handler accepts.
const Unhandled = "Request cannot be handled"

// Handler reports whether it accepts request and, if so, its result.
type Handler interface {
	Handle(request string) (result string, ok bool)
}

// HandlerFunc lets an ordinary function act as a Handler.
type HandlerFunc func(request string) (string, bool)

// Handle calls f(request).
func (f HandlerFunc) Handle(request string) (string, bool) { return f(request) }

// Match returns a Handler that accepts requests satisfying pred with a fixed result.
func Match(pred func(string) bool, result string) Handler {
	return HandlerFunc(func(request string) (string, bool) {
		if pred(request) {
			return result, true
		}
		return "", false
	})
}

func equals(want string) func(string) bool {
	return func(got string) bool { return got == want }
}

// LowLevel accepts "low".
type LowLevel struct{}

// Handle implements Handler.
func (LowLevel) Handle(request string) (string, bool) {
	return Match(equals("low"), "Handled by LowLevelHandler").Handle(request)
}

// MediumLevel accepts "medium".
type MediumLevel struct{}

// Handle implements Handler.
func (MediumLevel) Handle(request string) (string, bool) {
	return Match(equals("medium"), "Handled by MediumLevelHandler").Handle(request)
}

// HighLevel accepts "high".
type HighLevel struct{}

// Handle implements Handler.
func (HighLevel) Handle(request string) (string, bool) {
	return Match(equals("high"), "Handled by HighLevelHandler").Handle(request)
}

// Chain is an immutable ordered handler list.
type Chain struct {
	handlers []Handler
}

// New fixes the handler order. Nil handlers are dropped.
func New(handlers ...Handler) *Chain {
	hs := make([]Handler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			hs = append(hs, h)
		}
	}
	return &Chain{handlers: hs}
}

// Default returns low -> medium -> high.
func Default() *Chain {
	return New(LowLevel{}, MediumLevel{}, HighLevel{})
}

// Handle returns the first matching handler's result, or Unhandled.
func (c *Chain) Handle(request string) string {
	for _, h := range c.handlers {
		if result, ok := h.Handle(request); ok {
			return result
		}
	}
	return Unhandled
}

// Len returns the number of handlers.
func (c *Chain) Len() int { return len(c.handlers) }
