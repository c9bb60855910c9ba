// Package adapter re-exposes an Adaptee's SpecificRequest under the Target
// interface expected by clients.
package adapter

// Target is the interface clients call.
type Target interface {
	Request() string
}

// Adaptee has the behavior clients need under a different method name.
type Adaptee struct{}

// SpecificRequest is the adaptee's own operation.
func (*Adaptee) SpecificRequest() string { return "Specific request" }

// Adapter wraps exactly one Adaptee for its lifetime.
type Adapter struct {
	adaptee *Adaptee
}

// New returns an Adapter over a. A nil a is replaced with a zero Adaptee.
func New(a *Adaptee) *Adapter {
	if a == nil {
		a = &Adaptee{}
	}
	return &Adapter{adaptee: a}
}

// Request forwards to SpecificRequest and returns its result verbatim.
func (a *Adapter) Request() string { return a.adaptee.SpecificRequest() }

// Func lets an ordinary function satisfy Target.
type Func func() string

// Request calls f().
func (f Func) Request() string { return f() }
