// Package observer implements push-style one-to-many notification.
//
// A Subject keeps an append-only, ordered list of observers. NotifyObservers
// calls Update on each one in insertion order. Duplicates are allowed and there
// is no removal. A panicking observer propagates to the caller.
package observer

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Observer receives messages pushed by a Subject.
type Observer interface {
	Update(message string)
}

// Subject owns the ordered observer list.
type Subject struct {
	observers []Observer
}

// NewSubject returns a Subject with no observers.
func NewSubject() *Subject { return &Subject{} }

// AddObserver appends o. No identity check is done.
func (s *Subject) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// NotifyObservers pushes message to every observer in insertion order.
func (s *Subject) NotifyObservers(message string) {
	for _, o := range s.observers {
		o.Update(message)
	}
}

// Len returns the number of registrations.
func (s *Subject) Len() int { return len(s.observers) }

// Printer writes each message to Out.
type Printer struct {
	Name string
	Out  io.Writer
}

// Update implements Observer.
func (p *Printer) Update(message string) {
	_, _ = fmt.Fprintf(p.Out, "%s received: %s\n", p.Name, message)
}

// Logger emits each message as a structured log entry.
type Logger struct {
	log *zap.Logger
}

// NewLogger returns a Logger observer. A nil logger is replaced with a no-op one.
func NewLogger(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log}
}

// Update implements Observer.
func (l *Logger) Update(message string) {
	l.log.Info("observer notified", zap.String("message", message))
}

// Counter increments a prometheus counter per message.
type Counter struct {
	counter prometheus.Counter
}

// NewCounter creates the gof_observer_notifications_total counter and
// registers it with reg when reg is non-nil.
func NewCounter(reg prometheus.Registerer) (*Counter, error) {
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gof",
		Subsystem: "observer",
		Name:      "notifications_total",
		Help:      "Messages delivered to the counting observer.",
	})
	if reg != nil {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("observer: register counter: %w", err)
		}
	}
	return &Counter{counter: c}, nil
}

// Update implements Observer.
func (c *Counter) Update(string) { c.counter.Inc() }

// Metric exposes the underlying counter.
func (c *Counter) Metric() prometheus.Counter { return c.counter }

// Func lets an ordinary function act as an Observer.
type Func func(message string)

// Update calls f(message).
func (f Func) Update(message string) { f(message) }
