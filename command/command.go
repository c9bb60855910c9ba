// Package command encapsulates receiver calls as Commands triggered by a
// RemoteControl invoker that does not know the concrete action.
package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sghaida/gof"
)

// ErrNoCommand is returned by PressButton when no command has been set.
var ErrNoCommand = fmt.Errorf("%w: remote control has no command", gof.ErrInvalidOperation)

// Command performs exactly one receiver call.
type Command interface {
	Execute()
	Name() string
}

// Light is the receiver.
type Light struct {
	out   io.Writer
	on    bool
	calls []string
}

// NewLight returns a Light that reports state changes to out (may be nil).
func NewLight(out io.Writer) *Light {
	if out == nil {
		out = io.Discard
	}
	return &Light{out: out}
}

// TurnOn switches the light on.
func (l *Light) TurnOn() {
	l.on = true
	l.calls = append(l.calls, "TurnOn")
	_, _ = fmt.Fprintln(l.out, "Light is ON")
}

// TurnOff switches the light off.
func (l *Light) TurnOff() {
	l.on = false
	l.calls = append(l.calls, "TurnOff")
	_, _ = fmt.Fprintln(l.out, "Light is OFF")
}

// IsOn reports the current state.
func (l *Light) IsOn() bool { return l.on }

// Calls returns the receiver methods invoked so far, in order.
func (l *Light) Calls() []string {
	out := make([]string, len(l.calls))
	copy(out, l.calls)
	return out
}

// LightOn turns its Light on.
type LightOn struct{ Light *Light }

// Execute implements Command.
func (c LightOn) Execute() { c.Light.TurnOn() }

// Name implements Command.
func (LightOn) Name() string { return "light-on" }

// LightOff turns its Light off.
type LightOff struct{ Light *Light }

// Execute implements Command.
func (c LightOff) Execute() { c.Light.TurnOff() }

// Name implements Command.
func (LightOff) Name() string { return "light-off" }

// Record is one PressButton invocation.
type Record struct {
	ID      uuid.UUID
	Command string
}

// RemoteControl holds at most one Command at a time.
type RemoteControl struct {
	cmd     Command
	history []Record
}

// NewRemoteControl returns a RemoteControl with no command.
func NewRemoteControl() *RemoteControl { return &RemoteControl{} }

// SetCommand replaces the held command.
func (r *RemoteControl) SetCommand(c Command) { r.cmd = c }

// PressButton executes the held command.
func (r *RemoteControl) PressButton() error {
	if r.cmd == nil {
		return ErrNoCommand
	}
	r.cmd.Execute()
	r.history = append(r.history, Record{ID: uuid.New(), Command: r.cmd.Name()})
	return nil
}

// History returns the executed commands in order.
func (r *RemoteControl) History() []Record {
	out := make([]Record, len(r.history))
	copy(out, r.history)
	return out
}

// IsNoCommand reports whether err is ErrNoCommand.
func IsNoCommand(err error) bool { return errors.Is(err, ErrNoCommand) }
