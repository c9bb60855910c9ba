// Package facade offers one StartSystem call over the Monitor and Computer subsystems.
package facade

import "fmt"

// Monitor is a subsystem.
type Monitor struct{}

// TurnOn starts the monitor.
func (*Monitor) TurnOn() string { return "Monitor turned on" }

// Computer is a subsystem.
type Computer struct{}

// Start boots the computer.
func (*Computer) Start() string { return "Computer started" }

// ComputerFacade owns one instance of each subsystem.
type ComputerFacade struct {
	monitor  *Monitor
	computer *Computer
}

// NewComputerFacade creates the facade and its subsystems.
func NewComputerFacade() *ComputerFacade {
	return &ComputerFacade{monitor: &Monitor{}, computer: &Computer{}}
}

// StartSystem starts the monitor, then the computer, and reports both.
func (f *ComputerFacade) StartSystem() string {
	m := f.monitor.TurnOn()
	c := f.computer.Start()
	return fmt.Sprintf("System started: %s and %s", m, c)
}
