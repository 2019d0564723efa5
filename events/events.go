package events

import (
	"fmt"

	"termpix/device"
)

// Event is what the controller hands to a widget and what a widget hands back.
type Event interface {
	event()
}

// NoInput means nothing happened this cycle.
type NoInput struct{}

func (NoInput) event() {}

type Input struct {
	Raw device.Event
}

func (Input) event() {}

// Message carries an application defined payload back into the loop.
type Message struct {
	Payload any
}

func (Message) event() {}

// GracefulStop is delivered once after the first interrupt.
type GracefulStop struct{}

func (GracefulStop) event() {}

// Stop ends the loop with the graceful exit status.
type Stop struct{}

func (Stop) event() {}

func IsNoInput(e Event) bool {
	if e == nil {
		return true
	}
	_, ok := e.(NoInput)
	return ok
}

func (NoInput) String() string      { return "NoInput" }
func (GracefulStop) String() string { return "GracefulStop" }
func (Stop) String() string         { return "Stop" }

func (i Input) String() string {
	return fmt.Sprintf("Input(%v)", i.Raw)
}

func (m Message) String() string {
	return fmt.Sprintf("Message(%v)", m.Payload)
}
