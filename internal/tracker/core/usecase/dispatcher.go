package usecase

import (
	"context"
	"encoding/json"

	"konjac/internal/tracker/core/ports"
)

// Launcher submits a task for asynchronous execution. The caller never
// observes the task's outcome.
type Launcher func(task func())

// GoLauncher runs every task on its own goroutine.
func GoLauncher(task func()) { go task() }

// Dispatcher is the fire-and-forget transport sink shared by pageviews and
// custom events.
type Dispatcher struct {
	beacon    ports.BeaconPort
	transport ports.TransportPort
	launch    Launcher
}

// NewDispatcher prefers beacon when it is non-nil and falls back to transport.
// A nil launch defaults to GoLauncher.
func NewDispatcher(beacon ports.BeaconPort, transport ports.TransportPort, launch Launcher) *Dispatcher {
	if launch == nil {
		launch = GoLauncher
	}
	return &Dispatcher{
		beacon:    beacon,
		transport: transport,
		launch:    launch,
	}
}

// Dispatch serializes payload and hands it to the transport. Every failure,
// panics included, is dropped here.
func (d *Dispatcher) Dispatch(url string, payload any) {
	defer func() { _ = recover() }()

	body, err := json.Marshal(payload)
	if err != nil {
		return
	}

	if d.beacon != nil {
		d.beacon.SendBeacon(url, body)
		return
	}
	if d.transport == nil {
		return
	}

	d.launch(func() {
		defer func() { _ = recover() }()
		_ = d.transport.Send(context.Background(), url, body)
	})
}
