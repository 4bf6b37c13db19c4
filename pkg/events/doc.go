// Package events provides the in-process event bus workflow controllers
// report document lifecycle events to.
//
// Events are named envelopes with a generated id and timestamp. Subscribers
// receive over buffered channels; a subscriber that cannot keep up has
// messages dropped rather than blocking the emitter, and subscriptions are
// cleaned up automatically when their context is cancelled.
//
// Basic usage:
//
//	bus := events.NewBus()
//	defer bus.Close()
//
//	sub := bus.Subscribe(ctx, events.EventStatusChanged)
//	defer sub.Close()
//
//	go func() {
//	    for evt := range sub.Receive() {
//	        change := evt.Payload.(events.StatusChange)
//	        // refresh lists, show a toast, ...
//	    }
//	}()
//
//	bus.Emit(ctx, events.EventStatusChanged, events.StatusChange{...})
//
// Subscribe with no names delivers every event.
package events
