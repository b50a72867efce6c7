package shell

import (
	"log/slog"

	"github.com/leterax/go-voxels-fpscam/pkg/fpscam"
)

type listener struct {
	id      uint64
	handler func()
}

// Emitter dispatches named events to handlers synchronously, in
// registration order. It is not safe for concurrent use.
type Emitter struct {
	listeners map[string][]listener
	nextID    uint64
	log       *slog.Logger
}

// NewEmitter creates an emitter that logs recovered handler panics to log
func NewEmitter(log *slog.Logger) *Emitter {
	return &Emitter{
		listeners: make(map[string][]listener),
		log:       log,
	}
}

// On registers handler for event
func (e *Emitter) On(event string, handler func()) fpscam.Subscription {
	e.nextID++
	e.listeners[event] = append(e.listeners[event], listener{id: e.nextID, handler: handler})
	return fpscam.Subscription{Event: event, ID: e.nextID}
}

// RemoveListener removes the handler identified by sub. Unknown
// subscriptions are ignored.
func (e *Emitter) RemoveListener(sub fpscam.Subscription) {
	ls := e.listeners[sub.Event]
	for i, l := range ls {
		if l.id == sub.ID {
			e.listeners[sub.Event] = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	if len(e.listeners[sub.Event]) == 0 {
		delete(e.listeners, sub.Event)
	}
}

// ListenerCount returns the number of handlers registered for event
func (e *Emitter) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// Emit calls every handler registered for event. Handlers may add or remove
// listeners while dispatching; changes take effect on the next Emit.
func (e *Emitter) Emit(event string) {
	ls := e.listeners[event]
	if len(ls) == 0 {
		return
	}
	snapshot := make([]listener, len(ls))
	copy(snapshot, ls)

	for _, l := range snapshot {
		e.call(event, l.handler)
	}
}

func (e *Emitter) call(event string, handler func()) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("event handler panicked", "event", event, "panic", r)
		}
	}()
	handler()
}
