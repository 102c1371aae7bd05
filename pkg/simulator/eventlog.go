package simulator

import (
	"encoding/json"
	"sync"
)

// Event is one captured simulator side effect. It marshals to the
// tagged single-key JSON object spec.md §6 documents, e.g.
// `{"gpio_output_set":{"pin":11,"value":0}}`.
type Event struct {
	kind    string
	payload any
}

// GPIOOutputSet is the payload of a `gpio_output_set` event.
type GPIOOutputSet struct {
	Pin   uint8 `json:"pin"`
	Value uint8 `json:"value"`
}

// TimeDelay is the payload of a `time_delay` event.
type TimeDelay struct {
	Ticks uint32 `json:"ticks"`
}

func gpioOutputSetEvent(pin, value uint8) Event {
	return Event{kind: "gpio_output_set", payload: GPIOOutputSet{Pin: pin, Value: value}}
}

func timeDelayEvent(ticks uint32) Event {
	return Event{kind: "time_delay", payload: TimeDelay{Ticks: ticks}}
}

// MarshalJSON renders the event as its single-key tagged object.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{e.kind: e.payload})
}

// EventLog is the ordered, append-only sequence of simulator events
// spec.md §6/§9 describes. Guarded by a mutex: spec.md §5 says the
// simulator drives one script at a time, but the log itself stays safe
// for concurrent use regardless of caller discipline.
type EventLog struct {
	mu     sync.Mutex
	events []Event
}

// Append adds an event to the end of the log.
func (l *EventLog) Append(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

// Clear empties the log.
func (l *EventLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = nil
}

// Events returns a copy of the log's current contents, in append order.
func (l *EventLog) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len reports the number of events currently in the log.
func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// JSON serializes the log to the wire-format JSON array of spec.md §6.
// Calling it twice with no intervening Append/Clear yields byte-identical
// output (spec.md §8 invariant 7), since it only reads the log.
func (l *EventLog) JSON() ([]byte, error) {
	l.mu.Lock()
	events := make([]Event, len(l.events))
	copy(events, l.events)
	l.mu.Unlock()
	if events == nil {
		events = []Event{}
	}
	return json.Marshal(events)
}
