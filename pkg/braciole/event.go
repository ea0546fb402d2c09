package braciole

import "time"

// PhysicalSignal identifies which physical input line an edge event belongs
// to. SignalBoth is never reported by hardware; it exists only as the press
// aggregator's synthesized event for a simultaneous two-button gesture.
type PhysicalSignal int

const (
	SignalLeft PhysicalSignal = iota
	SignalRight
	SignalBoth
)

func (s PhysicalSignal) String() string {
	switch s {
	case SignalLeft:
		return "left"
	case SignalRight:
		return "right"
	case SignalBoth:
		return "both"
	default:
		return "unknown"
	}
}

// EventKind discriminates the events delivered to widgets.
type EventKind int

const (
	// EventPressed is a press edge on a physical line (or the synthetic
	// Both line).
	EventPressed EventKind = iota
	// EventReleased is the matching release edge.
	EventReleased
	// EventTimerFired is a long-press timer check. It carries the dispatch
	// timestamp; an armed button whose deadline the timestamp has reached
	// emits LongPressed.
	EventTimerFired
)

// Event is a single input event. Button edges and timer fires travel through
// the same ordered dispatch path, so outcome ordering is deterministic.
type Event struct {
	Kind   EventKind
	Signal PhysicalSignal // valid for EventPressed and EventReleased
	Now    time.Time      // valid for EventTimerFired
}

// Pressed constructs a press edge event.
func Pressed(s PhysicalSignal) Event {
	return Event{Kind: EventPressed, Signal: s}
}

// Released constructs a release edge event.
func Released(s PhysicalSignal) Event {
	return Event{Kind: EventReleased, Signal: s}
}

// TimerFired constructs a timer-fire event with the given dispatch time.
func TimerFired(now time.Time) Event {
	return Event{Kind: EventTimerFired, Now: now}
}

// ButtonOutcome is the message a button produces at the end of a gesture.
// Exactly one outcome is produced per press/release cycle, never both.
type ButtonOutcome int

const (
	OutcomeClicked ButtonOutcome = iota
	OutcomeLongPressed
)
