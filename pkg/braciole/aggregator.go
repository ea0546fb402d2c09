package braciole

// LatchState is the press aggregator's gesture state. It is exported so the
// transition behavior stays auditable from tests.
type LatchState int

const (
	// LatchNone: both lines up, no gesture in progress.
	LatchNone LatchState = iota
	// LatchLeft: only the left line is down.
	LatchLeft
	// LatchRight: only the right line is down.
	LatchRight
	// LatchBoth: the combined gesture is active; the synthetic Both press
	// has been emitted and its release has not.
	LatchBoth
	// LatchDraining: the combined gesture ended but a line is still
	// physically down; every edge is swallowed until both lines are up.
	LatchDraining
)

func (l LatchState) String() string {
	switch l {
	case LatchNone:
		return "none"
	case LatchLeft:
		return "left"
	case LatchRight:
		return "right"
	case LatchBoth:
		return "both"
	case LatchDraining:
		return "draining"
	default:
		return "unknown"
	}
}

// rawEdge indexes the four raw edge events the transition table is defined
// over.
type rawEdge int

const (
	edgeLeftPressed rawEdge = iota
	edgeLeftReleased
	edgeRightPressed
	edgeRightReleased
)

// emission is what a transition does with the incoming edge.
type emission int

const (
	// swallow: the edge must not reach any widget.
	swallow emission = iota
	// pass: the edge is delivered unmodified.
	pass
	// emitBothPressed: the edge is replaced by a synthetic Both press.
	emitBothPressed
	// emitBothReleased: the edge is replaced by a synthetic Both release.
	emitBothReleased
)

type transition struct {
	emit emission
	next LatchState
}

// transitions is the full state x edge table. Entering LatchBoth replaces
// the second press with the synthetic Both press; the first release of the
// pair carries the synthetic Both release and starts the drain. LatchDraining
// rows swallow everything; its exit to LatchNone is guarded on both lines
// being physically up and applied in Resolve.
var transitions = [...][4]transition{
	LatchNone: {
		edgeLeftPressed:   {pass, LatchLeft},
		edgeLeftReleased:  {swallow, LatchNone},
		edgeRightPressed:  {pass, LatchRight},
		edgeRightReleased: {swallow, LatchNone},
	},
	LatchLeft: {
		edgeLeftPressed:   {swallow, LatchLeft},
		edgeLeftReleased:  {pass, LatchNone},
		edgeRightPressed:  {emitBothPressed, LatchBoth},
		edgeRightReleased: {swallow, LatchLeft},
	},
	LatchRight: {
		edgeLeftPressed:   {emitBothPressed, LatchBoth},
		edgeLeftReleased:  {swallow, LatchRight},
		edgeRightPressed:  {swallow, LatchRight},
		edgeRightReleased: {pass, LatchNone},
	},
	LatchBoth: {
		edgeLeftPressed:   {swallow, LatchBoth},
		edgeLeftReleased:  {emitBothReleased, LatchDraining},
		edgeRightPressed:  {swallow, LatchBoth},
		edgeRightReleased: {emitBothReleased, LatchDraining},
	},
	LatchDraining: {
		edgeLeftPressed:   {swallow, LatchDraining},
		edgeLeftReleased:  {swallow, LatchDraining},
		edgeRightPressed:  {swallow, LatchDraining},
		edgeRightReleased: {swallow, LatchDraining},
	},
}

// PressAggregator resolves raw physical edge events before they reach any
// widget. When both lines become pressed while the first is still held, the
// individual edges are replaced by a single synthetic Both press/release
// pair, so a simultaneous two-button press is never misread as two
// independent clicks and the middle-bound widget sees exactly one cycle.
//
// The aggregator is the five-state latch above, driven by the transitions
// table. The two physical line bits mirror the hardware truth; they decide
// when LatchDraining may return to LatchNone, so a re-press of a still-held
// line cannot leak a stray click out of a half-drained gesture.
type PressAggregator struct {
	state LatchState

	leftDown  bool
	rightDown bool
}

// NewPressAggregator returns an aggregator with both lines up.
func NewPressAggregator() *PressAggregator {
	return &PressAggregator{state: LatchNone}
}

// Latch returns the current latch state.
func (a *PressAggregator) Latch() LatchState {
	return a.state
}

// Resolve consumes one raw edge event and decides whether to deliver it
// unmodified, replace it with a synthetic Both event, or swallow it
// entirely. Non-edge events (timer fires) pass through untouched. The
// second return value is false when the event must not reach any widget.
func (a *PressAggregator) Resolve(ev Event) (Event, bool) {
	if ev.Kind == EventTimerFired {
		return ev, true
	}
	if ev.Signal == SignalBoth {
		// Both is synthesized here, never a raw input.
		return Event{}, false
	}

	a.trackLine(ev)
	t := transitions[a.state][edgeOf(ev)]
	a.state = t.next

	// The drain ends only when every line is physically up again.
	if a.state == LatchDraining && !a.leftDown && !a.rightDown {
		a.state = LatchNone
	}

	switch t.emit {
	case pass:
		return ev, true
	case emitBothPressed:
		return Pressed(SignalBoth), true
	case emitBothReleased:
		return Released(SignalBoth), true
	default:
		return Event{}, false
	}
}

// BothActive reports whether the resolved event belongs to the combined
// gesture, meaning the individual left/right widgets must be forced back to
// the released visual state.
func (a *PressAggregator) BothActive(ev Event) bool {
	return ev.Kind != EventTimerFired && ev.Signal == SignalBoth
}

// trackLine mirrors the physical up/down truth of the two lines.
func (a *PressAggregator) trackLine(ev Event) {
	down := ev.Kind == EventPressed
	if ev.Signal == SignalLeft {
		a.leftDown = down
	} else {
		a.rightDown = down
	}
}

func edgeOf(ev Event) rawEdge {
	if ev.Signal == SignalLeft {
		if ev.Kind == EventPressed {
			return edgeLeftPressed
		}
		return edgeLeftReleased
	}
	if ev.Kind == EventPressed {
		return edgeRightPressed
	}
	return edgeRightReleased
}
