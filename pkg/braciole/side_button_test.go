package braciole

import (
	"testing"
	"time"
)

func TestSideButtonInactiveByDefault(t *testing.T) {
	sb := NewSideButton(PositionLeft, "LEFT", DefaultButtonStyle(testFont))
	if sb.IsActive() {
		t.Fatal("fresh side button is active")
	}

	sb.Set("CANCEL", 0, testRow)
	if !sb.IsActive() {
		t.Fatal("Set did not activate")
	}

	sb.Unset()
	if sb.IsActive() {
		t.Fatal("Unset did not deactivate")
	}
}

func TestSideButtonClickTrigger(t *testing.T) {
	sb := NewSideButton(PositionLeft, "LEFT", DefaultButtonStyle(testFont))
	sb.Set("CANCEL", 0, testRow)

	if sb.GotTriggered(Pressed(SignalLeft)) {
		t.Fatal("press alone triggered")
	}
	if !sb.GotTriggered(Released(SignalLeft)) {
		t.Fatal("click did not trigger")
	}
}

func TestSideButtonLongPressTrigger(t *testing.T) {
	sb := NewSideButton(PositionRight, "RIGHT", DefaultButtonStyle(testFont))
	sb.Set("CONFIRM", 100*time.Millisecond, testRow)

	sb.GotTriggered(Pressed(SignalRight))

	// A quick click must not trigger a long-press-configured side button.
	if sb.GotTriggered(Released(SignalRight)) {
		t.Fatal("click triggered a long-press side button")
	}

	// Held past the deadline it triggers exactly once.
	sb.GotTriggered(Pressed(SignalRight))
	deadline, armed := sb.button.Deadline()
	if !armed {
		t.Fatal("press did not arm the deadline")
	}
	if !sb.GotTriggered(TimerFired(deadline)) {
		t.Fatal("fire at deadline did not trigger")
	}
	if sb.GotTriggered(Released(SignalRight)) {
		t.Fatal("release after fire triggered again")
	}
}

func TestSideButtonUnsetDropsInFlightGesture(t *testing.T) {
	sb := NewSideButton(PositionLeft, "LEFT", DefaultButtonStyle(testFont))
	sb.Set("CANCEL", 0, testRow)

	sb.GotTriggered(Pressed(SignalLeft))
	sb.Unset()
	sb.Set("CANCEL", 0, testRow)

	if sb.GotTriggered(Released(SignalLeft)) {
		t.Fatal("release from before Unset triggered")
	}
}
