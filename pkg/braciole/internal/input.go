package internal

import (
	"fmt"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// Edge is one hardware button edge: which physical line moved and in which
// direction.
type Edge struct {
	Left    bool // true for the left line, false for the right line
	Pressed bool
}

// ButtonDevice reads the two physical button lines from a Linux evdev
// device and forwards their edges. Reading happens on its own goroutine;
// the edges channel is drained by the single-threaded dispatch loop, which
// keeps event processing ordered.
type ButtonDevice struct {
	dev       *evdev.InputDevice
	leftCode  evdev.EvCode
	rightCode evdev.EvCode

	edges  chan Edge
	closed atomic.Bool
}

// OpenButtons opens the evdev device at path and starts forwarding edges
// for the two configured key codes. Other keys on the device are ignored.
func OpenButtons(path string, leftCode, rightCode uint16) (*ButtonDevice, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}

	d := &ButtonDevice{
		dev:       dev,
		leftCode:  evdev.EvCode(leftCode),
		rightCode: evdev.EvCode(rightCode),
		edges:     make(chan Edge, 16),
	}

	go d.readLoop()

	return d, nil
}

// Edges returns the channel hardware edges are delivered on.
func (d *ButtonDevice) Edges() <-chan Edge {
	return d.edges
}

func (d *ButtonDevice) readLoop() {
	for {
		ev, err := d.dev.ReadOne()
		if err != nil {
			if !d.closed.Load() {
				GetInternalLogger().Error("Input device read failed", "error", err)
			}
			close(d.edges)
			return
		}

		if ev.Type != evdev.EV_KEY {
			continue
		}
		// Value 2 is key repeat; only real edges matter here.
		if ev.Value != 0 && ev.Value != 1 {
			continue
		}

		switch ev.Code {
		case d.leftCode:
			d.send(Edge{Left: true, Pressed: ev.Value == 1})
		case d.rightCode:
			d.send(Edge{Left: false, Pressed: ev.Value == 1})
		}
	}
}

// send drops the edge if the consumer stopped draining, so the reader can
// never deadlock against a closed dispatch loop.
func (d *ButtonDevice) send(e Edge) {
	select {
	case d.edges <- e:
	default:
	}
}

// Close stops the reader and releases the device.
func (d *ButtonDevice) Close() {
	d.closed.Store(true)
	d.dev.Close()
}
