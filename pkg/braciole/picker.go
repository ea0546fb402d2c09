package braciole

import (
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/display"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// SideButtonConfig configures one boundary side button for a Pick call.
type SideButtonConfig struct {
	Label string
	// HoldToTrigger makes the button trigger only after being held past the
	// theme's long-press threshold.
	HoldToTrigger bool
	// LongPress overrides the theme threshold. Implies HoldToTrigger.
	LongPress time.Duration
}

// duration resolves the configured hold threshold, zero for click-triggered.
func (c *SideButtonConfig) duration() time.Duration {
	if c.LongPress > 0 {
		return c.LongPress
	}
	if c.HoldToTrigger {
		return internal.GetTheme().LongPress
	}
	return 0
}

// PickerSettings configures a Pick call.
type PickerSettings struct {
	SelectLabel          string // default select label; empty keeps the localized default
	PrevLabel            string
	NextLabel            string
	SelectLabelOverrides map[int]string
	InitialIndex         int
	Leftmost             *SideButtonConfig // shown at the first page instead of Prev
	Rightmost            *SideButtonConfig // shown at the last page instead of Next
}

// pickerController owns the dispatch loop state for one Pick call: the
// page, the per-line debounce clocks and the coalesced repaint flag.
type pickerController struct {
	page         *ChoicePage
	lastEdgeTime map[PhysicalSignal]time.Time
	needRedraw   atomic.Bool

	result    PickerResult
	done      bool
	cancelled bool
}

// Pick presents a paginated choice over the given items and blocks until
// the user selects one or triggers a configured side button. Returns
// ErrCancelled if the window is closed, and ErrNoChoices for an empty item
// sequence.
func Pick(settings PickerSettings, items []ChoiceItem) (*PickerResult, error) {
	window := internal.GetWindow()
	surface := internal.NewSurface(window.Renderer)
	defer surface.Destroy()

	page, err := NewChoicePage(items, internal.GetFonts().Button)
	if err != nil {
		return nil, err
	}

	if settings.SelectLabel != "" {
		page.WithSelectLabel(settings.SelectLabel)
	}
	if settings.PrevLabel != "" {
		page.WithPrevLabel(settings.PrevLabel)
	}
	if settings.NextLabel != "" {
		page.WithNextLabel(settings.NextLabel)
	}
	if settings.SelectLabelOverrides != nil {
		page.WithSelectLabelOverrides(settings.SelectLabelOverrides)
	}

	margins := internal.UniformPadding(4)
	page.Place(display.Rect{
		X: margins.Left,
		Y: margins.Top,
		W: int(window.GetWidth()) - margins.Left - margins.Right,
		H: int(window.GetHeight()) - margins.Top - margins.Bottom,
	})
	page.SetPageCounter(settings.InitialIndex)

	if cfg := settings.Leftmost; cfg != nil {
		if d := cfg.duration(); d > 0 {
			page.SetLeftmostButtonLongPress(cfg.Label, d)
		} else {
			page.SetLeftmostButton(cfg.Label)
		}
	}
	if cfg := settings.Rightmost; cfg != nil {
		if d := cfg.duration(); d > 0 {
			page.SetRightmostButtonLongPress(cfg.Label, d)
		} else {
			page.SetRightmostButton(cfg.Label)
		}
	}

	var device *internal.ButtonDevice
	if !constants.IsDevMode() && inputConfig.path != "" {
		device, err = internal.OpenButtons(inputConfig.path, inputConfig.left, inputConfig.right)
		if err != nil {
			return nil, NewInfrastructureError("open_input", err)
		}
		defer device.Close()
	}

	controller := &pickerController{
		page:         page,
		lastEdgeTime: make(map[PhysicalSignal]time.Time),
	}
	controller.needRedraw.Store(true)

	for !controller.done && !controller.cancelled {
		if event := sdl.WaitEventTimeout(16); event != nil {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				controller.cancelled = true

			case *sdl.KeyboardEvent:
				controller.handleKeyboard(ev)
			}
		}

		if device != nil {
			controller.drainDevice(device)
		}

		controller.fireDueTimers()

		if controller.needRedraw.Swap(false) {
			render(window, surface, page)
		}
	}

	if controller.cancelled {
		return nil, ErrCancelled
	}
	return &controller.result, nil
}

// handleKeyboard maps the keyboard arrows onto the two physical lines.
// This is the development-mode stand-in for the hardware button device.
func (c *pickerController) handleKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat != 0 {
		return
	}

	var signal PhysicalSignal
	switch ev.Keysym.Sym {
	case sdl.K_LEFT:
		signal = SignalLeft
	case sdl.K_RIGHT:
		signal = SignalRight
	default:
		return
	}

	c.dispatchEdge(signal, ev.Type == sdl.KEYDOWN)
}

// drainDevice forwards every pending hardware edge into the dispatch path.
func (c *pickerController) drainDevice(device *internal.ButtonDevice) {
	for {
		select {
		case edge, ok := <-device.Edges():
			if !ok {
				return
			}
			signal := SignalRight
			if edge.Left {
				signal = SignalLeft
			}
			c.dispatchEdge(signal, edge.Pressed)
		default:
			return
		}
	}
}

// dispatchEdge debounces one edge per physical line and routes it into the
// page. Debouncing is per line so the second press of a combined gesture is
// never dropped.
func (c *pickerController) dispatchEdge(signal PhysicalSignal, pressed bool) {
	if pressed {
		now := time.Now()
		if now.Sub(c.lastEdgeTime[signal]) < constants.DefaultInputDelay {
			return
		}
		c.lastEdgeTime[signal] = now
	}

	ev := Released(signal)
	if pressed {
		ev = Pressed(signal)
	}
	c.dispatch(ev)
}

// fireDueTimers dispatches a timer-fire event when an armed long-press
// deadline has been reached. Timer fires travel the same dispatch path as
// edges, so outcome ordering stays deterministic.
func (c *pickerController) fireDueTimers() {
	now := time.Now()
	if deadline, armed := c.page.NextDeadline(); armed && !now.Before(deadline) {
		c.dispatch(TimerFired(now))
	}
}

// dispatch processes one event to completion: state mutation first, then
// repaint scheduling. Repaints are coalesced into one batched redraw per
// processed event.
func (c *pickerController) dispatch(ev Event) {
	if c.done || c.cancelled {
		return
	}

	msg, ok := c.page.Event(ev)
	if ok {
		switch msg.Kind {
		case ChoiceSelected:
			c.result = PickerResult{Index: msg.Index, Action: PickerActionChoice}
		case ChoiceLeftMost:
			c.result = PickerResult{Index: msg.Index, Action: PickerActionLeftMost}
		case ChoiceRightMost:
			c.result = PickerResult{Index: msg.Index, Action: PickerActionRightMost}
		}
		c.done = true
	}

	if c.page.NeedsPaint() {
		c.needRedraw.Store(true)
	}
}

func render(window *internal.Window, surface *internal.SDLSurface, page *ChoicePage) {
	theme := internal.GetTheme()
	window.Renderer.SetDrawColor(theme.Background.R, theme.Background.G, theme.Background.B, theme.Background.A)
	window.Renderer.Clear()
	window.RenderBackground()

	page.Paint(surface)

	window.Present()
}
