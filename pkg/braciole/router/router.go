package router

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/braciole/pkg/braciole"
)

// Screen is a type-safe identifier for the picker screens of a flow.
// Applications define their own Screen constants using iota.
//
// Example:
//
//	const (
//	    ScreenMenu Screen = iota
//	    ScreenConfirm
//	)
type Screen int

const (
	// ScreenExit ends the flow successfully.
	ScreenExit Screen = -1
	// ScreenBack pops the navigation stack and reruns the previous screen
	// at the page the user left it on. With an empty stack the flow ends
	// with braciole.ErrCancelled.
	ScreenBack Screen = -2
)

// ScreenFunc runs one screen of the flow, usually a blocking Pick call. It
// receives the screen input and the page index to restore (0 on a fresh
// visit, the remembered page when navigating back) and returns the picker
// outcome. The outcome's Index is what gets remembered for back navigation.
type ScreenFunc func(input any, resumePage int) (*braciole.PickerResult, error)

// TransitionFunc is called after each screen completes to determine the
// next screen. It receives the screen that just completed, its picker
// result, and the navigation stack (push before navigating forward so the
// flow can come back).
//
// Return (screen, input) to navigate forward, ScreenBack to pop and resume
// the previous screen, or ScreenExit to end the flow.
type TransitionFunc func(from Screen, result *braciole.PickerResult, stack *Stack) (next Screen, input any)

// Router chains blocking picker screens into a navigable flow. Screens are
// registered with their functions and a single transition function holds
// all routing logic in one place; back navigation, including a screen
// cancelling, is handled by the router itself.
type Router struct {
	screens    map[Screen]ScreenFunc
	transition TransitionFunc
	stack      *Stack
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		stack:   NewStack(),
	}
}

// Register adds a screen to the router.
// The screen function will be called when navigating to this screen.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// OnTransition sets the transition function that determines navigation flow.
// This function is called after each screen completes.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Run starts the flow at the given screen with the given input and blocks
// until it exits.
//
// A screen returning braciole.ErrCancelled is not a failure: the router
// treats it as back navigation, popping the stack and rerunning the
// previous screen at its remembered page. Cancelling with nothing left to
// pop ends the flow with ErrCancelled, which callers check with
// braciole.IsCancelled. Any other screen error ends the run wrapped with
// the screen identifier.
func (r *Router) Run(start Screen, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	current := start
	currentInput := input
	resumePage := 0

	for {
		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: screen %d not registered", current)
		}

		result, err := fn(currentInput, resumePage)
		if errors.Is(err, braciole.ErrCancelled) {
			current, currentInput, resumePage, ok = r.back()
			if !ok {
				return err
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("router: screen %d error: %w", current, err)
		}

		next, nextInput := r.transition(current, result, r.stack)
		switch next {
		case ScreenExit:
			return nil
		case ScreenBack:
			current, currentInput, resumePage, ok = r.back()
			if !ok {
				return braciole.ErrCancelled
			}
		default:
			current = next
			currentInput = nextInput
			resumePage = 0
		}
	}
}

// back pops the previous screen off the stack.
func (r *Router) back() (Screen, any, int, bool) {
	entry, ok := r.stack.Pop()
	if !ok {
		return 0, nil, 0, false
	}
	return entry.Screen, entry.Input, entry.Page, true
}

// Stack returns the navigation stack for use in transition functions.
// Transition functions push onto it before navigating forward.
func (r *Router) Stack() *Stack {
	return r.stack
}
