package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/braciole/pkg/braciole"
	"github.com/BrandonKowalski/braciole/pkg/braciole/router"
)

// Screen identifiers - use typed constants for compile-time safety
const (
	ScreenMenu router.Screen = iota
	ScreenConfirm
)

// Example demonstrates basic router usage with screen registration and
// transitions. Each screen stands in for a blocking Pick call.
func Example() {
	r := router.New()

	entries := []string{"Wipe device", "Change label"}

	// Track calls to simulate a flow: menu -> confirm -> back -> exit
	menuCalls := 0

	r.Register(ScreenMenu, func(input any, resumePage int) (*braciole.PickerResult, error) {
		menuCalls++

		if menuCalls == 1 {
			// First visit: pick the first entry.
			fmt.Println("Menu: picking entry")
			return &braciole.PickerResult{Index: 0, Action: braciole.PickerActionChoice}, nil
		}
		// Second visit: restored to the remembered page, leave the flow.
		fmt.Printf("Menu: restored to page %d, exiting\n", resumePage)
		return &braciole.PickerResult{Index: resumePage, Action: braciole.PickerActionLeftMost}, nil
	})

	r.Register(ScreenConfirm, func(input any, resumePage int) (*braciole.PickerResult, error) {
		entry := input.(string)
		fmt.Printf("Confirm: showing %q, going back\n", entry)
		return &braciole.PickerResult{Index: 0, Action: braciole.PickerActionLeftMost}, nil
	})

	// Define all transitions in one place
	r.OnTransition(func(from router.Screen, res *braciole.PickerResult, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenMenu:
			if res.Action == braciole.PickerActionChoice {
				// Forward: remember the menu page, go to confirm.
				stack.Push(from, nil, res.Index)
				return ScreenConfirm, entries[res.Index]
			}
			return router.ScreenExit, nil

		case ScreenConfirm:
			if res.Action == braciole.PickerActionLeftMost {
				return router.ScreenBack, nil
			}
			return router.ScreenExit, nil
		}
		return router.ScreenExit, nil
	})

	_ = r.Run(ScreenMenu, nil)

	// Output:
	// Menu: picking entry
	// Confirm: showing "Wipe device", going back
	// Menu: restored to page 0, exiting
}

// Example_cancellation demonstrates the built-in cancel-as-back handling:
// a cancelled screen pops one level instead of failing the flow.
func Example_cancellation() {
	r := router.New()

	visits := 0

	r.Register(ScreenMenu, func(input any, resumePage int) (*braciole.PickerResult, error) {
		visits++

		if visits == 1 {
			fmt.Println("First visit: picking entry on page 2")
			return &braciole.PickerResult{Index: 2, Action: braciole.PickerActionChoice}, nil
		}

		// Back from the cancelled confirm screen.
		fmt.Printf("Returned: page=%d\n", resumePage)
		return &braciole.PickerResult{Index: resumePage, Action: braciole.PickerActionLeftMost}, nil
	})

	r.Register(ScreenConfirm, func(input any, resumePage int) (*braciole.PickerResult, error) {
		fmt.Println("Confirm: window closed")
		return nil, braciole.ErrCancelled
	})

	r.OnTransition(func(from router.Screen, res *braciole.PickerResult, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenMenu:
			if res.Action == braciole.PickerActionChoice {
				stack.Push(from, nil, res.Index)
				return ScreenConfirm, "Set passphrase"
			}
			return router.ScreenExit, nil
		}
		return router.ScreenExit, nil
	})

	_ = r.Run(ScreenMenu, nil)

	// Output:
	// First visit: picking entry on page 2
	// Confirm: window closed
	// Returned: page=2
}
