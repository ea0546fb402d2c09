// Package router chains blocking picker screens into navigable flows.
//
// On a two-button device every screen is one blocking Pick call that
// returns a single PickerResult. The router strings those calls together:
// screens are registered with explicit input types, a centralized
// transition function holds all forward-routing logic, and back navigation
// is built into the router itself — a screen that returns
// braciole.ErrCancelled (or a transition returning ScreenBack) pops the
// navigation stack and reruns the previous screen at the page the user
// left it on.
//
// # Basic Usage
//
//	// Define screen identifiers as typed constants
//	const (
//	    ScreenMenu Screen = iota
//	    ScreenConfirm
//	)
//
//	r := router.New()
//
//	r.Register(ScreenMenu, func(input any, resumePage int) (*braciole.PickerResult, error) {
//	    entries := input.([]string)
//	    return braciole.Pick(braciole.PickerSettings{
//	        InitialIndex: resumePage,
//	        Leftmost:     &braciole.SideButtonConfig{Label: "EXIT"},
//	    }, braciole.NewTextChoiceItems(entries, braciole.ContentFont()))
//	})
//
//	r.Register(ScreenConfirm, func(input any, resumePage int) (*braciole.PickerResult, error) {
//	    entry := input.(string)
//	    return braciole.Pick(braciole.PickerSettings{
//	        SelectLabel: "CONFIRM",
//	        Leftmost:    &braciole.SideButtonConfig{Label: "BACK"},
//	    }, braciole.NewTextChoiceItems([]string{entry}, braciole.ContentFont()))
//	})
//
//	r.OnTransition(func(from router.Screen, res *braciole.PickerResult, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenMenu:
//	        if res.Action == braciole.PickerActionChoice {
//	            // Push the menu so the flow can come back to this page.
//	            stack.Push(from, entries, res.Index)
//	            return ScreenConfirm, entries[res.Index]
//	        }
//	        return router.ScreenExit, nil
//	    case ScreenConfirm:
//	        if res.Action == braciole.PickerActionLeftMost {
//	            return router.ScreenBack, nil
//	        }
//	        return router.ScreenExit, nil
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	err := r.Run(ScreenMenu, entries)
//
// # Back navigation and cancellation
//
// The stack remembers each pushed screen together with the page index its
// picker was on, so navigating back resumes the list where the user left
// it. Cancellation composes with this: a cancelled screen pops one level
// instead of failing the flow, and only cancelling with an empty stack
// surfaces braciole.ErrCancelled to the Run caller.
package router
