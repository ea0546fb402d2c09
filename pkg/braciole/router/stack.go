package router

// StackEntry is one remembered screen: its identifier, the input it was
// called with, and the page index the user was on when the flow navigated
// away. Rerunning the entry with its page restores the picker exactly where
// it was left.
type StackEntry struct {
	Screen Screen
	Input  any
	Page   int
}

// Stack is the navigation history for back navigation. Transition functions
// push the completed screen before moving forward; the router pops when a
// screen cancels or the transition returns ScreenBack.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push remembers a screen for back navigation. The page is usually the
// completing picker result's Index.
func (s *Stack) Push(screen Screen, input any, page int) {
	s.entries = append(s.entries, StackEntry{
		Screen: screen,
		Input:  input,
		Page:   page,
	})
}

// Pop removes and returns the most recent entry. The second return value
// is false when the stack is empty.
func (s *Stack) Pop() (StackEntry, bool) {
	if len(s.entries) == 0 {
		return StackEntry{}, false
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return entry, true
}

// Peek returns the most recent entry without removing it. The second
// return value is false when the stack is empty.
func (s *Stack) Peek() (StackEntry, bool) {
	if len(s.entries) == 0 {
		return StackEntry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
