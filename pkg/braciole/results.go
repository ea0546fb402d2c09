package braciole

// ChoiceMsgKind discriminates the controller's output messages.
type ChoiceMsgKind int

const (
	// ChoiceSelected carries the index of the item the user selected.
	ChoiceSelected ChoiceMsgKind = iota
	// ChoiceLeftMost reports the leftmost side button being triggered at
	// the first page.
	ChoiceLeftMost
	// ChoiceRightMost reports the rightmost side button being triggered at
	// the last page.
	ChoiceRightMost
)

// ChoiceMsg is the controller's message to its owner. At most one message is
// produced per processed event.
type ChoiceMsg struct {
	Kind  ChoiceMsgKind
	Index int // valid for ChoiceSelected
}

// PickerAction represents how a blocking Pick call ended.
type PickerAction int

const (
	PickerActionChoice    PickerAction = iota // an item was selected
	PickerActionLeftMost                      // the leftmost side button fired
	PickerActionRightMost                     // the rightmost side button fired
)

// PickerResult is the return value of Pick.
type PickerResult struct {
	Index  int // index of the selected item; the page index for side button actions
	Action PickerAction
}
