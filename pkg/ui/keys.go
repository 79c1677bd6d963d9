package ui

import (
	"github.com/vanderheijden86/stickyboard/pkg/board"
	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// action is what a key does on the board screen.
type action int

const (
	actNone action = iota
	actEvent       // dispatch a board event built by keyBinding.event
	actMoveLeft
	actMoveRight
	actMoveUp
	actMoveDown
	actDetail
	actCopy
	actQuit
)

// keyBinding maps one key to an action. For actEvent, event builds the
// board event from the focused ticket id ("" when nothing is focused).
type keyBinding struct {
	action action
	event  func(focused string) (board.Event, bool)
}

func global(kind board.Kind, target board.Target) func(string) (board.Event, bool) {
	return func(string) (board.Event, bool) {
		return board.Event{Kind: kind, Target: target}, true
	}
}

func onTicket(kind board.Kind, target board.Target) func(string) (board.Event, bool) {
	return func(id string) (board.Event, bool) {
		if id == "" {
			return board.Event{}, false
		}
		return board.Event{Kind: kind, Target: target, TicketID: id}, true
	}
}

func filter(token palette.Name) func(string) (board.Event, bool) {
	return func(string) (board.Event, bool) {
		return board.Event{Kind: board.Click, Target: board.TargetFilter, Color: token}, true
	}
}

// boardKeys is the key map of the board screen.
var boardKeys = map[string]keyBinding{
	"a":     {actEvent, global(board.Click, board.TargetAddControl)},
	"x":     {actEvent, global(board.Click, board.TargetRemoveToggle)},
	"enter": {actEvent, onTicket(board.Click, board.TargetTicket)},
	" ":     {actEvent, onTicket(board.Click, board.TargetTicketLock)},
	"c":     {actEvent, onTicket(board.DoubleClick, board.TargetTicket)},

	"0": {actEvent, filter("")},
	"1": {actEvent, filter(palette.At(0))},
	"2": {actEvent, filter(palette.At(1))},
	"3": {actEvent, filter(palette.At(2))},
	"4": {actEvent, filter(palette.At(3))},

	"left":  {action: actMoveLeft},
	"h":     {action: actMoveLeft},
	"right": {action: actMoveRight},
	"l":     {action: actMoveRight},
	"up":    {action: actMoveUp},
	"k":     {action: actMoveUp},
	"down":  {action: actMoveDown},
	"j":     {action: actMoveDown},

	"o":      {action: actDetail},
	"y":      {action: actCopy},
	"q":      {action: actQuit},
	"ctrl+c": {action: actQuit},
}

// helpOrder lists the keys shown in the footer.
var helpOrder = []struct{ key, label string }{
	{"a", "add"},
	{"x", "removal"},
	{"space", "lock"},
	{"c", "color"},
	{"enter", "click"},
	{"0-4", "filter"},
	{"o", "detail"},
	{"y", "copy"},
	{"q", "quit"},
}
