package board

import (
	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// LockState is the editability of a ticket's description.
type LockState int

const (
	Locked LockState = iota
	Unlocked
)

// String returns "locked" or "unlocked".
func (s LockState) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}

// Glyph is the lock control icon for the state.
func (s LockState) Glyph() string {
	if s == Unlocked {
		return "🔓"
	}
	return "🔒"
}

// TicketView is the rendered form of a stored ticket.
type TicketView struct {
	ID          string
	Description string
	Class       string // canonical color name, or the raw stored value if unknown
	Lock        LockState
	Hidden      bool

	// description when the ticket was last unlocked
	unlockedFrom string
}

// Editable reports whether the description may be changed.
func (v TicketView) Editable() bool {
	return v.Lock == Unlocked
}

// KnownColor reports whether the view's class is a palette color.
func (v TicketView) KnownColor() bool {
	return palette.IsKnown(palette.Name(v.Class))
}

// State is the board's interaction state. Nothing here is persisted.
type State struct {
	// Creation modal.
	CreateOpen    bool
	CreateText    string
	CreateColor   palette.Name // active swatch, valid when ColorSelected
	ColorSelected bool

	// Removal mode.
	RemovalMode bool

	// Recolor overlay.
	RecolorOpen   bool
	RecolorChoice palette.Name // swatch under the cursor
	ActiveTicket  string       // ticket the recolor applies to

	// Filter token; empty shows every ticket.
	Filter palette.Name
}

// Notice is a message the front-end must show and have acknowledged.
type Notice struct {
	Text    string
	IsError bool
}
