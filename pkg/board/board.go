// Package board is the headless sticky-note board.
//
// A Board owns the rendered ticket views and the interaction state (creation
// modal, removal mode, recolor overlay, active filter) and keeps them in step
// with the ticket store. It knows nothing about terminals: front-ends turn
// user input into Events and hand them to Dispatch, then draw Views and
// State. Every operation runs to completion synchronously and writes the
// store before it touches the views, so a failed write leaves the board as
// it was.
package board

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vanderheijden86/stickyboard/internal/store"
	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// Errors returned by board operations.
var (
	ErrNoColorSelected = errors.New("priority color is not selected")
	ErrUnknownColor    = errors.New("color is not in the palette")
	ErrLocked          = errors.New("ticket is locked")
	ErrNoTicket        = errors.New("ticket is not on the board")
	ErrNoActiveTicket  = errors.New("no ticket is selected for recolor")
	ErrCreateClosed    = errors.New("creation modal is not open")
)

// maxIDAttempts bounds the retry loop in freshID.
const maxIDAttempts = 8

// Board is the controller for one sticky-note board.
type Board struct {
	store  *store.Store
	views  []*TicketView
	index  map[string]*TicketView
	state  State
	notice []Notice
	newID  func() string
	logger zerolog.Logger
	routes map[route]handler
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the board's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Board) {
		b.logger = l
	}
}

// WithIDGenerator replaces the UUID generator, mainly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(b *Board) {
		b.newID = fn
	}
}

// New creates an empty board over s. Call Load to render stored tickets.
func New(s *store.Store, opts ...Option) *Board {
	b := &Board{
		store:  s,
		index:  make(map[string]*TicketView),
		newID:  uuid.NewString,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.routes = defaultRoutes()
	return b
}

// Load discards the current views and renders one view per stored ticket.
func (b *Board) Load() error {
	tickets, err := b.store.List()
	if err != nil {
		return fmt.Errorf("loading board: %w", err)
	}
	b.views = nil
	b.index = make(map[string]*TicketView, len(tickets))
	for _, t := range tickets {
		b.Render(t.ID, t.Color, t.Description)
	}
	b.logger.Info().Int("tickets", len(tickets)).Msg("board loaded")
	return nil
}

// Store returns the backing store.
func (b *Board) Store() *store.Store { return b.store }

// State returns a copy of the interaction state.
func (b *Board) State() State { return b.state }

// Views returns copies of every rendered view in board order.
func (b *Board) Views() []TicketView {
	out := make([]TicketView, len(b.views))
	for i, v := range b.views {
		out[i] = *v
	}
	return out
}

// VisibleViews returns the views not hidden by the active filter.
func (b *Board) VisibleViews() []TicketView {
	out := make([]TicketView, 0, len(b.views))
	for _, v := range b.views {
		if !v.Hidden {
			out = append(out, *v)
		}
	}
	return out
}

// View returns a copy of the view for id.
func (b *Board) View(id string) (TicketView, bool) {
	v, ok := b.index[id]
	if !ok {
		return TicketView{}, false
	}
	return *v, true
}

// Notices returns pending notices, oldest first.
func (b *Board) Notices() []Notice {
	out := make([]Notice, len(b.notice))
	copy(out, b.notice)
	return out
}

// PendingNotice returns the oldest undismissed notice.
func (b *Board) PendingNotice() (Notice, bool) {
	if len(b.notice) == 0 {
		return Notice{}, false
	}
	return b.notice[0], true
}

// DismissNotice drops the oldest notice.
func (b *Board) DismissNotice() {
	if len(b.notice) > 0 {
		b.notice = b.notice[1:]
	}
}

func (b *Board) notify(text string, isErr bool) {
	b.notice = append(b.notice, Notice{Text: text, IsError: isErr})
}

func (b *Board) lookup(id string) (*TicketView, error) {
	v, ok := b.index[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNoTicket)
	}
	return v, nil
}

// freshID draws identifiers until one is not already stored.
func (b *Board) freshID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := b.newID()
		if id == "" {
			continue
		}
		exists, err := b.store.Exists(id)
		if err != nil {
			return "", fmt.Errorf("checking id %s: %w", id, err)
		}
		if !exists {
			return id, nil
		}
		b.logger.Warn().Str("id", id).Msg("generated id collides with a stored ticket, retrying")
	}
	return "", fmt.Errorf("could not generate a fresh ticket id after %d attempts", maxIDAttempts)
}

// classFor resolves a stored color to the class a view carries. Unknown
// colors keep their raw value so nothing is silently rewritten, and are
// reported.
func (b *Board) classFor(id, color string) string {
	if name, ok := palette.Resolve(color); ok {
		return string(name)
	}
	b.logger.Warn().Str("id", id).Str("color", color).Msg("ticket color is not in the palette")
	return color
}
