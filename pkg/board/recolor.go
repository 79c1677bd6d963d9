package board

import (
	"fmt"

	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// OpenRecolor shows the recolor overlay for a ticket and makes it the
// active target. The overlay cursor starts on the ticket's current color.
func (b *Board) OpenRecolor(id string) error {
	v, err := b.lookup(id)
	if err != nil {
		return err
	}
	b.state.RecolorOpen = true
	b.state.ActiveTicket = id
	if name, ok := palette.Resolve(v.Class); ok {
		b.state.RecolorChoice = name
	} else {
		b.state.RecolorChoice = palette.At(0)
	}
	return nil
}

// HoverRecolor moves the overlay cursor.
func (b *Board) HoverRecolor(c palette.Name) error {
	if !b.state.RecolorOpen {
		return nil
	}
	if !palette.IsKnown(c) {
		return fmt.Errorf("%q: %w", c, ErrUnknownColor)
	}
	b.state.RecolorChoice = c
	return nil
}

// SelectRecolor assigns c to the active ticket: the store gets the new
// color with the ticket's stored description, then the view's class is
// replaced and the overlay closes. Colors outside the palette are rejected
// without any change.
func (b *Board) SelectRecolor(c palette.Name) error {
	if !b.state.RecolorOpen || b.state.ActiveTicket == "" {
		return ErrNoActiveTicket
	}
	if !palette.IsKnown(c) {
		b.logger.Warn().Str("color", string(c)).Msg("recolor rejected: color not in palette")
		return fmt.Errorf("%q: %w", c, ErrUnknownColor)
	}

	id := b.state.ActiveTicket
	v, err := b.lookup(id)
	if err != nil {
		b.CloseRecolor()
		return err
	}
	stored, err := b.store.Get(id)
	if err != nil {
		return fmt.Errorf("recolor: %w", err)
	}
	if err := b.store.Update(id, stored.Description, string(c)); err != nil {
		return fmt.Errorf("recolor: %w", err)
	}

	v.Class = string(c)
	v.Hidden = b.hiddenByFilter(v)
	b.CloseRecolor()
	b.logger.Debug().Str("id", id).Str("color", string(c)).Msg("ticket recolored")
	return nil
}

// CloseRecolor hides the overlay and clears the active target.
func (b *Board) CloseRecolor() {
	b.state.RecolorOpen = false
	b.state.ActiveTicket = ""
	b.state.RecolorChoice = ""
}
