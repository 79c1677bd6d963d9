package board

import (
	"fmt"

	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// NoColorNotice is shown when a ticket is submitted without a color.
const NoColorNotice = "Priority color is not selected"

// ToggleCreate shows or hides the creation modal.
func (b *Board) ToggleCreate() {
	b.state.CreateOpen = !b.state.CreateOpen
}

// CloseCreate hides the creation modal, keeping its text and swatch.
func (b *Board) CloseCreate() {
	b.state.CreateOpen = false
}

// SelectCreateColor makes c the single active swatch of the creation modal.
func (b *Board) SelectCreateColor(c palette.Name) error {
	if !palette.IsKnown(c) {
		return fmt.Errorf("%q: %w", c, ErrUnknownColor)
	}
	b.state.CreateColor = c
	b.state.ColorSelected = true
	return nil
}

// SetCreateText sets the creation modal's input text.
func (b *Board) SetCreateText(text string) {
	b.state.CreateText = text
}

// SubmitCreate creates a ticket from the modal's text and active swatch.
//
// While the modal is hidden it returns ErrCreateClosed. Without a selected color
// nothing is created, a notice is raised and the modal stays open. On
// success the ticket is stored, rendered, the modal is hidden and its input
// and swatch are reset.
func (b *Board) SubmitCreate() (TicketView, error) {
	if !b.state.CreateOpen {
		return TicketView{}, ErrCreateClosed
	}
	if !b.state.ColorSelected {
		b.notify(NoColorNotice, true)
		return TicketView{}, ErrNoColorSelected
	}

	id, err := b.freshID()
	if err != nil {
		return TicketView{}, err
	}
	color := string(b.state.CreateColor)
	description := b.state.CreateText
	if err := b.store.Create(id, description, color); err != nil {
		return TicketView{}, fmt.Errorf("creating ticket: %w", err)
	}
	v := b.Render(id, color, description)

	b.state.CreateOpen = false
	b.state.CreateText = ""
	b.state.CreateColor = ""
	b.state.ColorSelected = false
	b.logger.Info().Str("id", id).Str("color", color).Msg("ticket created")
	return v, nil
}
