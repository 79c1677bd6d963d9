package board

import (
	"fmt"
)

// Notices raised when removal mode changes.
const (
	RemovalOnNotice  = "Ticket removal mode activated"
	RemovalOffNotice = "Ticket removal mode deactivated"
)

// ToggleRemovalMode flips removal mode and raises a notice.
func (b *Board) ToggleRemovalMode() bool {
	b.state.RemovalMode = !b.state.RemovalMode
	if b.state.RemovalMode {
		b.notify(RemovalOnNotice, false)
	} else {
		b.notify(RemovalOffNotice, false)
	}
	return b.state.RemovalMode
}

// ClickTicket handles a click on a ticket's outer region. In removal mode
// the ticket is deleted from the store and the board; otherwise nothing
// happens. It reports whether the ticket was removed.
func (b *Board) ClickTicket(id string) (bool, error) {
	if _, err := b.lookup(id); err != nil {
		return false, err
	}
	if !b.state.RemovalMode {
		return false, nil
	}
	if err := b.store.Remove(id); err != nil {
		return false, fmt.Errorf("removing ticket: %w", err)
	}
	b.detach(id)
	if b.state.ActiveTicket == id {
		b.CloseRecolor()
	}
	b.logger.Info().Str("id", id).Msg("ticket removed")
	return true, nil
}
