package board

import (
	"fmt"

	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// ToggleLock activates a ticket's lock control and returns the new state.
//
// Unlocking remembers the current description. Locking again writes the
// description to the store if it changed since the unlock, paired with the
// color the store already holds for the ticket (rendered rgb() colors are
// written back as their palette name). If that write fails the ticket stays
// unlocked with its edits intact.
func (b *Board) ToggleLock(id string) (LockState, error) {
	v, err := b.lookup(id)
	if err != nil {
		return Locked, err
	}

	if v.Lock == Locked {
		v.Lock = Unlocked
		v.unlockedFrom = v.Description
		return Unlocked, nil
	}

	if v.Description != v.unlockedFrom {
		stored, err := b.store.Get(id)
		if err != nil {
			return Unlocked, fmt.Errorf("saving description: %w", err)
		}
		if err := b.store.Update(id, v.Description, palette.Canonical(stored.Color)); err != nil {
			return Unlocked, fmt.Errorf("saving description: %w", err)
		}
		b.logger.Debug().Str("id", id).Msg("description saved on lock")
	}
	v.Lock = Locked
	v.unlockedFrom = ""
	return Locked, nil
}

// EditDescription replaces the description of an unlocked ticket. The
// change stays on the board until the ticket is locked again.
func (b *Board) EditDescription(id, text string) error {
	v, err := b.lookup(id)
	if err != nil {
		return err
	}
	if v.Lock != Unlocked {
		return fmt.Errorf("%s: %w", id, ErrLocked)
	}
	v.Description = text
	return nil
}
