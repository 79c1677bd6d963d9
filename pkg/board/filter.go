package board

import (
	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// ApplyFilter shows only tickets whose class equals token, or every ticket
// when token is empty. The store is not touched. Tickets rendered later
// follow the same filter.
func (b *Board) ApplyFilter(token palette.Name) {
	b.state.Filter = token
	for _, v := range b.views {
		v.Hidden = b.hiddenByFilter(v)
	}
}

func (b *Board) hiddenByFilter(v *TicketView) bool {
	if b.state.Filter == "" {
		return false
	}
	return v.Class != string(b.state.Filter)
}
