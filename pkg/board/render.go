package board

// Render builds the view for a stored ticket and appends it to the board.
// The color is resolved through the palette; a color the palette does not
// know is kept as the raw class and logged. Rendering an id that is
// already on the board replaces that view in place.
func (b *Board) Render(id, color, description string) TicketView {
	v := &TicketView{
		ID:          id,
		Description: description,
		Class:       b.classFor(id, color),
		Lock:        Locked,
	}
	v.Hidden = b.hiddenByFilter(v)

	if old, ok := b.index[id]; ok {
		*old = *v
		return *old
	}
	b.views = append(b.views, v)
	b.index[id] = v
	return *v
}

// detach removes a view from the board.
func (b *Board) detach(id string) {
	if _, ok := b.index[id]; !ok {
		return
	}
	delete(b.index, id)
	for i, v := range b.views {
		if v.ID == id {
			b.views = append(b.views[:i], b.views[i+1:]...)
			break
		}
	}
}
