package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vanderheijden86/stickyboard/pkg/board"
)

// cardBodyLines is the number of description lines a card shows.
const cardBodyLines = 4

// cardGap is the space between cards in a row.
const cardGap = 1

// cardOuterHeight is a card's height including its border.
func cardOuterHeight() int {
	return cardBodyLines + 1 + 2
}

// cardInnerWidth is the text width inside border and padding.
func cardInnerWidth(cardWidth int) int {
	w := cardWidth - 4
	if w < 1 {
		w = 1
	}
	return w
}

type cardOpts struct {
	focused  bool
	removing bool   // removal mode is on
	editor   string // rendered editor replacing the description, if any
}

// cardStyles returns the header and body styles for a card of class.
// While editing, the textarea paints its own surface.
func cardStyles(t Theme, class string, editing bool) (id, text lipgloss.Style) {
	id, text = t.CardID, t.CardText
	if !editing {
		bg := t.CardColor(class)
		id = id.Background(bg)
		text = text.Background(bg)
	}
	return id, text
}

// renderCard draws one sticky note.
func renderCard(t Theme, v board.TicketView, cardWidth int, o cardOpts) string {
	inner := cardInnerWidth(cardWidth)

	idStyle, textStyle := cardStyles(t, v.Class, o.editor != "")

	glyph := v.Lock.Glyph()
	label := truncate(v.ID, inner-runewidth.StringWidth(glyph)-1)
	header := idStyle.Render(padRight(label, inner-runewidth.StringWidth(glyph)) + glyph)

	var body string
	if o.editor != "" {
		body = o.editor
	} else {
		lines := wrapLines(plainText(v.Description), inner, cardBodyLines)
		for len(lines) < cardBodyLines {
			lines = append(lines, "")
		}
		for i := range lines {
			lines[i] = padRight(lines[i], inner)
		}
		body = textStyle.Render(strings.Join(lines, "\n"))
	}

	borderColor := lipgloss.TerminalColor(t.Border)
	border := CardBorder
	if o.focused {
		border = FocusedCardBorder
		borderColor = t.Primary
		if o.removing {
			borderColor = t.Danger
		}
	}

	style := t.Renderer.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(cardWidth - 2)
	if o.editor == "" {
		style = style.Background(t.CardColor(v.Class)).Height(cardBodyLines + 1)
	}
	return style.Render(header + "\n" + body)
}

// gridColumns is how many cards fit side by side in width.
func gridColumns(width, cardWidth int) int {
	cols := (width + cardGap) / (cardWidth + cardGap)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// renderGrid lays cards out in rows and returns only the rows from
// firstRow that fit in height.
func renderGrid(cards []string, cols, firstRow, height int) string {
	if len(cards) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", cardGap)

	var rows []string
	for i := 0; i < len(cards); i += cols {
		end := i + cols
		if end > len(cards) {
			end = len(cards)
		}
		parts := make([]string, 0, 2*(end-i))
		for j, c := range cards[i:end] {
			if j > 0 {
				parts = append(parts, gap)
			}
			parts = append(parts, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	maxRows := height / cardOuterHeight()
	if maxRows < 1 {
		maxRows = 1
	}
	if firstRow > len(rows)-1 {
		firstRow = len(rows) - 1
	}
	if firstRow < 0 {
		firstRow = 0
	}
	end := firstRow + maxRows
	if end > len(rows) {
		end = len(rows)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows[firstRow:end]...)
}
