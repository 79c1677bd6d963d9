package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/stickyboard/pkg/board"
	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// renderRecolorOverlay draws the priority swatches with the cursor on the
// current choice.
func renderRecolorOverlay(t Theme, st board.State, width, height int) string {
	r := t.Renderer

	var content strings.Builder
	content.WriteString(r.NewStyle().Bold(true).Foreground(t.Primary).
		Render("Change priority: " + st.ActiveTicket))
	content.WriteString("\n\n")
	content.WriteString(RenderSwatchRow(t, palette.Index(st.RecolorChoice)))
	content.WriteString("\n")

	names := palette.Names()
	labels := make([]string, len(names))
	for i, n := range names {
		labels[i] = fmt.Sprintf("%d %s", i+1, n)
	}
	content.WriteString(r.NewStyle().Foreground(t.Subtext).Render(strings.Join(labels, "  ")))
	content.WriteString("\n\n")
	content.WriteString(r.NewStyle().Foreground(t.Subtext).Italic(true).
		Render("[←/→] Move   [Enter] Apply   [1-4] Pick   [Esc] Cancel"))

	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Render(content.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderNotice draws a blocking notice box.
func renderNotice(t Theme, n board.Notice, width, height int) string {
	r := t.Renderer
	border := t.Primary
	textStyle := r.NewStyle().Bold(true)
	if n.IsError {
		border = t.Danger
		textStyle = t.Error
	}
	body := textStyle.Render(n.Text) + "\n\n" +
		r.NewStyle().Foreground(t.Subtext).Italic(true).Render("press any key")

	box := r.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Padding(1, 3).
		Align(lipgloss.Center).
		Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// DetailView shows a ticket's full description rendered as markdown.
type DetailView struct {
	id       string
	viewport viewport.Model
	theme    Theme
	width    int
	height   int
}

// NewDetailView renders description for display in a scrollable pane.
func NewDetailView(theme Theme, id, description string, width, height int) DetailView {
	innerW, innerH := detailInnerSize(width, height)

	body := toMarkdown(description)
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(innerW),
	)
	if err == nil {
		if out, rerr := md.Render(body); rerr == nil {
			body = out
		}
	}

	vp := viewport.New(innerW, innerH-1)
	vp.SetContent(body)

	return DetailView{
		id:       id,
		viewport: vp,
		theme:    theme,
		width:    width,
		height:   height,
	}
}

func detailInnerSize(width, height int) (int, int) {
	w := width - 12
	if w < 20 {
		w = 20
	}
	if w > 80 {
		w = 80
	}
	h := height - 8
	if h < 3 {
		h = 3
	}
	return w, h
}

// Update scrolls the pane.
func (d DetailView) Update(msg tea.Msg) (DetailView, tea.Cmd) {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// ID returns the ticket shown.
func (d DetailView) ID() string { return d.id }

// View renders the pane.
func (d DetailView) View() string {
	r := d.theme.Renderer
	title := r.NewStyle().Bold(true).Foreground(d.theme.Primary).Render(d.id)
	hint := r.NewStyle().Foreground(d.theme.Subtext).Italic(true).Render("[↑/↓] Scroll   [Esc] Close")
	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.theme.Primary).
		Padding(0, 1).
		Render(title + "\n" + RenderDivider(d.theme, d.viewport.Width) + "\n" + d.viewport.View() + "\n" + hint)
	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, box)
}
