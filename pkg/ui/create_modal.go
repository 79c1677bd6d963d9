package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// CreateModal is the ticket creation dialog: a text input and a row of
// palette swatches. It only collects input; the parent forwards changes to
// the board and acts on the submit and cancel flags.
type CreateModal struct {
	input  textinput.Model
	swatch int // index into the palette, -1 when none is active
	width  int
	height int
	theme  Theme

	submitRequested bool
	cancelRequested bool
}

// NewCreateModal creates an empty creation modal with no active swatch
func NewCreateModal(theme Theme) CreateModal {
	ti := textinput.New()
	ti.Placeholder = "Ticket description"
	ti.CharLimit = 2000
	ti.Width = 40
	ti.Focus()

	return CreateModal{
		input:  ti,
		swatch: -1,
		theme:  theme,
	}
}

// Update handles input for the creation modal
func (m CreateModal) Update(msg tea.Msg) (CreateModal, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	n := len(palette.Names())
	switch keyMsg.String() {
	case "enter":
		m.submitRequested = true
		return m, nil
	case "esc":
		m.cancelRequested = true
		return m, nil
	case "tab":
		m.swatch = (m.swatch + 1) % n
		return m, nil
	case "shift+tab":
		if m.swatch <= 0 {
			m.swatch = n - 1
		} else {
			m.swatch--
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the creation modal
func (m CreateModal) View() string {
	r := m.theme.Renderer

	boxWidth := m.width - 10
	if boxWidth < 50 {
		boxWidth = 50
	}
	if boxWidth > 70 {
		boxWidth = 70
	}

	headerStyle := r.NewStyle().
		Bold(true).
		Foreground(m.theme.Primary)
	labelStyle := r.NewStyle().
		Foreground(m.theme.Secondary)
	subtextStyle := r.NewStyle().
		Foreground(m.theme.Subtext).
		Italic(true)

	var content strings.Builder
	content.WriteString(headerStyle.Render("New Ticket"))
	content.WriteString("\n\n")
	content.WriteString(m.input.View())
	content.WriteString("\n\n")
	content.WriteString(labelStyle.Render("Priority: "))
	content.WriteString(RenderSwatchRow(m.theme, m.swatch))
	if name, ok := m.Swatch(); ok {
		content.WriteString("  ")
		content.WriteString(labelStyle.Render(string(name)))
	}
	content.WriteString("\n\n")
	content.WriteString(subtextStyle.Render("[Tab] Color   [Enter] Create   [Esc] Close"))

	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Primary).
		Padding(1, 2).
		Width(boxWidth).
		Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// SetSize sets the modal dimensions
func (m *CreateModal) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Value returns the input text.
func (m CreateModal) Value() string {
	return m.input.Value()
}

// Swatch returns the active swatch color, if any.
func (m CreateModal) Swatch() (palette.Name, bool) {
	if m.swatch < 0 {
		return "", false
	}
	return palette.At(m.swatch), true
}

// IsSubmitRequested returns true if enter was pressed
func (m CreateModal) IsSubmitRequested() bool {
	return m.submitRequested
}

// IsCancelRequested returns true if esc was pressed
func (m CreateModal) IsCancelRequested() bool {
	return m.cancelRequested
}

// clearRequests resets the submit and cancel flags.
func (m *CreateModal) clearRequests() {
	m.submitRequested = false
	m.cancelRequested = false
}

// Reset empties the input and deselects the swatch.
func (m *CreateModal) Reset() {
	m.input.SetValue("")
	m.swatch = -1
	m.clearRequests()
}
