// Package ui is the terminal front-end of the sticky board. It turns key
// presses into board events and draws the board's views and overlays.
package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/vanderheijden86/stickyboard/pkg/board"
	"github.com/vanderheijden86/stickyboard/pkg/config"
	"github.com/vanderheijden86/stickyboard/pkg/debug"
	"github.com/vanderheijden86/stickyboard/pkg/metrics"
	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// Default dimensions until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// Model is the bubbletea model of the board screen.
type Model struct {
	board  *board.Board
	theme  Theme
	logger zerolog.Logger

	width     int
	height    int
	cardWidth int

	focusID  string // ticket under the cursor
	firstRow int    // first grid row on screen

	create     CreateModal
	editor     textarea.Model
	editingID  string // ticket whose description is in the editor
	detail     DetailView
	showDetail bool

	statusMsg     string
	statusIsError bool

	// copy writes to the system clipboard; replaced in tests
	copy func(string) error
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the model's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithTheme replaces the default theme.
func WithTheme(t Theme) Option {
	return func(m *Model) {
		m.theme = t
	}
}

// WithCardWidth sets the card width, clamped to the supported range.
func WithCardWidth(w int) Option {
	return func(m *Model) {
		m.cardWidth = config.ClampCardWidth(w)
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		m.copy = fn
	}
}

// NewModel creates the board screen for an already loaded board.
func NewModel(b *board.Board, opts ...Option) Model {
	m := Model{
		board:     b,
		theme:     DefaultTheme(lipgloss.DefaultRenderer()),
		logger:    zerolog.Nop(),
		width:     defaultWidth,
		height:    defaultHeight,
		cardWidth: config.DefaultCardWidth,
		copy:      clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.create = NewCreateModal(m.theme)
	m.create.SetSize(m.width, m.height)
	m.ensureFocus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.create.SetSize(msg.Width, msg.Height)
		if m.showDetail {
			v, _ := m.board.View(m.detail.ID())
			m.detail = NewDetailView(m.theme, v.ID, v.Description, m.width, m.height)
		}
		m.scrollToFocus()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	if m.board.State().CreateOpen {
		var cmd tea.Cmd
		m.create, cmd = m.create.Update(msg)
		return m, cmd
	}
	if m.editingID != "" {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes a key to the topmost active layer.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if _, ok := m.board.PendingNotice(); ok {
		m.board.DismissNotice()
		return m, nil
	}

	st := m.board.State()
	switch {
	case m.showDetail:
		return m.handleDetailKeys(msg)
	case st.CreateOpen:
		return m.handleCreateKeys(msg)
	case st.RecolorOpen:
		return m.handleRecolorKeys(msg), nil
	case m.editingID != "":
		return m.handleEditorKeys(msg)
	}
	return m.handleBoardKeys(msg)
}

func (m Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	m.statusIsError = false

	kb, ok := boardKeys[msg.String()]
	if !ok {
		return m, nil
	}

	switch kb.action {
	case actQuit:
		return m, tea.Quit
	case actMoveLeft:
		m.moveFocus(-1)
	case actMoveRight:
		m.moveFocus(1)
	case actMoveUp:
		m.moveFocus(-gridColumns(m.width, m.cardWidth))
	case actMoveDown:
		m.moveFocus(gridColumns(m.width, m.cardWidth))
	case actDetail:
		if v, ok := m.focused(); ok {
			m.detail = NewDetailView(m.theme, v.ID, v.Description, m.width, m.height)
			m.showDetail = true
		}
	case actCopy:
		m.copyFocused()
	case actEvent:
		ev, ok := kb.event(m.focusID)
		if !ok {
			return m, nil
		}
		return m.dispatch(ev)
	}
	return m, nil
}

// dispatch hands ev to the board and syncs the screen with the result.
func (m Model) dispatch(ev board.Event) (tea.Model, tea.Cmd) {
	before, _ := m.board.View(ev.TicketID)
	err := m.board.Dispatch(ev)
	if err != nil {
		m.reportError(err)
	}

	switch ev.Target {
	case board.TargetAddControl:
		if m.board.State().CreateOpen {
			m.create.clearRequests()
			cmd := m.create.input.Focus()
			return m, cmd
		}
	case board.TargetRemoveToggle:
		m.statusMsg = ""
	case board.TargetTicket:
		if ev.Kind == board.Click {
			if _, still := m.board.View(ev.TicketID); !still && err == nil {
				m.statusMsg = fmt.Sprintf("Removed %s", ev.TicketID)
			}
		}
	case board.TargetTicketLock:
		after, _ := m.board.View(ev.TicketID)
		if err == nil && before.Lock == board.Locked && after.Lock == board.Unlocked {
			cmd := m.startEditing(after)
			return m, cmd
		}
	}
	m.ensureFocus()
	return m, nil
}

func (m Model) handleCreateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	prevText := m.create.Value()
	prevSwatch, hadSwatch := m.create.Swatch()

	var cmd tea.Cmd
	m.create, cmd = m.create.Update(msg)

	if text := m.create.Value(); text != prevText {
		m.send(board.Event{Kind: board.Input, Target: board.TargetModalInput, Text: text})
	}
	if sw, ok := m.create.Swatch(); ok && (!hadSwatch || sw != prevSwatch) {
		m.send(board.Event{Kind: board.Click, Target: board.TargetCreateSwatch, Color: sw})
	}

	switch {
	case m.create.IsSubmitRequested():
		m.create.clearRequests()
		before := len(m.board.Views())
		if err := m.board.Dispatch(board.Event{Kind: board.Submit, Target: board.TargetModalInput}); err != nil {
			if !errors.Is(err, board.ErrNoColorSelected) {
				m.reportError(err)
			}
			return m, cmd
		}
		if views := m.board.Views(); len(views) > before {
			created := views[len(views)-1]
			m.statusMsg = fmt.Sprintf("Created %s", created.ID)
			m.statusIsError = false
			if !created.Hidden {
				m.focusID = created.ID
			}
		}
		m.create.Reset()
		m.ensureFocus()
	case m.create.IsCancelRequested():
		m.create.clearRequests()
		m.send(board.Event{Kind: board.Dismiss, Target: board.TargetCreateModal})
	}
	return m, cmd
}

func (m Model) handleRecolorKeys(msg tea.KeyMsg) Model {
	st := m.board.State()
	idx := 0
	if i := palette.Index(st.RecolorChoice); i >= 0 {
		idx = i
	}

	key := msg.String()
	switch key {
	case "esc", "q":
		m.send(board.Event{Kind: board.Dismiss, Target: board.TargetRecolorOverlay})
	case "left", "h":
		m.send(board.Event{Kind: board.Input, Target: board.TargetRecolorSwatch, Color: palette.At(idx - 1)})
	case "right", "l", "tab":
		m.send(board.Event{Kind: board.Input, Target: board.TargetRecolorSwatch, Color: palette.At(idx + 1)})
	case "enter", " ":
		m.send(board.Event{Kind: board.Click, Target: board.TargetRecolorSwatch, Color: st.RecolorChoice})
	case "1", "2", "3", "4":
		n := int(key[0] - '1')
		m.send(board.Event{Kind: board.Click, Target: board.TargetRecolorSwatch, Color: palette.At(n)})
	}
	m.ensureFocus()
	return m
}

func (m Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		id := m.editingID
		m.stopEditing()
		// A failed save leaves the ticket unlocked with its edits; space
		// retries the lock.
		if err := m.board.Dispatch(board.Event{Kind: board.Click, Target: board.TargetTicketLock, TicketID: id}); err != nil {
			m.reportError(err)
			m.ensureFocus()
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Saved %s", id)
		m.statusIsError = false
		m.ensureFocus()
		return m, nil
	}

	var cmd tea.Cmd
	prev := m.editor.Value()
	m.editor, cmd = m.editor.Update(msg)
	if text := m.editor.Value(); text != prev {
		m.send(board.Event{Kind: board.Input, Target: board.TargetTicketDescription, TicketID: m.editingID, Text: text})
	}
	return m, cmd
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "o":
		m.showDetail = false
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// send dispatches an event whose failure only needs reporting.
func (m *Model) send(ev board.Event) {
	if err := m.board.Dispatch(ev); err != nil {
		m.reportError(err)
	}
}

func (m *Model) reportError(err error) {
	m.statusMsg = fmt.Sprintf("❌ %v", err)
	m.statusIsError = true
	m.logger.Warn().Err(err).Msg("board operation failed")
}

func (m *Model) startEditing(v board.TicketView) tea.Cmd {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 5000
	ta.SetWidth(cardInnerWidth(m.cardWidth))
	ta.SetHeight(cardBodyLines)
	ta.SetValue(v.Description)
	m.editor = ta
	m.editingID = v.ID
	m.statusMsg = "Editing: esc locks and saves"
	m.statusIsError = false
	return m.editor.Focus()
}

func (m *Model) stopEditing() {
	m.editor.Blur()
	m.editingID = ""
}

func (m *Model) copyFocused() {
	v, ok := m.focused()
	if !ok {
		return
	}
	if err := m.copy(plainText(v.Description)); err != nil {
		m.statusMsg = fmt.Sprintf("❌ Clipboard error: %v", err)
		m.statusIsError = true
		return
	}
	m.statusMsg = fmt.Sprintf("📋 Copied %s to clipboard", v.ID)
	m.statusIsError = false
}

// focused returns the view under the cursor.
func (m Model) focused() (board.TicketView, bool) {
	if m.focusID == "" {
		return board.TicketView{}, false
	}
	v, ok := m.board.View(m.focusID)
	if !ok || v.Hidden {
		return board.TicketView{}, false
	}
	return v, true
}

// ensureFocus keeps the cursor on a visible ticket.
func (m *Model) ensureFocus() {
	visible := m.board.VisibleViews()
	if len(visible) == 0 {
		m.focusID = ""
		m.firstRow = 0
		return
	}
	for _, v := range visible {
		if v.ID == m.focusID {
			m.scrollToFocus()
			return
		}
	}
	m.focusID = visible[0].ID
	m.scrollToFocus()
}

func (m *Model) moveFocus(delta int) {
	visible := m.board.VisibleViews()
	if len(visible) == 0 {
		return
	}
	cur := 0
	for i, v := range visible {
		if v.ID == m.focusID {
			cur = i
			break
		}
	}
	next := cur + delta
	if next < 0 || next >= len(visible) {
		return
	}
	m.focusID = visible[next].ID
	m.scrollToFocus()
}

// scrollToFocus adjusts firstRow so the focused card's row is on screen.
func (m *Model) scrollToFocus() {
	visible := m.board.VisibleViews()
	cols := gridColumns(m.width, m.cardWidth)
	row := 0
	for i, v := range visible {
		if v.ID == m.focusID {
			row = i / cols
			break
		}
	}
	rows := m.gridHeight() / cardOuterHeight()
	if rows < 1 {
		rows = 1
	}
	if row < m.firstRow {
		m.firstRow = row
	} else if row >= m.firstRow+rows {
		m.firstRow = row - rows + 1
	}
}

// gridHeight is the space left for cards below the header and above the
// footer.
func (m Model) gridHeight() int {
	h := m.height - 3
	if h < cardOuterHeight() {
		h = cardOuterHeight()
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	defer metrics.TimerWithCallback(metrics.UIRender, func(d time.Duration) {
		debug.LogTiming("ui.render", d)
	})()

	if n, ok := m.board.PendingNotice(); ok {
		return renderNotice(m.theme, n, m.width, m.height)
	}
	st := m.board.State()
	switch {
	case m.showDetail:
		return m.detail.View()
	case st.CreateOpen:
		return m.create.View()
	case st.RecolorOpen:
		return renderRecolorOverlay(m.theme, st, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	st := m.board.State()
	r := m.theme.Renderer

	title := m.theme.Header.Render("Sticky Board")
	filter := "all"
	if st.Filter != "" {
		filter = string(st.Filter)
	}
	counts := fmt.Sprintf("%d/%d tickets", len(m.board.VisibleViews()), len(m.board.Views()))
	info := r.NewStyle().Foreground(m.theme.Subtext).
		Render(fmt.Sprintf("  filter: %s  %s  ", filter, counts))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, info, RenderRemovalBadge(m.theme, st.RemovalMode))
}

func (m Model) renderBoard() string {
	visible := m.board.VisibleViews()
	height := m.gridHeight()
	if len(visible) == 0 {
		msg := "No tickets. Press a to add one."
		if len(m.board.Views()) > 0 {
			msg = "No tickets match the filter. Press 0 to show all."
		}
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			m.theme.Renderer.NewStyle().Foreground(m.theme.Muted).Render(msg))
	}

	removing := m.board.State().RemovalMode
	cards := make([]string, len(visible))
	for i, v := range visible {
		opts := cardOpts{focused: v.ID == m.focusID, removing: removing}
		if v.ID == m.editingID {
			opts.editor = m.editor.View()
		}
		cards[i] = renderCard(m.theme, v, m.cardWidth, opts)
	}
	grid := renderGrid(cards, gridColumns(m.width, m.cardWidth), m.firstRow, height)
	return lipgloss.PlaceVertical(height, lipgloss.Top, grid)
}

func (m Model) renderFooter() string {
	if m.statusMsg != "" {
		if m.statusIsError {
			return m.theme.Error.Render(m.statusMsg)
		}
		return m.theme.Status.Render(m.statusMsg)
	}
	r := m.theme.Renderer
	keyStyle := r.NewStyle().Foreground(m.theme.Primary).Bold(true)
	labelStyle := r.NewStyle().Foreground(m.theme.Subtext)
	parts := make([]string, len(helpOrder))
	for i, h := range helpOrder {
		parts[i] = keyStyle.Render(h.key) + " " + labelStyle.Render(h.label)
	}
	return r.NewStyle().MaxWidth(m.width).Render(strings.Join(parts, "  "))
}

// Board returns the underlying board.
func (m Model) Board() *board.Board { return m.board }

// FocusedID returns the id of the ticket under the cursor.
func (m Model) FocusedID() string { return m.focusID }

// Editing reports the ticket being edited, if any.
func (m Model) Editing() (string, bool) { return m.editingID, m.editingID != "" }

// ShowingDetail reports whether the detail overlay is open.
func (m Model) ShowingDetail() bool { return m.showDetail }

// Status returns the footer status message and whether it is an error.
func (m Model) Status() (string, bool) { return m.statusMsg, m.statusIsError }
