package board

import (
	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// Kind is the kind of user interaction.
type Kind int

const (
	Click Kind = iota
	DoubleClick
	Input
	Submit
	Dismiss
)

func (k Kind) String() string {
	switch k {
	case Click:
		return "click"
	case DoubleClick:
		return "dblclick"
	case Input:
		return "input"
	case Submit:
		return "submit"
	case Dismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// Target names the control an event landed on. The values follow the class
// names of the browser board's markup.
type Target string

const (
	TargetAddControl        Target = "add-action"
	TargetRemoveToggle      Target = "remove-action"
	TargetCreateModal       Target = "modal-container"
	TargetModalInput        Target = "modal-input"
	TargetCreateSwatch      Target = "color-modal"
	TargetRecolorOverlay    Target = "priority-change-container"
	TargetRecolorSwatch     Target = "priority-color"
	TargetTicket            Target = "ticket-container"
	TargetTicketID          Target = "ticket-id"
	TargetTicketDescription Target = "ticket-description"
	TargetTicketLock        Target = "ticket-lock"
	TargetFilter            Target = "color-filter"
)

// Event is one user interaction.
type Event struct {
	Kind     Kind
	Target   Target
	TicketID string       // for ticket targets
	Color    palette.Name // for swatches and filters
	Text     string       // for Input events
}

type route struct {
	kind   Kind
	target Target
}

type handler func(*Board, Event) error

// defaultRoutes is the board's event delegation table. Pairs not listed
// here are ignored: in particular a double-click on the lock control never
// opens the recolor overlay, and a click on a ticket's description or id
// never removes it.
func defaultRoutes() map[route]handler {
	return map[route]handler{
		{Click, TargetAddControl}:   (*Board).onAddClick,
		{Click, TargetRemoveToggle}: (*Board).onRemoveToggle,

		{Click, TargetCreateSwatch}:  (*Board).onCreateSwatch,
		{Input, TargetModalInput}:    (*Board).onCreateInput,
		{Submit, TargetModalInput}:   (*Board).onCreateSubmit,
		{Dismiss, TargetCreateModal}: (*Board).onCreateDismiss,

		{Click, TargetTicket}:            (*Board).onTicketClick,
		{Click, TargetTicketLock}:        (*Board).onLockClick,
		{Input, TargetTicketDescription}: (*Board).onDescriptionInput,

		{DoubleClick, TargetTicket}:            (*Board).onTicketDoubleClick,
		{DoubleClick, TargetTicketID}:          (*Board).onTicketDoubleClick,
		{DoubleClick, TargetTicketDescription}: (*Board).onTicketDoubleClick,
		{Input, TargetRecolorSwatch}:           (*Board).onRecolorHover,
		{Click, TargetRecolorSwatch}:           (*Board).onRecolorSwatch,
		{Dismiss, TargetRecolorOverlay}:        (*Board).onRecolorDismiss,

		{Click, TargetFilter}: (*Board).onFilterClick,
	}
}

// Dispatch routes an event to its handler. Events without a route are
// ignored and return nil.
func (b *Board) Dispatch(ev Event) error {
	h, ok := b.routes[route{ev.Kind, ev.Target}]
	if !ok {
		b.logger.Debug().Str("kind", ev.Kind.String()).Str("target", string(ev.Target)).Msg("unrouted event")
		return nil
	}
	if err := h(b, ev); err != nil {
		b.logger.Debug().Err(err).Str("kind", ev.Kind.String()).Str("target", string(ev.Target)).
			Str("ticket", ev.TicketID).Msg("event rejected")
		return err
	}
	return nil
}

func (b *Board) onAddClick(Event) error {
	b.ToggleCreate()
	return nil
}

func (b *Board) onRemoveToggle(Event) error {
	b.ToggleRemovalMode()
	return nil
}

func (b *Board) onCreateSwatch(ev Event) error {
	return b.SelectCreateColor(ev.Color)
}

func (b *Board) onCreateInput(ev Event) error {
	b.SetCreateText(ev.Text)
	return nil
}

func (b *Board) onCreateSubmit(Event) error {
	_, err := b.SubmitCreate()
	return err
}

func (b *Board) onCreateDismiss(Event) error {
	b.CloseCreate()
	return nil
}

func (b *Board) onTicketClick(ev Event) error {
	_, err := b.ClickTicket(ev.TicketID)
	return err
}

func (b *Board) onLockClick(ev Event) error {
	_, err := b.ToggleLock(ev.TicketID)
	return err
}

func (b *Board) onDescriptionInput(ev Event) error {
	return b.EditDescription(ev.TicketID, ev.Text)
}

func (b *Board) onTicketDoubleClick(ev Event) error {
	return b.OpenRecolor(ev.TicketID)
}

func (b *Board) onRecolorHover(ev Event) error {
	return b.HoverRecolor(ev.Color)
}

func (b *Board) onRecolorSwatch(ev Event) error {
	return b.SelectRecolor(ev.Color)
}

func (b *Board) onRecolorDismiss(Event) error {
	b.CloseRecolor()
	return nil
}

func (b *Board) onFilterClick(ev Event) error {
	b.ApplyFilter(ev.Color)
	return nil
}
