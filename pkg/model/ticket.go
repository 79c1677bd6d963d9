package model

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

// Ticket is a single sticky note.
type Ticket struct {
	ID          string
	Description string // HTML fragment as typed or pasted by the user
	Color       string // canonical palette name; legacy records may hold rgb() strings
}

// Record is the persisted value stored under a ticket's id. The field names
// match what the browser version of the board wrote to localStorage, so
// stores can be moved between the two.
type Record struct {
	Description     string `json:"ticketDescription"`
	BackgroundColor string `json:"ticketBackgroundColor"`
}

// ErrEmptyID is returned when a ticket has no identifier.
var ErrEmptyID = errors.New("ticket id is empty")

// Validate checks the structural invariants of a ticket.
func (t Ticket) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(t.Color) == "" {
		return fmt.Errorf("ticket %s: background color is empty", t.ID)
	}
	return nil
}

// ColorName resolves the ticket's stored color through the palette.
func (t Ticket) ColorName() (palette.Name, bool) {
	return palette.Resolve(t.Color)
}

// Record returns the persisted form of the ticket.
func (t Ticket) Record() Record {
	return Record{Description: t.Description, BackgroundColor: t.Color}
}

// FromRecord builds a ticket from its id and persisted record.
func FromRecord(id string, r Record) Ticket {
	return Ticket{ID: id, Description: r.Description, Color: r.BackgroundColor}
}

// EncodeRecord serializes a record for storage.
func EncodeRecord(r Record) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	return data, nil
}

// MergeRecord overlays r onto an existing stored value, keeping fields
// other writers added. A value that is not a JSON object is replaced.
func MergeRecord(existing []byte, r Record) ([]byte, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(existing, &fields); err != nil || fields == nil {
		return EncodeRecord(r)
	}
	desc, err := json.Marshal(r.Description)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	color, err := json.Marshal(r.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	fields["ticketDescription"] = desc
	fields["ticketBackgroundColor"] = color

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	return data, nil
}

// DecodeRecord parses a stored record. Unknown fields are ignored.
func DecodeRecord(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("decoding record: %w", err)
	}
	return r, nil
}
