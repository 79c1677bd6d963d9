package testutil

import (
	"errors"
	"sort"
	"testing"

	"github.com/vanderheijden86/stickyboard/internal/store"
	"github.com/vanderheijden86/stickyboard/pkg/model"
)

// AssertTicketCount verifies the number of stored tickets.
func AssertTicketCount(t *testing.T, s *store.Store, expected int) {
	t.Helper()
	tickets, err := s.List()
	if err != nil {
		t.Fatalf("listing store: %v", err)
	}
	if len(tickets) != expected {
		t.Errorf("expected %d stored tickets, got %d", expected, len(tickets))
	}
}

// AssertStored verifies a ticket's persisted description and color.
func AssertStored(t *testing.T, s *store.Store, id, description, color string) {
	t.Helper()
	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("ticket %s: %v", id, err)
	}
	if got.Description != description {
		t.Errorf("ticket %s: description = %q, want %q", id, got.Description, description)
	}
	if got.Color != color {
		t.Errorf("ticket %s: color = %q, want %q", id, got.Color, color)
	}
}

// AssertNotStored verifies a ticket is absent from the store.
func AssertNotStored(t *testing.T, s *store.Store, id string) {
	t.Helper()
	if _, err := s.Get(id); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("ticket %s: expected ErrNotFound, got %v", id, err)
	}
}

// AssertSameTickets compares two ticket sets ignoring order.
func AssertSameTickets(t *testing.T, got, want []model.Ticket) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d tickets, got %d", len(want), len(got))
	}
	g := sortedTickets(got)
	w := sortedTickets(want)
	for i := range g {
		if g[i] != w[i] {
			t.Errorf("ticket %d: got %+v, want %+v", i, g[i], w[i])
		}
	}
}

func sortedTickets(in []model.Ticket) []model.Ticket {
	out := make([]model.Ticket, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
