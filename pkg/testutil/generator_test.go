package testutil

import (
	"testing"

	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

func TestGeneratorDeterministic(t *testing.T) {
	a := NewDefault().Tickets(20)
	b := NewDefault().Tickets(20)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("ticket %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGeneratorUsesColorMix(t *testing.T) {
	g := New(GeneratorConfig{Seed: 7, ColorMix: []palette.Name{palette.LightBlue}})
	for _, tk := range g.Tickets(10) {
		if tk.Color != string(palette.LightBlue) {
			t.Errorf("ticket %s has color %q", tk.ID, tk.Color)
		}
		if err := tk.Validate(); err != nil {
			t.Errorf("generated ticket invalid: %v", err)
		}
	}
}

func TestMemoryStoreSeeds(t *testing.T) {
	tickets := NewDefault().Tickets(3)
	s, err := MemoryStore(tickets...)
	if err != nil {
		t.Fatalf("MemoryStore: %v", err)
	}
	AssertTicketCount(t, s, 3)
	AssertStored(t, s, tickets[0].ID, tickets[0].Description, tickets[0].Color)
	AssertNotStored(t, s, "missing")

	listed, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	AssertSameTickets(t, listed, tickets)
}
