package store_test

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/stickyboard/internal/store"
	"github.com/vanderheijden86/stickyboard/pkg/testutil"
)

func TestExportImportRoundTrip(t *testing.T) {
	tickets := testutil.New(testutil.GeneratorConfig{Seed: 3, HTMLRatio: 0.5}).Tickets(8)
	src, err := testutil.MemoryStore(tickets...)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n, err := src.Export(&buf)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != len(tickets) {
		t.Errorf("exported %d, want %d", n, len(tickets))
	}

	// Values are records in string form, as a browser localStorage dump.
	var dump map[string]string
	if err := json.Unmarshal(buf.Bytes(), &dump); err != nil {
		t.Fatalf("dump is not a string map: %v", err)
	}
	if !strings.Contains(dump[tickets[0].ID], `"ticketDescription"`) {
		t.Errorf("unexpected record encoding: %s", dump[tickets[0].ID])
	}

	dst := store.New(store.NewMemoryBackend())
	n, err = dst.Import(&buf)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != len(tickets) {
		t.Errorf("imported %d, want %d", n, len(tickets))
	}
	got, err := dst.List()
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertSameTickets(t, got, tickets)
}

func TestImportSkipsMalformedValues(t *testing.T) {
	in := `{
  "ok": "{\"ticketDescription\":\"fine\",\"ticketBackgroundColor\":\"lightpink\"}",
  "broken": "not a record",
  "nocolor": "{\"ticketDescription\":\"x\"}"
}`
	s := store.New(store.NewMemoryBackend())
	n, err := s.Import(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 1 {
		t.Errorf("imported %d, want 1", n)
	}
	testutil.AssertStored(t, s, "ok", "fine", "lightpink")
	testutil.AssertNotStored(t, s, "broken")
	testutil.AssertNotStored(t, s, "nocolor")
}

func TestImportStoresColorNames(t *testing.T) {
	in := `{
  "a": "{\"ticketDescription\":\"x\",\"ticketBackgroundColor\":\"rgb(144, 238, 144)\"}",
  "b": "{\"ticketDescription\":\"y\",\"ticketBackgroundColor\":\"chartreuse\"}"
}`
	s := store.New(store.NewMemoryBackend())
	if _, err := s.Import(strings.NewReader(in)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	testutil.AssertStored(t, s, "a", "x", "lightgreen")
	testutil.AssertStored(t, s, "b", "y", "chartreuse")
}

func TestImportRejectsNonObject(t *testing.T) {
	s := store.New(store.NewMemoryBackend())
	if _, err := s.Import(strings.NewReader(`["a"]`)); err == nil {
		t.Error("expected error for non-object dump")
	}
}
