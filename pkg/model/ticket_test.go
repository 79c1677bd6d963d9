package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/vanderheijden86/stickyboard/pkg/palette"
)

func TestRecordWireShape(t *testing.T) {
	data, err := EncodeRecord(Record{Description: "Buy milk", BackgroundColor: "lightgreen"})
	if err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}
	got := string(data)
	want := `{"ticketDescription":"Buy milk","ticketBackgroundColor":"lightgreen"}`
	if got != want {
		t.Errorf("wire shape mismatch:\n got  %s\n want %s", got, want)
	}
}

func TestDecodeRecord_BrowserValue(t *testing.T) {
	// Value as written by the browser board: rendered color, HTML description.
	raw := `{"ticketDescription":"<b>ship</b> it","ticketBackgroundColor":"rgb(255, 182, 193)","extra":1}`
	r, err := DecodeRecord([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	tk := FromRecord("abc", r)
	if tk.Description != "<b>ship</b> it" {
		t.Errorf("description = %q", tk.Description)
	}
	name, ok := tk.ColorName()
	if !ok || name != palette.LightPink {
		t.Errorf("ColorName() = (%q, %v), want lightpink", name, ok)
	}
}

func TestDecodeRecord_Malformed(t *testing.T) {
	if _, err := DecodeRecord([]byte(`{"ticketDescription":`)); err == nil {
		t.Fatal("expected error for truncated record")
	}
}

func TestValidate(t *testing.T) {
	if err := (Ticket{ID: " ", Color: "lightblue"}).Validate(); !errors.Is(err, ErrEmptyID) {
		t.Errorf("expected ErrEmptyID, got %v", err)
	}
	err := (Ticket{ID: "x1"}).Validate()
	if err == nil || !strings.Contains(err.Error(), "background color") {
		t.Errorf("expected color error, got %v", err)
	}
	if err := (Ticket{ID: "x1", Color: "lightblue"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMergeRecordKeepsOtherFields(t *testing.T) {
	existing := []byte(`{"ticketDescription":"old","ticketBackgroundColor":"lightblue","pinned":true}`)
	data, err := MergeRecord(existing, Record{Description: "new", BackgroundColor: "lightpink"})
	if err != nil {
		t.Fatalf("MergeRecord: %v", err)
	}
	if !strings.Contains(string(data), `"pinned":true`) {
		t.Errorf("extra field dropped: %s", data)
	}
	rec, err := DecodeRecord(data)
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	if rec.Description != "new" || rec.BackgroundColor != "lightpink" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestMergeRecordReplacesNonObject(t *testing.T) {
	for _, existing := range []string{`"a string"`, `null`, `not json`} {
		data, err := MergeRecord([]byte(existing), Record{Description: "d", BackgroundColor: "lightgreen"})
		if err != nil {
			t.Fatalf("MergeRecord(%s): %v", existing, err)
		}
		want, _ := EncodeRecord(Record{Description: "d", BackgroundColor: "lightgreen"})
		if string(data) != string(want) {
			t.Errorf("MergeRecord(%s) = %s, want %s", existing, data, want)
		}
	}
}
