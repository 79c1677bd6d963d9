package metrics

import (
	"testing"
	"time"
)

func withCollection(t *testing.T) {
	t.Helper()
	SetEnabled(true)
	Reset()
	t.Cleanup(func() {
		SetEnabled(false)
		Reset()
	})
}

func TestSummaryAggregates(t *testing.T) {
	withCollection(t)

	StoreLoad.add(2 * time.Millisecond)
	StoreLoad.add(4 * time.Millisecond)

	got := Summaries()
	if len(got) != 1 {
		t.Fatalf("expected one summary, got %+v", got)
	}
	s := got[0]
	if s.Name != "store_load" || s.Count != 2 || s.Avg != 3*time.Millisecond || s.Max != 4*time.Millisecond {
		t.Errorf("unexpected summary: %+v", s)
	}
}

func TestSummariesKeepOperationOrder(t *testing.T) {
	withCollection(t)

	Timer(UIRender)()
	Timer(StoreWrite)()
	Timer(StoreLoad)()

	got := Summaries()
	want := []string{"store_load", "store_write", "ui_render"}
	if len(got) != len(want) {
		t.Fatalf("got %d summaries, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("summary %d = %s, want %s", i, got[i].Name, name)
		}
	}
}

func TestTimerDisabledByDefault(t *testing.T) {
	SetEnabled(false)
	Reset()
	defer Reset()

	Timer(StoreWrite)()
	called := false
	TimerWithCallback(UIRender, func(time.Duration) { called = true })()

	if len(Summaries()) != 0 {
		t.Errorf("disabled timers recorded: %+v", Summaries())
	}
	if called {
		t.Error("callback ran while disabled")
	}
}

func TestTimerWithCallback(t *testing.T) {
	withCollection(t)

	var got time.Duration = -1
	TimerWithCallback(UIRender, func(d time.Duration) { got = d })()
	if got < 0 {
		t.Error("callback not invoked")
	}
	if s := Summaries(); len(s) != 1 || s[0].Count != 1 {
		t.Errorf("expected one render sample, got %+v", s)
	}
}

func TestResetClears(t *testing.T) {
	withCollection(t)
	Timer(StoreWrite)()
	Reset()
	if s := Summaries(); len(s) != 0 {
		t.Errorf("reset left %+v", s)
	}
}
