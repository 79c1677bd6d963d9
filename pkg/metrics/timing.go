// Package metrics times the store and the renderer for sb's debug summary.
//
// Collection is off until SetEnabled(true), which --debug and SB_DEBUG turn
// on. At exit the command logs one Summary per operation that ran:
//
//	defer metrics.Timer(metrics.StoreLoad)()
package metrics

import (
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	enabled bool
)

// Enabled reports whether timings are being collected.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetEnabled turns collection on or off.
func SetEnabled(e bool) {
	mu.Lock()
	enabled = e
	mu.Unlock()
}

// Op is one timed operation.
type Op struct {
	name  string
	count int64
	total time.Duration
	max   time.Duration
}

// Timed operations.
var (
	StoreLoad  = &Op{name: "store_load"}
	StoreWrite = &Op{name: "store_write"}
	UIRender   = &Op{name: "ui_render"}

	ops = []*Op{StoreLoad, StoreWrite, UIRender}
)

func (o *Op) add(d time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	o.count++
	o.total += d
	if d > o.max {
		o.max = d
	}
}

// Timer starts timing o and returns the function that stops it.
func Timer(o *Op) func() {
	return TimerWithCallback(o, nil)
}

// TimerWithCallback is Timer that also hands the elapsed time to cb.
func TimerWithCallback(o *Op, cb func(time.Duration)) func() {
	if o == nil || !Enabled() {
		return func() {}
	}
	start := time.Now()
	return func() {
		d := time.Since(start)
		o.add(d)
		if cb != nil {
			cb(d)
		}
	}
}

// Summary is what the exit log reports for one operation.
type Summary struct {
	Name  string
	Count int64
	Avg   time.Duration
	Max   time.Duration
}

// Summaries returns a summary for every operation that ran at least once,
// in store-load, store-write, render order.
func Summaries() []Summary {
	mu.Lock()
	defer mu.Unlock()
	var out []Summary
	for _, o := range ops {
		if o.count == 0 {
			continue
		}
		out = append(out, Summary{
			Name:  o.name,
			Count: o.count,
			Avg:   o.total / time.Duration(o.count),
			Max:   o.max,
		})
	}
	return out
}

// Reset clears every operation's counters.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	for _, o := range ops {
		o.count, o.total, o.max = 0, 0, 0
	}
}
