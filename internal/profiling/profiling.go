// Package profiling accumulates per-frame timings and counters for the
// overlay and the debug log.
package profiling

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	mu       sync.Mutex
	timings  = make(map[string]time.Duration)
	counters = make(map[string]int)
)

// Track returns a stop function that adds the elapsed time to name.
// Usage: defer profiling.Track("geom.Sierpinski")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		timings[name] += d
		mu.Unlock()
	}
}

// Count adds n to the named counter for the current frame.
func Count(name string, n int) {
	mu.Lock()
	counters[name] += n
	mu.Unlock()
}

// ResetFrame clears timings and counters. Call once at the top of each frame.
func ResetFrame() {
	mu.Lock()
	clear(timings)
	clear(counters)
	mu.Unlock()
}

// Entry is one named timing.
type Entry struct {
	Name string
	Dur  time.Duration
}

// Snapshot returns the current timings, longest first, ties by name.
func Snapshot() []Entry {
	mu.Lock()
	out := make([]Entry, 0, len(timings))
	for k, v := range timings {
		out = append(out, Entry{Name: k, Dur: v})
	}
	mu.Unlock()

	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(b.Dur, a.Dur); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Counter returns the value of a named counter for the current frame.
func Counter(name string) int {
	mu.Lock()
	defer mu.Unlock()
	return counters[name]
}

// TopN formats the n longest timings.
// Example: "geom.KochSnowflake:4.2ms, renderer.Render:2.1ms"
func TopN(n int) string {
	list := Snapshot()
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, e.Name+":"+formatMs(e.Dur))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	return strings.TrimSuffix(strconv.FormatFloat(ms, 'f', 1, 64), ".0") + "ms"
}
