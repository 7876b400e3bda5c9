package diag

import (
	"math"
	"sort"

	"fortio.org/safecast"
)

// Bag accumulates diagnostics up to a fixed capacity.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag creates a bag holding at most max diagnostics. Requests beyond
// the uint16 range saturate at the maximum.
func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	capacity, err := safecast.Conv[uint16](max)
	if err != nil {
		capacity = math.MaxUint16
	}
	return &Bag{
		items: make([]Diagnostic, 0, capacity),
		max:   capacity,
	}
}

// Add appends a diagnostic, respecting the capacity limit.
// It returns false if the diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors reports whether the bag contains at least one error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether the bag contains at least one warning or error.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// ErrorCount returns the number of error-severity diagnostics.
func (b *Bag) ErrorCount() int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			n++
		}
	}
	return n
}

// Items returns a read-only view of the diagnostics.
// Callers must not modify the returned slice.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends diagnostics from another bag, growing max if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil || len(other.items) == 0 {
		return
	}
	if newTotal := len(b.items) + len(other.items); newTotal > int(b.max) {
		grown, err := safecast.Conv[uint16](newTotal)
		if err != nil {
			grown = math.MaxUint16
		}
		b.max = grown
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, span start, span end, severity (desc),
// then code, for a stable and deterministic output order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
