package tableview

import (
	"fmt"
	"slices"
)

// Slice is an inclusive range of row indices.
type Slice struct {
	First int
	Last  int
}

// NewSlice returns the Slice from first to last
// or ErrInvalidRange if first > last or first is negative.
func NewSlice(first, last int) (Slice, error) {
	if first < 0 || first > last {
		return Slice{}, fmt.Errorf("%w: slice [%d,%d]", ErrInvalidRange, first, last)
	}
	return Slice{First: first, Last: last}, nil
}

// Len returns the number of rows in the slice.
func (s Slice) Len() int { return s.Last - s.First + 1 }

// Contains returns if row is within the slice.
func (s Slice) Contains(row int) bool { return row >= s.First && row <= s.Last }

// Overlaps returns if both slices share at least one row.
func (s Slice) Overlaps(o Slice) bool { return s.First <= o.Last && o.First <= s.Last }

// Touches returns if both slices overlap or are directly adjacent.
func (s Slice) Touches(o Slice) bool { return s.First <= o.Last+1 && o.First <= s.Last+1 }

// Intersect returns the rows shared by both slices.
func (s Slice) Intersect(o Slice) (Slice, bool) {
	if !s.Overlaps(o) {
		return Slice{}, false
	}
	return Slice{First: max(s.First, o.First), Last: min(s.Last, o.Last)}, true
}

func (s Slice) union(o Slice) Slice {
	return Slice{First: min(s.First, o.First), Last: max(s.Last, o.Last)}
}

func (s Slice) String() string { return fmt.Sprintf("[%d,%d]", s.First, s.Last) }

// SliceTracker tracks the contiguous range of rows
// that is currently materialized by a client.
//
// At most one open slice is tracked. Slices that don't touch
// the open slice are queued as pending until a later AddSlice
// bridges the gap.
//
// Dropping a range strictly inside the open slice
// does not split it: everything from the start of the
// dropped range to the end of the open slice is dropped.
// Callers rely on a single tracked range.
//
// The zero value is an idle SliceTracker.
type SliceTracker struct {
	open    Slice
	isOpen  bool
	pending []Slice
}

// PushSliceRequest queues a slice without merging it into the open slice.
func (t *SliceTracker) PushSliceRequest(first, last int) error {
	s, err := NewSlice(first, last)
	if err != nil {
		return err
	}
	if !slices.Contains(t.pending, s) {
		t.pending = append(t.pending, s)
	}
	return nil
}

// PendingRequests returns a copy of the queued slices.
func (t *SliceTracker) PendingRequests() []Slice {
	return slices.Clone(t.pending)
}

// AddSlice adds a materialized slice.
// An idle tracker opens it, a slice touching the open slice
// is coalesced with it, any other slice is queued as pending.
// Pending slices that touch the grown open slice are coalesced too.
func (t *SliceTracker) AddSlice(first, last int) error {
	s, err := NewSlice(first, last)
	if err != nil {
		return err
	}
	switch {
	case !t.isOpen:
		t.open = s
		t.isOpen = true
	case t.open.Touches(s):
		t.open = t.open.union(s)
	default:
		if !slices.Contains(t.pending, s) {
			t.pending = append(t.pending, s)
		}
		return nil
	}
	t.coalescePending()
	return nil
}

func (t *SliceTracker) coalescePending() {
	for merged := true; merged; {
		merged = false
		for i, p := range t.pending {
			if t.open.Touches(p) {
				t.open = t.open.union(p)
				t.pending = slices.Delete(t.pending, i, i+1)
				merged = true
				break
			}
		}
	}
}

// DropSlice removes rows from the open slice.
//
// The intersection with the open slice is removed from one end:
// if it covers the whole open slice the tracker becomes idle,
// if it starts at the open slice's start the start moves past it,
// otherwise the end moves before it.
// ErrNoOverlap is returned if the tracker is idle
// or the slice does not overlap the open slice.
func (t *SliceTracker) DropSlice(first, last int) error {
	s, err := NewSlice(first, last)
	if err != nil {
		return err
	}
	if !t.isOpen {
		return fmt.Errorf("%w: drop %s while idle", ErrNoOverlap, s)
	}
	inter, ok := t.open.Intersect(s)
	if !ok {
		return fmt.Errorf("%w: drop %s from %s", ErrNoOverlap, s, t.open)
	}
	switch {
	case inter == t.open:
		t.open = Slice{}
		t.isOpen = false
	case inter.First == t.open.First:
		t.open.First = inter.Last + 1
	default:
		t.open.Last = inter.First - 1
	}
	return nil
}

// CurrentOpenSlice returns the open slice or false if idle.
func (t *SliceTracker) CurrentOpenSlice() (Slice, bool) {
	return t.open, t.isOpen
}

// Reset makes the tracker idle and clears pending requests.
func (t *SliceTracker) Reset() {
	t.open = Slice{}
	t.isOpen = false
	t.pending = nil
}
