package action

import (
	"fmt"

	"github.com/railbirdhq/railbird/internal/position"
)

// Entry is one recorded decision. Order is a hand-scoped, strictly
// increasing integer assigned at record time and is the sole ordering
// key across all streets; wall-clock time is never trusted for
// ordering. Entries are immutable once recorded.
type Entry struct {
	Seat   int    `json:"seat"`
	Action Action `json:"action"`
	Street Street `json:"street"`
	Order  int    `json:"order"`
}

// Sequence is the full chronological action list for one hand, sorted
// by Order. It is append-only during play and read-only during
// classification. Classifiers rely on the pre-sorted contract and
// never re-sort; Validate enforces it at the boundary.
type Sequence []Entry

// Validate rejects malformed input before it reaches validation or
// classification logic: unsorted or duplicate Order values, seats
// outside 1-9, undefined streets, showdown qualifiers off the showdown
// street, and more than one showdown entry per seat.
func (s Sequence) Validate() error {
	lastOrder := -1
	shownDown := make(map[int]bool)
	for i, e := range s {
		if e.Seat < 1 || e.Seat > position.MaxSeats {
			return fmt.Errorf("entry %d: seat %d out of range 1-%d", i, e.Seat, position.MaxSeats)
		}
		if !e.Street.Valid() {
			return fmt.Errorf("entry %d: invalid street %d", i, int(e.Street))
		}
		if i > 0 && e.Order <= lastOrder {
			return fmt.Errorf("entry %d: order %d not strictly increasing (prev %d)", i, e.Order, lastOrder)
		}
		lastOrder = e.Order
		if e.Street == Showdown {
			if e.Action.Outcome == OutcomeNone {
				return fmt.Errorf("entry %d: showdown entry without outcome", i)
			}
			if shownDown[e.Seat] {
				return fmt.Errorf("entry %d: seat %d already has a showdown action", i, e.Seat)
			}
			shownDown[e.Seat] = true
		} else if e.Action.Outcome != OutcomeNone {
			return fmt.Errorf("entry %d: outcome %q on non-showdown street %s", i, e.Action.Outcome, e.Street)
		}
	}
	return nil
}

// OnStreet returns the subsequence of entries on the given street, in
// order.
func (s Sequence) OnStreet(street Street) Sequence {
	var out Sequence
	for _, e := range s {
		if e.Street == street {
			out = append(out, e)
		}
	}
	return out
}

// BySeat returns the subsequence of entries for one seat, in order.
func (s Sequence) BySeat(seat int) Sequence {
	var out Sequence
	for _, e := range s {
		if e.Seat == seat {
			out = append(out, e)
		}
	}
	return out
}

// Before returns the subsequence of entries with Order strictly less
// than the given order.
func (s Sequence) Before(order int) Sequence {
	var out Sequence
	for _, e := range s {
		if e.Order >= order {
			break
		}
		out = append(out, e)
	}
	return out
}

// Seats returns the distinct seats appearing in the sequence, in first
// appearance order.
func (s Sequence) Seats() []int {
	seen := make(map[int]bool)
	var seats []int
	for _, e := range s {
		if !seen[e.Seat] {
			seen[e.Seat] = true
			seats = append(seats, e.Seat)
		}
	}
	return seats
}
