package pattern

import "github.com/railbirdhq/railbird/internal/action"

// ClassifyPreflop labels a single preflop entry by scanning the
// strictly-earlier preflop entries in the sequence. Entries on other
// streets classify to None. The sequence must already be sorted by
// Order; classification never re-sorts.
func ClassifyPreflop(seq action.Sequence, target action.Entry) Pattern {
	if target.Street != action.Preflop {
		return None
	}
	prior := seq.OnStreet(action.Preflop).Before(target.Order)

	raises := 0
	calls := 0
	seatActed := false
	openOrder := -1
	callAfterOpen := false
	for _, e := range prior {
		switch e.Action.Primitive {
		case action.Raise, action.Bet:
			raises++
			if openOrder < 0 {
				openOrder = e.Order
			}
		case action.Call:
			calls++
			if openOrder >= 0 && e.Order > openOrder {
				callAfterOpen = true
			}
		}
		if e.Seat == target.Seat {
			seatActed = true
		}
	}

	switch target.Action.Primitive {
	case action.Fold:
		return Fold

	case action.Call:
		switch raises {
		case 0:
			if calls == 0 {
				return Limp
			}
			return OverLimp
		case 1:
			if !seatActed {
				return ColdCall
			}
		}
		return None

	case action.Raise, action.Bet:
		switch raises {
		case 0:
			if calls > 0 {
				return IsoRaise
			}
			return Open
		case 1:
			if callAfterOpen {
				return Squeeze
			}
			return ThreeBet
		case 2:
			return FourBet
		case 3:
			return FiveBet
		}
		// The label set is capped at five-bet; further raises stay
		// unlabeled rather than being given a wrong ordinal.
		return None

	default:
		return None
	}
}

// PreflopPatterns classifies every preflop entry in sequence order.
func PreflopPatterns(seq action.Sequence) []Classified {
	var out []Classified
	for _, e := range seq.OnStreet(action.Preflop) {
		out = append(out, Classified{Entry: e, Pattern: ClassifyPreflop(seq, e)})
	}
	return out
}

// FirstVoluntaryPattern returns the seat's first non-fold preflop
// pattern. The second return value is false when the seat only folded
// or never acted preflop.
func FirstVoluntaryPattern(seq action.Sequence, seat int) (Pattern, bool) {
	for _, c := range PreflopPatterns(seq) {
		if c.Entry.Seat != seat {
			continue
		}
		if c.Pattern == None || c.Pattern == Fold {
			continue
		}
		return c.Pattern, true
	}
	return None, false
}

// SummarizePreflop groups each seat's ordered preflop labels, falling
// back to the raw action where no pattern applies.
func SummarizePreflop(seq action.Sequence) map[int][]string {
	out := make(map[int][]string)
	for _, c := range PreflopPatterns(seq) {
		out[c.Entry.Seat] = append(out[c.Entry.Seat], c.Label())
	}
	return out
}

// PreflopAggressor returns the seat whose raise-family pattern came
// last preflop: the hand's preflop raiser. The second return value is
// false for hands with no preflop raise (limped pots).
func PreflopAggressor(seq action.Sequence) (int, bool) {
	seat := 0
	found := false
	for _, c := range PreflopPatterns(seq) {
		if c.Pattern.IsRaiseFamily() {
			seat = c.Entry.Seat
			found = true
		}
	}
	return seat, found
}
