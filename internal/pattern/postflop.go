package pattern

import (
	"github.com/railbirdhq/railbird/internal/action"
	"github.com/railbirdhq/railbird/internal/position"
)

// streetState tracks what the classifier knows about a street as it
// walks its entries in order.
type streetState struct {
	pfr        int
	hasPFR     bool
	pfrChecked bool
	anyBet     bool
	lastAgg    Pattern
	acted      map[int]bool
	lastOwn    map[int]action.Primitive
}

// classifyStreet runs a single forward pass over one postflop street,
// classifying every entry against the state accumulated so far.
func classifyStreet(seq action.Sequence, street action.Street, button int) []Classified {
	pfr, hasPFR := PreflopAggressor(seq)
	st := streetState{
		pfr:     pfr,
		hasPFR:  hasPFR,
		acted:   make(map[int]bool),
		lastOwn: make(map[int]action.Primitive),
	}

	var out []Classified
	for _, e := range seq.OnStreet(street) {
		p := st.classify(seq, e, button)
		out = append(out, Classified{Entry: e, Pattern: p})
		st.update(e, p)
	}
	return out
}

func (st *streetState) classify(seq action.Sequence, e action.Entry, button int) Pattern {
	switch e.Action.Primitive {
	case action.Check:
		return Check

	case action.Bet:
		if st.anyBet {
			// A bet into an existing bet acts as a raise.
			return st.classifyRaise(e)
		}
		switch {
		case st.hasPFR && e.Seat == st.pfr:
			if inPositionVsLive(seq, e, button) {
				return CbetIP
			}
			return CbetOOP
		case !st.hasPFR:
			return Stab
		case st.pfrChecked:
			return Probe
		case !st.acted[e.Seat]:
			return Donk
		default:
			// A non-first-action bet into an unopened pot fits no
			// named situation.
			return None
		}

	case action.Raise:
		return st.classifyRaise(e)

	case action.Call:
		if st.lastAgg.IsCbet() {
			return CallCbet
		}
		return None

	case action.Fold:
		if st.lastAgg.IsCbet() {
			return FoldToCbet
		}
		if st.lastAgg == CheckRaise {
			return FoldToCR
		}
		return Fold

	default:
		return None
	}
}

func (st *streetState) classifyRaise(e action.Entry) Pattern {
	if st.lastOwn[e.Seat] == action.Check && st.acted[e.Seat] {
		return CheckRaise
	}
	if st.lastAgg.IsCbet() {
		return RaiseVsCbet
	}
	return None
}

func (st *streetState) update(e action.Entry, p Pattern) {
	if e.Action.Primitive == action.Check && st.hasPFR && e.Seat == st.pfr {
		st.pfrChecked = true
	}
	if action.IsAggressiveAction(e.Action.Primitive) {
		st.anyBet = true
		st.lastAgg = p
	}
	st.acted[e.Seat] = true
	st.lastOwn[e.Seat] = e.Action.Primitive
}

// inPositionVsLive reports whether the bettor acts after every live
// opponent still in the hand at this entry. Opponents are live when
// they appear in the sequence and have not folded before this order.
func inPositionVsLive(seq action.Sequence, e action.Entry, button int) bool {
	folded := make(map[int]bool)
	for _, prev := range seq.Before(e.Order) {
		if prev.Action.Primitive == action.Fold {
			folded[prev.Seat] = true
		}
	}
	for _, seat := range seq.Seats() {
		if seat == e.Seat || folded[seat] {
			continue
		}
		if !position.IsInPosition(e.Seat, seat, button) {
			return false
		}
	}
	return true
}

// ClassifyPostflop labels a single flop, turn or river entry. Entries
// on preflop or showdown classify to None.
func ClassifyPostflop(seq action.Sequence, target action.Entry, button int) Pattern {
	if !target.Street.IsPostflop() {
		return None
	}
	for _, c := range classifyStreet(seq, target.Street, button) {
		if c.Entry.Order == target.Order {
			return c.Pattern
		}
	}
	return None
}

// PostflopPatterns classifies every flop, turn and river entry in
// sequence order.
func PostflopPatterns(seq action.Sequence, button int) []Classified {
	var out []Classified
	for _, street := range []action.Street{action.Flop, action.Turn, action.River} {
		out = append(out, classifyStreet(seq, street, button)...)
	}
	return out
}

// SummarizePostflop groups labels by street, then seat, mirroring the
// preflop summarizer's shape.
func SummarizePostflop(seq action.Sequence, button int) map[action.Street]map[int][]string {
	out := make(map[action.Street]map[int][]string)
	for _, c := range PostflopPatterns(seq, button) {
		street := c.Entry.Street
		if out[street] == nil {
			out[street] = make(map[int][]string)
		}
		out[street][c.Entry.Seat] = append(out[street][c.Entry.Seat], c.Label())
	}
	return out
}

// CbetStats aggregates continuation-bet frequency for one seat across
// many hands. Opportunities are hands where the seat was the preflop
// raiser; Made counts those where the seat's flop action classified as
// a c-bet variant.
type CbetStats struct {
	Opportunities int     `json:"opportunities"`
	Made          int     `json:"made"`
	Percentage    float64 `json:"percentage"`
}

// GetCbetStats computes CbetStats over parallel slices of hand
// sequences and their button seats. A mismatched buttons slice falls
// back to button 0 (treated as invalid by the position logic) for the
// missing hands rather than failing.
func GetCbetStats(hands []action.Sequence, seat int, buttons []int) CbetStats {
	var stats CbetStats
	for i, seq := range hands {
		pfr, ok := PreflopAggressor(seq)
		if !ok || pfr != seat {
			continue
		}
		stats.Opportunities++

		button := 0
		if i < len(buttons) {
			button = buttons[i]
		}
		for _, c := range classifyStreet(seq, action.Flop, button) {
			if c.Entry.Seat == seat && c.Pattern.IsCbet() {
				stats.Made++
				break
			}
		}
	}
	if stats.Opportunities > 0 {
		stats.Percentage = float64(stats.Made) / float64(stats.Opportunities) * 100
	}
	return stats
}
