// Package stats aggregates classifier output across many hands into
// per-seat session statistics (VPIP, PFR, 3-bet%, c-bet%, aggression
// factor, showdown rates).
package stats

import (
	"sort"

	"github.com/railbirdhq/railbird/internal/action"
	"github.com/railbirdhq/railbird/internal/pattern"
)

// Hand pairs one hand's action sequence with its button seat.
type Hand struct {
	Sequence action.Sequence
	Button   int
}

// SeatStats accumulates counters for one seat across a session. The
// counters are raw tallies; the percentage methods derive rates and
// guard division by zero.
type SeatStats struct {
	Seat  int
	Hands int

	VPIPHands int // hands with a voluntary preflop action
	PFRHands  int // hands with any preflop raise-family pattern
	ThreeBets int // hands with a 3bet or squeeze

	CbetOpportunities int
	CbetsMade         int
	CbetsFaced        int
	FoldsToCbet       int

	// Postflop aggression tallies.
	Bets   int
	Raises int
	Calls  int

	Showdowns    int
	ShowdownWins int

	// raisedThisHand dedupes PFRHands within a single hand; it is
	// reset after every hand is folded in.
	raisedThisHand bool
}

func pct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// VPIP returns the percentage of hands where the seat voluntarily put
// chips in preflop.
func (s *SeatStats) VPIP() float64 { return pct(s.VPIPHands, s.Hands) }

// PFR returns the percentage of hands where the seat raised preflop.
func (s *SeatStats) PFR() float64 { return pct(s.PFRHands, s.Hands) }

// ThreeBetPct returns the percentage of hands where the seat 3-bet or
// squeezed.
func (s *SeatStats) ThreeBetPct() float64 { return pct(s.ThreeBets, s.Hands) }

// CbetPct returns continuation bets made over opportunities.
func (s *SeatStats) CbetPct() float64 { return pct(s.CbetsMade, s.CbetOpportunities) }

// FoldToCbetPct returns folds to a c-bet over c-bets faced.
func (s *SeatStats) FoldToCbetPct() float64 { return pct(s.FoldsToCbet, s.CbetsFaced) }

// WTSD returns the percentage of hands where the seat reached showdown.
func (s *SeatStats) WTSD() float64 { return pct(s.Showdowns, s.Hands) }

// WSD returns showdown wins over showdowns reached.
func (s *SeatStats) WSD() float64 { return pct(s.ShowdownWins, s.Showdowns) }

// AggressionFactor returns (bets+raises)/calls on postflop streets.
// With no calls it returns the raw aggressive count, matching the
// usual convention for an undefined ratio.
func (s *SeatStats) AggressionFactor() float64 {
	aggr := s.Bets + s.Raises
	if s.Calls == 0 {
		return float64(aggr)
	}
	return float64(aggr) / float64(s.Calls)
}

// SessionStats holds per-seat statistics for one session.
type SessionStats struct {
	HandsPlayed int
	seats       map[int]*SeatStats
}

// Seats returns the tracked seats in ascending order.
func (ss *SessionStats) Seats() []int {
	out := make([]int, 0, len(ss.seats))
	for seat := range ss.seats {
		out = append(out, seat)
	}
	sort.Ints(out)
	return out
}

// Seat returns the stats for one seat, or an empty value for seats
// never seen.
func (ss *SessionStats) Seat(seat int) *SeatStats {
	if s, ok := ss.seats[seat]; ok {
		return s
	}
	return &SeatStats{Seat: seat}
}

// Compute classifies every hand and folds the results into per-seat
// counters. Input sequences must already be sorted by order; hands
// that fail boundary validation are skipped rather than poisoning the
// aggregate.
func Compute(hands []Hand) *SessionStats {
	ss := &SessionStats{seats: make(map[int]*SeatStats)}

	for _, h := range hands {
		if err := h.Sequence.Validate(); err != nil {
			continue
		}
		ss.HandsPlayed++
		ss.addHand(h)
	}
	return ss
}

func (ss *SessionStats) seat(n int) *SeatStats {
	s, ok := ss.seats[n]
	if !ok {
		s = &SeatStats{Seat: n}
		ss.seats[n] = s
	}
	return s
}

func (ss *SessionStats) addHand(h Hand) {
	seq := h.Sequence
	pfr, hasPFR := pattern.PreflopAggressor(seq)

	for _, seatNum := range seq.Seats() {
		s := ss.seat(seatNum)
		s.Hands++

		if _, ok := pattern.FirstVoluntaryPattern(seq, seatNum); ok {
			s.VPIPHands++
		}
		if hasPFR && pfr == seatNum {
			s.CbetOpportunities++
		}
	}

	for _, c := range pattern.PreflopPatterns(seq) {
		s := ss.seat(c.Entry.Seat)
		switch {
		case c.Pattern.IsRaiseFamily():
			// Count the hand once even if the seat raised repeatedly.
			if !s.raisedThisHand {
				s.PFRHands++
				s.raisedThisHand = true
			}
			if c.Pattern == pattern.ThreeBet || c.Pattern == pattern.Squeeze {
				s.ThreeBets++
			}
		}
	}

	for _, c := range pattern.PostflopPatterns(seq, h.Button) {
		s := ss.seat(c.Entry.Seat)
		switch c.Entry.Action.Primitive {
		case action.Bet:
			s.Bets++
		case action.Raise:
			s.Raises++
		case action.Call:
			s.Calls++
		}
		switch c.Pattern {
		case pattern.CbetIP, pattern.CbetOOP:
			if c.Entry.Street == action.Flop {
				s.CbetsMade++
			}
		case pattern.CallCbet, pattern.RaiseVsCbet:
			s.CbetsFaced++
		case pattern.FoldToCbet:
			s.CbetsFaced++
			s.FoldsToCbet++
		}
	}

	for _, e := range seq.OnStreet(action.Showdown) {
		s := ss.seat(e.Seat)
		s.Showdowns++
		if e.Action.Outcome == action.OutcomeWon {
			s.ShowdownWins++
		}
	}

	for _, s := range ss.seats {
		s.raisedThisHand = false
	}
}
