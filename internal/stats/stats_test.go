package stats

import (
	"strings"
	"testing"

	"github.com/railbirdhq/railbird/internal/action"
)

func e(seat int, p action.Primitive, street action.Street, order int) action.Entry {
	return action.Entry{Seat: seat, Action: action.Action{Primitive: p}, Street: street, Order: order}
}

// cbetHand: seat 5 opens on the button, seat 6 calls, seat 5 c-bets
// the flop, seat 6 folds, seat 5 wins without showdown.
func cbetHand() Hand {
	return Hand{
		Button: 5,
		Sequence: action.Sequence{
			e(5, action.Raise, action.Preflop, 1),
			e(6, action.Call, action.Preflop, 2),
			e(6, action.Check, action.Flop, 3),
			e(5, action.Bet, action.Flop, 4),
			e(6, action.Fold, action.Flop, 5),
		},
	}
}

// checkBackHand: same matchup but seat 5 checks back the flop and the
// hand reaches showdown.
func checkBackHand() Hand {
	return Hand{
		Button: 5,
		Sequence: action.Sequence{
			e(5, action.Raise, action.Preflop, 1),
			e(6, action.Call, action.Preflop, 2),
			e(6, action.Check, action.Flop, 3),
			e(5, action.Check, action.Flop, 4),
			{Seat: 6, Action: action.Action{Primitive: action.Fold, Outcome: action.OutcomeMucked}, Street: action.Showdown, Order: 5},
			{Seat: 5, Action: action.Action{Primitive: action.Check, Outcome: action.OutcomeWon}, Street: action.Showdown, Order: 6},
		},
	}
}

func TestCompute_CoreRates(t *testing.T) {
	ss := Compute([]Hand{cbetHand(), checkBackHand()})

	if ss.HandsPlayed != 2 {
		t.Fatalf("HandsPlayed = %d, want 2", ss.HandsPlayed)
	}

	hero := ss.Seat(5)
	if hero.Hands != 2 {
		t.Fatalf("seat 5 hands = %d, want 2", hero.Hands)
	}
	if hero.VPIP() != 100 {
		t.Errorf("seat 5 VPIP = %.1f, want 100", hero.VPIP())
	}
	if hero.PFR() != 100 {
		t.Errorf("seat 5 PFR = %.1f, want 100", hero.PFR())
	}
	if hero.CbetOpportunities != 2 || hero.CbetsMade != 1 {
		t.Errorf("seat 5 cbet = %d/%d, want 1/2", hero.CbetsMade, hero.CbetOpportunities)
	}
	if hero.CbetPct() != 50 {
		t.Errorf("seat 5 cbet%% = %.1f, want 50", hero.CbetPct())
	}
	if hero.WTSD() != 50 || hero.WSD() != 100 {
		t.Errorf("seat 5 showdown rates = %.1f/%.1f, want 50/100", hero.WTSD(), hero.WSD())
	}

	villain := ss.Seat(6)
	if villain.FoldsToCbet != 1 || villain.CbetsFaced != 1 {
		t.Errorf("seat 6 fold-to-cbet = %d/%d, want 1/1", villain.FoldsToCbet, villain.CbetsFaced)
	}
	if villain.PFR() != 0 {
		t.Errorf("seat 6 PFR = %.1f, want 0", villain.PFR())
	}
}

func TestCompute_AggressionFactor(t *testing.T) {
	h := Hand{
		Button: 5,
		Sequence: action.Sequence{
			e(5, action.Raise, action.Preflop, 1),
			e(6, action.Call, action.Preflop, 2),
			e(6, action.Check, action.Flop, 3),
			e(5, action.Bet, action.Flop, 4),
			e(6, action.Raise, action.Flop, 5),
			e(5, action.Call, action.Flop, 6),
		},
	}
	ss := Compute([]Hand{h})

	if af := ss.Seat(6).AggressionFactor(); af != 1 {
		t.Errorf("seat 6 AF = %.2f, want 1.00 (one raise, no calls)", af)
	}
	if af := ss.Seat(5).AggressionFactor(); af != 1 {
		t.Errorf("seat 5 AF = %.2f, want 1.00 (one bet over one call)", af)
	}
}

func TestCompute_SkipsInvalidHands(t *testing.T) {
	bad := Hand{
		Button: 5,
		Sequence: action.Sequence{
			e(5, action.Raise, action.Preflop, 2),
			e(6, action.Call, action.Preflop, 1), // out of order
		},
	}
	ss := Compute([]Hand{bad, cbetHand()})
	if ss.HandsPlayed != 1 {
		t.Fatalf("HandsPlayed = %d, want 1 (malformed hand skipped)", ss.HandsPlayed)
	}
}

func TestSeatStats_ZeroDivisionGuards(t *testing.T) {
	var s SeatStats
	if s.VPIP() != 0 || s.CbetPct() != 0 || s.FoldToCbetPct() != 0 || s.WSD() != 0 {
		t.Error("rates over zero denominators must be 0")
	}
	if s.AggressionFactor() != 0 {
		t.Error("AF with no actions must be 0")
	}
}

func TestRender(t *testing.T) {
	ss := Compute([]Hand{cbetHand()})
	out := ss.Render()
	if !strings.Contains(out, "SESSION STATISTICS") {
		t.Error("render should include the header")
	}
	if !strings.Contains(out, "VPIP%") {
		t.Error("render should include column headings")
	}

	empty := Compute(nil)
	if !strings.Contains(empty.Render(), "No hands recorded") {
		t.Error("empty render should say no hands were recorded")
	}
}
