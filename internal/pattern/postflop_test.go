package pattern

import (
	"reflect"
	"testing"

	"github.com/railbirdhq/railbird/internal/action"
)

func st(seat int, p action.Primitive, street action.Street, order int) action.Entry {
	return action.Entry{Seat: seat, Action: action.Action{Primitive: p}, Street: street, Order: order}
}

// raisedPot returns a preflop open by pfrSeat called by caller, so the
// hand has a defined preflop aggressor.
func raisedPot(pfrSeat, caller int) action.Sequence {
	return action.Sequence{
		pf(pfrSeat, action.Raise, 1),
		pf(caller, action.Call, 2),
	}
}

func TestClassifyPostflop_CbetInPosition(t *testing.T) {
	// Button 5: seat 5 (BTN) opens, seat 6 (SB) calls. Seat 5 acts last
	// postflop, so its flop bet is an in-position c-bet.
	seq := append(raisedPot(5, 6),
		st(6, action.Check, action.Flop, 3),
		st(5, action.Bet, action.Flop, 4),
	)
	got := patternsOf(classifyStreet(seq, action.Flop, 5))
	want := []Pattern{Check, CbetIP}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("patterns = %v, want %v", got, want)
	}
}

func TestClassifyPostflop_CbetOutOfPosition(t *testing.T) {
	// Button 5: seat 6 (SB) is the aggressor and acts first postflop.
	seq := append(raisedPot(6, 5),
		st(6, action.Bet, action.Flop, 3),
	)
	if got := ClassifyPostflop(seq, seq[2], 5); got != CbetOOP {
		t.Fatalf("pattern = %q, want cbet_oop", got)
	}
}

func TestClassifyPostflop_Donk(t *testing.T) {
	// Non-aggressor bets into the PFR before the PFR has acted.
	seq := append(raisedPot(5, 6),
		st(6, action.Bet, action.Flop, 3),
	)
	if got := ClassifyPostflop(seq, seq[2], 5); got != Donk {
		t.Fatalf("pattern = %q, want donk", got)
	}
}

func TestClassifyPostflop_CheckThenBetIsNotDonk(t *testing.T) {
	// Donk requires the seat's first action of the street. A non-PFR
	// seat that checks and then bets before the PFR has acted fits no
	// named situation.
	seq := append(raisedPot(5, 6),
		st(6, action.Check, action.Flop, 3),
		st(6, action.Bet, action.Flop, 4),
	)
	if got := ClassifyPostflop(seq, seq[3], 5); got != None {
		t.Fatalf("pattern = %q, want none", got)
	}
}

func TestClassifyPostflop_Probe(t *testing.T) {
	// PFR checks, then the non-aggressor bets: probe, not donk.
	seq := append(raisedPot(6, 5),
		st(6, action.Check, action.Flop, 3),
		st(5, action.Bet, action.Flop, 4),
	)
	got := patternsOf(classifyStreet(seq, action.Flop, 5))
	want := []Pattern{Check, Probe}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("patterns = %v, want %v", got, want)
	}
}

func TestClassifyPostflop_StabInLimpedPot(t *testing.T) {
	seq := action.Sequence{
		pf(3, action.Call, 1),
		pf(4, action.Call, 2),
		st(3, action.Bet, action.Flop, 3),
	}
	if got := ClassifyPostflop(seq, seq[2], 5); got != Stab {
		t.Fatalf("pattern = %q, want stab", got)
	}
}

func TestClassifyPostflop_CheckRaiseAndFoldToCR(t *testing.T) {
	seq := append(raisedPot(5, 6),
		st(6, action.Check, action.Flop, 3),
		st(5, action.Bet, action.Flop, 4),   // cbet
		st(6, action.Raise, action.Flop, 5), // check-raise
		st(5, action.Fold, action.Flop, 6),  // fold to check-raise
	)
	got := patternsOf(classifyStreet(seq, action.Flop, 5))
	want := []Pattern{Check, CbetIP, CheckRaise, FoldToCR}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("patterns = %v, want %v", got, want)
	}
}

func TestClassifyPostflop_ResponsesToCbet(t *testing.T) {
	base := append(raisedPot(6, 5),
		st(6, action.Bet, action.Flop, 3), // cbet_oop
	)

	call := append(base, st(5, action.Call, action.Flop, 4))
	if got := ClassifyPostflop(call, call[3], 5); got != CallCbet {
		t.Errorf("call vs cbet = %q, want call_cbet", got)
	}

	raise := append(base[:3:3], st(5, action.Raise, action.Flop, 4))
	if got := ClassifyPostflop(raise, raise[3], 5); got != RaiseVsCbet {
		t.Errorf("raise vs cbet = %q, want raise_vs_cbet", got)
	}

	fold := append(base[:3:3], st(5, action.Fold, action.Flop, 4))
	if got := ClassifyPostflop(fold, fold[3], 5); got != FoldToCbet {
		t.Errorf("fold vs cbet = %q, want fold_to_cbet", got)
	}
}

func TestClassifyPostflop_PlainFold(t *testing.T) {
	// Fold with no aggression this street is a plain fold.
	seq := append(raisedPot(5, 6),
		st(6, action.Fold, action.Flop, 3),
	)
	if got := ClassifyPostflop(seq, seq[2], 5); got != Fold {
		t.Fatalf("pattern = %q, want fold", got)
	}
}

func TestClassifyPostflop_OutOfDomainIsNone(t *testing.T) {
	seq := raisedPot(5, 6)
	if got := ClassifyPostflop(seq, seq[0], 5); got != None {
		t.Errorf("preflop entry = %q, want None", got)
	}

	sd := action.Entry{
		Seat:   5,
		Action: action.Action{Primitive: action.Check, Outcome: action.OutcomeWon},
		Street: action.Showdown,
		Order:  9,
	}
	if got := ClassifyPostflop(append(seq, sd), sd, 5); got != None {
		t.Errorf("showdown entry = %q, want None", got)
	}
}

func TestSummarizePostflop_NestedShape(t *testing.T) {
	seq := append(raisedPot(5, 6),
		st(6, action.Check, action.Flop, 3),
		st(5, action.Bet, action.Flop, 4),
		st(6, action.Call, action.Flop, 5),
		st(6, action.Check, action.Turn, 6),
		st(5, action.Check, action.Turn, 7),
	)
	got := SummarizePostflop(seq, 5)

	if !reflect.DeepEqual(got[action.Flop][5], []string{"cbet_ip"}) {
		t.Errorf("flop seat 5 = %v", got[action.Flop][5])
	}
	if !reflect.DeepEqual(got[action.Flop][6], []string{"check", "call_cbet"}) {
		t.Errorf("flop seat 6 = %v", got[action.Flop][6])
	}
	if !reflect.DeepEqual(got[action.Turn][6], []string{"check"}) {
		t.Errorf("turn seat 6 = %v", got[action.Turn][6])
	}
}

func TestGetCbetStats(t *testing.T) {
	cbetHand := append(raisedPot(5, 6),
		st(6, action.Check, action.Flop, 3),
		st(5, action.Bet, action.Flop, 4),
	)
	checkBackHand := append(raisedPot(5, 6),
		st(6, action.Check, action.Flop, 3),
		st(5, action.Check, action.Flop, 4),
	)
	notPFRHand := append(raisedPot(6, 5),
		st(6, action.Bet, action.Flop, 3),
	)

	stats := GetCbetStats([]action.Sequence{cbetHand, checkBackHand, notPFRHand}, 5, []int{5, 5, 5})
	if stats.Opportunities != 2 {
		t.Errorf("opportunities = %d, want 2", stats.Opportunities)
	}
	if stats.Made != 1 {
		t.Errorf("made = %d, want 1", stats.Made)
	}
	if stats.Percentage != 50 {
		t.Errorf("percentage = %v, want 50", stats.Percentage)
	}
}

func TestGetCbetStats_EmptyInput(t *testing.T) {
	stats := GetCbetStats(nil, 4, nil)
	if stats.Opportunities != 0 || stats.Made != 0 || stats.Percentage != 0 {
		t.Fatalf("empty input stats = %+v, want zeros", stats)
	}
}

func TestPostflopClassification_Idempotent(t *testing.T) {
	seq := append(raisedPot(5, 6),
		st(6, action.Check, action.Flop, 3),
		st(5, action.Bet, action.Flop, 4),
		st(6, action.Raise, action.Flop, 5),
	)
	first := patternsOf(PostflopPatterns(seq, 5))
	second := patternsOf(PostflopPatterns(seq, 5))
	if !reflect.DeepEqual(first, second) {
		t.Fatal("classification must be idempotent over an immutable sequence")
	}
}
