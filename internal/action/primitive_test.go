package action

import "testing"

func TestValidatePrimitive_RuleTable(t *testing.T) {
	cases := []struct {
		name      string
		action    Primitive
		state     BettingState
		wantValid bool
		wantWarn  bool
	}{
		{"check with no bet", Check, BettingState{}, true, false},
		{"check facing bet", Check, BettingState{BetToCall: 10}, false, false},
		{"bet with no bet", Bet, BettingState{}, true, false},
		{"bet facing bet", Bet, BettingState{BetToCall: 5}, false, false},
		{"call facing bet", Call, BettingState{BetToCall: 5}, true, false},
		{"call with nothing owed", Call, BettingState{}, false, false},
		{"raise facing bet", Raise, BettingState{BetToCall: 5}, true, false},
		{"raise with nothing owed", Raise, BettingState{}, false, false},
		{"fold facing bet", Fold, BettingState{BetToCall: 5}, true, false},
		{"fold when check is free", Fold, BettingState{}, true, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := ValidatePrimitive(c.action, c.state)
			if res.Valid != c.wantValid {
				t.Fatalf("Valid = %v, want %v (error: %q)", res.Valid, c.wantValid, res.Error)
			}
			if !res.Valid && res.Error == "" {
				t.Error("invalid result must carry an error")
			}
			if c.wantWarn && res.Warning == "" {
				t.Error("expected advisory warning")
			}
			if !c.wantWarn && res.Warning != "" {
				t.Errorf("unexpected warning %q", res.Warning)
			}
		})
	}
}

func TestValidatePrimitive_UnknownAction(t *testing.T) {
	res := ValidatePrimitive(Primitive(99), BettingState{})
	if res.Valid {
		t.Fatal("unknown action must be invalid")
	}
	if res.Error != "unknown action" {
		t.Errorf("error = %q, want distinct unknown-action error", res.Error)
	}
}

func TestValidPrimitives_ExclusiveTriads(t *testing.T) {
	facing := ValidPrimitives(BettingState{BetToCall: 20})
	free := ValidPrimitives(BettingState{})

	wantFacing := map[Primitive]bool{Call: true, Raise: true, Fold: true}
	wantFree := map[Primitive]bool{Check: true, Bet: true, Fold: true}

	if len(facing) != 3 || len(free) != 3 {
		t.Fatalf("triad sizes: facing=%d free=%d, want 3/3", len(facing), len(free))
	}
	for _, p := range facing {
		if !wantFacing[p] {
			t.Errorf("facing a bet: unexpected action %s", p)
		}
	}
	for _, p := range free {
		if !wantFree[p] {
			t.Errorf("no bet to call: unexpected action %s", p)
		}
	}

	// Only fold is shared between the two triads.
	for _, p := range facing {
		if p != Fold && wantFree[p] {
			t.Errorf("action %s must not appear in both triads", p)
		}
	}

	// Every action in a triad validates, every action outside it fails.
	for _, state := range []BettingState{{}, {BetToCall: 20}} {
		valid := map[Primitive]bool{}
		for _, p := range ValidPrimitives(state) {
			valid[p] = true
		}
		for _, p := range []Primitive{Check, Bet, Call, Raise, Fold} {
			if got := ValidatePrimitive(p, state).Valid; got != valid[p] {
				t.Errorf("state %+v: ValidatePrimitive(%s) = %v, ValidPrimitives disagrees", state, p, got)
			}
		}
	}
}

func TestActionClassifiers(t *testing.T) {
	if !IsOpeningAction(Bet) || IsOpeningAction(Raise) || IsOpeningAction(Call) {
		t.Error("IsOpeningAction should be true only for bet")
	}
	if !IsAggressiveAction(Bet) || !IsAggressiveAction(Raise) || IsAggressiveAction(Call) {
		t.Error("IsAggressiveAction should cover exactly bet and raise")
	}
	if !IsPassiveAction(Check) || !IsPassiveAction(Call) || IsPassiveAction(Fold) {
		t.Error("IsPassiveAction should cover exactly check and call")
	}
}

func TestPrimitiveRoundTrip(t *testing.T) {
	for _, p := range []Primitive{Check, Bet, Call, Raise, Fold} {
		got, ok := PrimitiveFromString(p.String())
		if !ok || got != p {
			t.Errorf("round trip failed for %s", p)
		}
	}
	if _, ok := PrimitiveFromString("shove"); ok {
		t.Error("unknown action string should not parse")
	}
}
