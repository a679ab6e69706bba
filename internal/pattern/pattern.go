// Package pattern classifies recorded hand actions into canonical
// strategic patterns: opens, 3-bets, squeezes, continuation bets,
// donks, probes, check-raises and their responses. Classification is a
// pure, derived view over an immutable action sequence; it never
// mutates its input and never errors, degrading to None for entries
// outside its domain.
package pattern

import "github.com/railbirdhq/railbird/internal/action"

// Pattern is an output-only strategic label for a classified entry.
// The zero value None means the entry has no named pattern.
type Pattern string

const (
	None Pattern = ""

	// Preflop patterns.
	Fold     Pattern = "fold"
	Limp     Pattern = "limp"
	OverLimp Pattern = "over_limp"
	Open     Pattern = "open"
	IsoRaise Pattern = "iso_raise"
	ColdCall Pattern = "cold_call"
	ThreeBet Pattern = "3bet"
	Squeeze  Pattern = "squeeze"
	FourBet  Pattern = "4bet"
	FiveBet  Pattern = "5bet"

	// Postflop patterns.
	Check       Pattern = "check"
	CbetIP      Pattern = "cbet_ip"
	CbetOOP     Pattern = "cbet_oop"
	Donk        Pattern = "donk"
	Probe       Pattern = "probe"
	Stab        Pattern = "stab"
	CheckRaise  Pattern = "check_raise"
	RaiseVsCbet Pattern = "raise_vs_cbet"
	CallCbet    Pattern = "call_cbet"
	FoldToCbet  Pattern = "fold_to_cbet"
	FoldToCR    Pattern = "fold_to_cr"
)

// IsRaiseFamily reports whether the pattern is a preflop raise. The
// last raise-family pattern in a hand marks the preflop aggressor.
func (p Pattern) IsRaiseFamily() bool {
	switch p {
	case Open, IsoRaise, ThreeBet, Squeeze, FourBet, FiveBet:
		return true
	default:
		return false
	}
}

// IsCbet reports whether the pattern is a continuation-bet variant.
func (p Pattern) IsCbet() bool {
	return p == CbetIP || p == CbetOOP
}

// Classified pairs an entry with its pattern.
type Classified struct {
	Entry   action.Entry
	Pattern Pattern
}

// Label returns the pattern name, falling back to the entry's raw
// action for unlabeled entries.
func (c Classified) Label() string {
	if c.Pattern != None {
		return string(c.Pattern)
	}
	return c.Entry.Action.String()
}
