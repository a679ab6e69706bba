package action

import (
	"sort"
	"strings"
)

// StreetSet is a bitmask of streets a label is offered on.
type StreetSet uint8

// NewStreetSet builds a set from the given streets.
func NewStreetSet(streets ...Street) StreetSet {
	var ss StreetSet
	for _, s := range streets {
		ss |= 1 << uint(s)
	}
	return ss
}

// Contains reports whether the set includes the street.
func (ss StreetSet) Contains(s Street) bool {
	return ss&(1<<uint(s)) != 0
}

var postflopStreets = NewStreetSet(Flop, Turn, River)

// Definition binds a UI-facing label to its stored Action value and
// the streets it may be recorded on. The label is a presentation view;
// the Action union is the single source of truth.
type Definition struct {
	Action  Action
	Streets StreetSet
}

// Vocabulary is the translation table from UI-facing labels to action
// definitions. It is supplied by the caller so the UI layer can extend
// or localize labels without touching validation logic.
type Vocabulary map[string]Definition

// DefaultVocabulary returns the standard label table used by the
// recorder.
func DefaultVocabulary() Vocabulary {
	pre := NewStreetSet(Preflop)
	post := postflopStreets
	return Vocabulary{
		// Preflop.
		"limp": {Action{Primitive: Call}, pre},
		"open": {Action{Primitive: Raise}, pre},
		"3bet": {Action{Primitive: Raise}, pre},
		"4bet": {Action{Primitive: Raise}, pre},

		// Postflop.
		"check":          {Action{Primitive: Check}, post},
		"bet":            {Action{Primitive: Bet}, post},
		"cbet_ip_small":  {Action{Primitive: Bet, Sizing: SizingSmall}, post},
		"cbet_ip_large":  {Action{Primitive: Bet, Sizing: SizingLarge}, post},
		"cbet_oop_small": {Action{Primitive: Bet, Sizing: SizingSmall}, post},
		"cbet_oop_large": {Action{Primitive: Bet, Sizing: SizingLarge}, post},
		"donk":           {Action{Primitive: Bet}, post},
		"stab":           {Action{Primitive: Bet}, post},
		"probe":          {Action{Primitive: Bet}, post},
		"raise":          {Action{Primitive: Raise}, post},
		"check_raise":    {Action{Primitive: Raise}, post},

		// Shared across betting streets.
		"call": {Action{Primitive: Call}, NewStreetSet(Preflop, Flop, Turn, River)},
		"fold": {Action{Primitive: Fold}, NewStreetSet(Preflop, Flop, Turn, River)},

		// Showdown.
		"mucked": {Action{Primitive: Fold, Outcome: OutcomeMucked}, NewStreetSet(Showdown)},
		"won":    {Action{Primitive: Check, Outcome: OutcomeWon}, NewStreetSet(Showdown)},
	}
}

// ActionsFor returns all labels available on the street, sorted for
// stable enumeration.
func (v Vocabulary) ActionsFor(street Street) []string {
	var labels []string
	for label, def := range v {
		if def.Streets.Contains(street) {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels
}

// Translate resolves a label to its stored Action. The second return
// value is false for labels not in the vocabulary.
func (v Vocabulary) Translate(label string) (Action, bool) {
	def, ok := v[label]
	return def.Action, ok
}

// isBetLabel reports whether the label's primitive is a bet.
func (v Vocabulary) isBetLabel(label string) bool {
	def, ok := v[label]
	return ok && def.Action.Primitive == Bet
}

// isBetTypeLabel reports whether the label wagers chips (bet or raise).
func (v Vocabulary) isBetTypeLabel(label string) bool {
	def, ok := v[label]
	return ok && (def.Action.Primitive == Bet || def.Action.Primitive == Raise)
}

// isTerminalLabel reports whether the label closes the seat's street.
func (v Vocabulary) isTerminalLabel(label string) bool {
	def, ok := v[label]
	return ok && def.Action.Terminal()
}

// isCbetLabel reports whether the label is a continuation-bet variant.
func isCbetLabel(label string) bool {
	return strings.HasPrefix(label, "cbet_")
}
