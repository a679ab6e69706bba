package action

import "fmt"

// Sizing is a categorical bet-size bucket chosen by the user at record
// time. Sizes are labels, never computed amounts.
type Sizing int

const (
	SizingNone Sizing = iota
	SizingSmall
	SizingMedium
	SizingLarge
)

// String returns the sizing label, or "" for SizingNone.
func (s Sizing) String() string {
	switch s {
	case SizingSmall:
		return "small"
	case SizingMedium:
		return "medium"
	case SizingLarge:
		return "large"
	default:
		return ""
	}
}

// SizingFromString converts a string to a Sizing. Empty input maps to
// SizingNone; the second return value is false for unrecognized names.
func SizingFromString(s string) (Sizing, bool) {
	switch s {
	case "":
		return SizingNone, true
	case "small":
		return SizingSmall, true
	case "medium":
		return SizingMedium, true
	case "large":
		return SizingLarge, true
	default:
		return SizingNone, false
	}
}

// Outcome is the showdown result qualifier. It is only meaningful on
// showdown-street entries.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeMucked
	OutcomeWon
)

// String returns the outcome label, or "" for OutcomeNone.
func (o Outcome) String() string {
	switch o {
	case OutcomeMucked:
		return "mucked"
	case OutcomeWon:
		return "won"
	default:
		return ""
	}
}

// OutcomeFromString converts a string to an Outcome. Empty input maps
// to OutcomeNone; the second return value is false otherwise.
func OutcomeFromString(s string) (Outcome, bool) {
	switch s {
	case "":
		return OutcomeNone, true
	case "mucked":
		return OutcomeMucked, true
	case "won":
		return OutcomeWon, true
	default:
		return OutcomeNone, false
	}
}

// Action is the stored action value: a primitive plus optional
// qualifiers. Richer UI labels ("c-bet small", "3bet") are a
// presentation-layer view over this union, never a second source of
// truth.
type Action struct {
	Primitive Primitive `json:"primitive"`
	Sizing    Sizing    `json:"sizing,omitempty"`
	Outcome   Outcome   `json:"outcome,omitempty"`
}

// Terminal reports whether the action closes the seat's participation
// in the street: a fold, or a recorded showdown win.
func (a Action) Terminal() bool {
	return a.Primitive == Fold || a.Outcome == OutcomeWon
}

// String returns a compact display form, e.g. "bet (small)" or
// "check". Showdown outcomes render as the outcome alone.
func (a Action) String() string {
	if a.Outcome != OutcomeNone {
		return a.Outcome.String()
	}
	if a.Sizing != SizingNone {
		return fmt.Sprintf("%s (%s)", a.Primitive, a.Sizing)
	}
	return a.Primitive.String()
}
