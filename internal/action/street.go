package action

// Street represents a betting round within a hand. Streets are
// strictly ordered; Showdown sorts after River.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

// String returns the lowercase street name.
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// StreetFromString converts a string to a Street. The second return
// value is false for unrecognized names.
func StreetFromString(s string) (Street, bool) {
	switch s {
	case "preflop", "pre-flop":
		return Preflop, true
	case "flop":
		return Flop, true
	case "turn":
		return Turn, true
	case "river":
		return River, true
	case "showdown":
		return Showdown, true
	default:
		return Preflop, false
	}
}

// Valid reports whether s is one of the five defined streets.
func (s Street) Valid() bool {
	return s >= Preflop && s <= Showdown
}

// IsPostflop reports whether s is flop, turn or river.
func (s Street) IsPostflop() bool {
	return s == Flop || s == Turn || s == River
}
