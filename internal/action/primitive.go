package action

// Primitive is the canonical 5-action vocabulary every richer action
// label reduces to.
type Primitive int

const (
	Check Primitive = iota
	Bet
	Call
	Raise
	Fold
)

// String returns the lowercase action name.
func (p Primitive) String() string {
	switch p {
	case Check:
		return "check"
	case Bet:
		return "bet"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case Fold:
		return "fold"
	default:
		return "unknown"
	}
}

// PrimitiveFromString converts a string to a Primitive. The second
// return value is false for unrecognized names.
func PrimitiveFromString(s string) (Primitive, bool) {
	switch s {
	case "check":
		return Check, true
	case "bet":
		return Bet, true
	case "call":
		return Call, true
	case "raise":
		return Raise, true
	case "fold":
		return Fold, true
	default:
		return Fold, false
	}
}

// BettingState is the minimal per-decision snapshot a primitive action
// is validated against. It is deliberately not a table-wide betting
// ledger: BetToCall is the amount the acting seat currently owes, and
// HasActed whether the seat has already acted this street.
type BettingState struct {
	BetToCall int
	HasActed  bool
}

// FacingBet reports whether the seat owes chips to continue.
func (s BettingState) FacingBet() bool {
	return s.BetToCall > 0
}

// Result is the outcome of validating a proposed action. A rule
// violation sets Valid false with Error; an advisory sets Warning on
// an otherwise valid result and never blocks the action.
type Result struct {
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
}

func ok() Result                { return Result{Valid: true} }
func okWarn(msg string) Result  { return Result{Valid: true, Warning: msg} }
func invalid(msg string) Result { return Result{Valid: false, Error: msg} }

// ValidatePrimitive checks a primitive action against the betting
// state. Check and bet require no bet to call; call and raise require
// one. Fold is always legal but draws a warning when checking was free.
func ValidatePrimitive(p Primitive, state BettingState) Result {
	switch p {
	case Check:
		if state.FacingBet() {
			return invalid("cannot check when facing a bet")
		}
		return ok()
	case Bet:
		if state.FacingBet() {
			return invalid("cannot bet when facing a bet; raise instead")
		}
		return ok()
	case Call:
		if !state.FacingBet() {
			return invalid("nothing to call")
		}
		return ok()
	case Raise:
		if !state.FacingBet() {
			return invalid("nothing to raise")
		}
		return ok()
	case Fold:
		if !state.FacingBet() {
			return okWarn("folding when you could check")
		}
		return ok()
	default:
		return invalid("unknown action")
	}
}

// ValidPrimitives returns the candidate action set for a betting
// state. The two triads are mutually exclusive: facing a bet the seat
// may call, raise or fold; otherwise it may check, bet or fold.
func ValidPrimitives(state BettingState) []Primitive {
	if state.FacingBet() {
		return []Primitive{Call, Raise, Fold}
	}
	return []Primitive{Check, Bet, Fold}
}

// IsOpeningAction reports whether the action opens the betting on a
// street (the first voluntary wager).
func IsOpeningAction(p Primitive) bool {
	return p == Bet
}

// IsAggressiveAction reports whether the action puts pressure on
// opponents (bet or raise).
func IsAggressiveAction(p Primitive) bool {
	return p == Bet || p == Raise
}

// IsPassiveAction reports whether the action concedes the betting lead
// (check or call).
func IsPassiveAction(p Primitive) bool {
	return p == Check || p == Call
}
