package action

import "fmt"

// ValidateSequence checks whether a seat may record the next label
// given its own prior labels on the current street. The rules reason
// only from the seat's own history; cross-seat betting state is
// intentionally out of scope here (the UI supplies a BettingState
// fragment to ValidatePrimitive for that side).
func ValidateSequence(prior []string, next string, street Street, vocab Vocabulary) Result {
	def, known := vocab[next]
	if !known {
		return invalid(fmt.Sprintf("unknown action %q", next))
	}
	if !def.Streets.Contains(street) {
		return invalid(fmt.Sprintf("%q is not available on the %s", next, street))
	}

	if street == Showdown {
		return validateShowdown(prior)
	}

	// A terminal action closes the seat's street.
	for _, p := range prior {
		if vocab.isTerminalLabel(p) {
			return invalid(fmt.Sprintf("no actions allowed after %q", p))
		}
	}

	if street == Preflop {
		return validatePreflop(prior, next)
	}
	return validatePostflop(prior, next, vocab)
}

func validatePreflop(prior []string, next string) Result {
	switch next {
	case "limp", "open":
		if len(prior) > 0 {
			return invalid(fmt.Sprintf("%q must be the seat's first action", next))
		}
	case "call":
		if len(prior) > 0 && prior[len(prior)-1] == "limp" {
			return invalid("cannot call immediately after limping")
		}
	}
	// 3bet/4bet are accepted unconditionally: without cross-seat state
	// there is no way to verify a raise actually preceded them.
	return ok()
}

func validatePostflop(prior []string, next string, vocab Vocabulary) Result {
	hasBet := false
	hasBetType := false
	for _, p := range prior {
		if vocab.isBetLabel(p) {
			hasBet = true
		}
		if vocab.isBetTypeLabel(p) {
			hasBetType = true
		}
	}

	switch {
	case next == "check":
		if hasBet {
			return invalid("cannot check after betting this street")
		}
	case next == "call":
		if !hasBetType {
			return invalid("call requires a preceding bet action")
		}
	case next == "check_raise":
		if len(prior) == 0 || prior[len(prior)-1] != "check" {
			return invalid("check-raise requires checking first")
		}
	case isCbetLabel(next):
		if len(prior) > 0 {
			return invalid("continuation bet must be the seat's first action this street")
		}
	case next == "donk" || next == "stab" || next == "probe":
		if len(prior) > 0 {
			return invalid(fmt.Sprintf("%q must be the seat's first action this street", next))
		}
	case next == "bet":
		if hasBet {
			return invalid("seat has already bet this street")
		}
	}
	return ok()
}

func validateShowdown(prior []string) Result {
	if len(prior) > 0 {
		return invalid("can only have one showdown action")
	}
	return ok()
}

// ValidNextActions enumerates the street's full label set and filters
// it through ValidateSequence. Exhaustive rather than rule-derived:
// the label set is small and this keeps a single source of truth for
// legality.
func ValidNextActions(prior []string, street Street, vocab Vocabulary) []string {
	var out []string
	for _, label := range vocab.ActionsFor(street) {
		if ValidateSequence(prior, label, street, vocab).Valid {
			out = append(out, label)
		}
	}
	return out
}
