// Package position provides seat-position arithmetic for a 9-max table.
// All functions are pure: they derive everything from a seat number and
// the dealer button seat, and return sentinel values instead of
// panicking on out-of-range input.
package position

// MaxSeats is the fixed table size.
const MaxSeats = 9

// Name identifies a seat's position relative to the dealer button.
type Name int

const (
	// Unknown is returned for seats or buttons outside 1-9.
	Unknown Name = iota
	Button
	SmallBlind
	BigBlind
	UnderTheGun
	UnderTheGunPlusOne
	MiddlePosition1
	MiddlePosition2
	Hijack
	Cutoff
)

// String returns the conventional short name for the position.
func (n Name) String() string {
	switch n {
	case Button:
		return "BTN"
	case SmallBlind:
		return "SB"
	case BigBlind:
		return "BB"
	case UnderTheGun:
		return "UTG"
	case UnderTheGunPlusOne:
		return "UTG+1"
	case MiddlePosition1:
		return "MP1"
	case MiddlePosition2:
		return "MP2"
	case Hijack:
		return "HJ"
	case Cutoff:
		return "CO"
	default:
		return "Unknown"
	}
}

// NameFromString converts a short position name to a Name.
func NameFromString(s string) Name {
	switch s {
	case "BTN", "Button", "Dealer":
		return Button
	case "SB", "Small Blind":
		return SmallBlind
	case "BB", "Big Blind":
		return BigBlind
	case "UTG":
		return UnderTheGun
	case "UTG+1":
		return UnderTheGunPlusOne
	case "MP1":
		return MiddlePosition1
	case "MP2":
		return MiddlePosition2
	case "HJ", "Hijack":
		return Hijack
	case "CO", "Cutoff":
		return Cutoff
	default:
		return Unknown
	}
}

// Category buckets positions for range and frequency reporting.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryBlinds
	CategoryEarly
	CategoryMiddle
	CategoryLate
)

// String returns the category label.
func (c Category) String() string {
	switch c {
	case CategoryBlinds:
		return "Blinds"
	case CategoryEarly:
		return "Early"
	case CategoryMiddle:
		return "Middle"
	case CategoryLate:
		return "Late"
	default:
		return "Unknown"
	}
}

// nameByOffset maps the clockwise offset from the button seat to a
// position name: offset 0 is the button itself, 1 the small blind, and
// so on around the table.
var nameByOffset = [MaxSeats]Name{
	Button, SmallBlind, BigBlind, UnderTheGun, UnderTheGunPlusOne,
	MiddlePosition1, MiddlePosition2, Hijack, Cutoff,
}

func validSeat(seat int) bool {
	return seat >= 1 && seat <= MaxSeats
}

// offset returns the clockwise distance from the button to seat, in
// seats. Both inputs must already be validated.
func offset(seat, button int) int {
	return ((seat - button) + MaxSeats) % MaxSeats
}

// PositionName maps a seat to its position name for the given button
// seat. Invalid input yields Unknown.
func PositionName(seat, button int) Name {
	if !validSeat(seat) || !validSeat(button) {
		return Unknown
	}
	return nameByOffset[offset(seat, button)]
}

// SeatForPosition is the inverse of PositionName: it returns the seat
// holding the named position for the given button seat, or 0 when the
// name or button is invalid.
func SeatForPosition(name Name, button int) int {
	if !validSeat(button) || name == Unknown {
		return 0
	}
	for off, n := range nameByOffset {
		if n == name {
			return (button-1+off)%MaxSeats + 1
		}
	}
	return 0
}

// PostflopOrder returns all 9 seats in postflop acting order: the small
// blind acts first, the button last. Returns nil for an invalid button.
func PostflopOrder(button int) []int {
	if !validSeat(button) {
		return nil
	}
	order := make([]int, MaxSeats)
	for i := 0; i < MaxSeats; i++ {
		order[i] = (button+i)%MaxSeats + 1
	}
	return order
}

// PreflopOrder returns all 9 seats in preflop acting order: under the
// gun acts first, the big blind last. Returns nil for an invalid button.
func PreflopOrder(button int) []int {
	if !validSeat(button) {
		return nil
	}
	order := make([]int, MaxSeats)
	for i := 0; i < MaxSeats; i++ {
		order[i] = (button+2+i)%MaxSeats + 1
	}
	return order
}

// postflopIndex returns the seat's index in the postflop acting order,
// or -1 for invalid input.
func postflopIndex(seat, button int) int {
	if !validSeat(seat) || !validSeat(button) {
		return -1
	}
	// SB (offset 1 from button) acts first, BTN (offset 0) acts last.
	off := offset(seat, button)
	if off == 0 {
		return MaxSeats - 1
	}
	return off - 1
}

// IsInPosition reports whether seatA acts strictly after seatB on
// postflop streets, i.e. seatA has positional advantage over seatB.
// Equal seats or invalid input yield false.
func IsInPosition(seatA, seatB, button int) bool {
	if seatA == seatB {
		return false
	}
	ia, ib := postflopIndex(seatA, button), postflopIndex(seatB, button)
	if ia < 0 || ib < 0 {
		return false
	}
	return ia > ib
}

// IsOutOfPosition reports whether seatA acts strictly before seatB on
// postflop streets. Like IsInPosition it is false for equal seats or
// invalid input, so the two are not simple negations of each other.
func IsOutOfPosition(seatA, seatB, button int) bool {
	if seatA == seatB {
		return false
	}
	ia, ib := postflopIndex(seatA, button), postflopIndex(seatB, button)
	if ia < 0 || ib < 0 {
		return false
	}
	return ia < ib
}

// PositionCategory buckets a seat by its position: the two blinds,
// then the remaining seven seats split early/middle/late, with HJ, CO
// and BTN always late.
func PositionCategory(seat, button int) Category {
	switch PositionName(seat, button) {
	case SmallBlind, BigBlind:
		return CategoryBlinds
	case UnderTheGun, UnderTheGunPlusOne:
		return CategoryEarly
	case MiddlePosition1, MiddlePosition2:
		return CategoryMiddle
	case Hijack, Cutoff, Button:
		return CategoryLate
	default:
		return CategoryUnknown
	}
}

// IsEarlyPosition reports whether the seat is UTG or UTG+1.
func IsEarlyPosition(seat, button int) bool {
	return PositionCategory(seat, button) == CategoryEarly
}

// IsLatePosition reports whether the seat is HJ, CO or BTN.
func IsLatePosition(seat, button int) bool {
	return PositionCategory(seat, button) == CategoryLate
}
