package ridethebus

import (
	"ridethebus/cards"
)

// Decision represents one stage of the fixed four-stage choice chain.
// The chain is linear: PickColor -> PickLatitude -> PickBounds -> PickSuit.
type Decision uint8

const (
	PickColor Decision = iota
	PickLatitude
	PickBounds
	PickSuit

	// NumDecisions is the length of the decision chain.
	NumDecisions = 4
)

var decisionStr = [...]string{
	"PickColor",
	"PickLatitude",
	"PickBounds",
	"PickSuit",
}

// String implements Stringer.
func (d Decision) String() string {
	return decisionStr[d]
}

// Choice represents a selectable option within a Decision. Cashout is
// available at every decision and always scores the identity multiplier.
type Choice uint8

const (
	Cashout Choice = iota

	// PickColor choices.
	Red
	Black

	// PickLatitude choices.
	Higher
	Lower

	// PickBounds choices.
	Inside
	Outside

	// PickSuit choices.
	Hearts
	Diamonds
	Spades
	Clubs
)

var choiceStr = [...]string{
	"Cashout",
	"Red",
	"Black",
	"Higher",
	"Lower",
	"Inside",
	"Outside",
	"Hearts",
	"Diamonds",
	"Spades",
	"Clubs",
}

// String implements Stringer.
func (c Choice) String() string {
	return choiceStr[c]
}

var decisionChoices = [NumDecisions][]Choice{
	PickColor:    {Red, Black},
	PickLatitude: {Higher, Lower},
	PickBounds:   {Inside, Outside},
	PickSuit:     {Hearts, Diamonds, Spades, Clubs},
}

// Required history depth for each decision's scoring rule: PickLatitude
// compares against the last seen card, PickBounds against the last two.
var decisionMinHistory = [NumDecisions]int{
	PickColor:    0,
	PickLatitude: 1,
	PickBounds:   2,
	PickSuit:     0,
}

// Choices returns the choices available at this decision, in declared
// order. Cashout is not included; it is always available.
func (d Decision) Choices() []Choice {
	return decisionChoices[d]
}

// Next returns the decision that follows this one in the chain,
// or ok=false if this is the terminal decision.
func (d Decision) Next() (next Decision, ok bool) {
	if d >= PickSuit {
		return 0, false
	}

	return d + 1, true
}

// MinHistory returns the number of previously revealed cards this
// decision's scoring rule reads.
func (d Decision) MinHistory() int {
	return decisionMinHistory[d]
}

// HasChoice returns whether the given choice is available at this decision.
// Cashout is available at every decision.
func (d Decision) HasChoice(choice Choice) bool {
	if choice == Cashout {
		return true
	}

	for _, c := range d.Choices() {
		if c == choice {
			return true
		}
	}

	return false
}

// History is the ordered record of revealed cards in one game path,
// most recent first. Histories are threaded by value through the
// recursion: Prepend returns a new History and never mutates its
// receiver's backing array in place.
type History []cards.Card

// Prepend returns a new History with card at the front.
func (h History) Prepend(card cards.Card) History {
	result := make(History, 0, len(h)+1)
	result = append(result, card)
	result = append(result, h...)
	return result
}

// Set returns the unordered Set of cards in the history.
func (h History) Set() cards.Set {
	return cards.NewSetFromCards(h)
}

// HasDuplicate returns whether any card appears twice in the history.
func (h History) HasDuplicate() bool {
	return h.Set().Len() != len(h)
}
