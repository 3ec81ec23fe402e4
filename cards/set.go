package cards

import (
	"fmt"
	"math/bits"
	"strings"
)

// Set represents an unordered set of distinct cards.
//
// Every card in the deck is distinct, so one bit per card suffices:
// bit i is set iff Card(i) is in the Set. All 52 cards fit in a
// single uint64, making membership, union and difference O(1).
type Set uint64

const fullMask = Set(1<<NumCards) - 1

// NewSet returns an empty Set.
func NewSet() Set {
	return Set(0)
}

// NewSetFromCards creates a new Set from the given slice of Cards.
func NewSetFromCards(cards []Card) Set {
	result := Set(0)
	for _, card := range cards {
		result.Add(card)
	}

	return result
}

// FullDeck returns the Set of all 52 cards.
func FullDeck() Set {
	return fullMask
}

// Remaining returns the full deck minus every card in history.
func Remaining(history []Card) Set {
	return fullMask &^ NewSetFromCards(history)
}

// IsEmpty returns whether this Set contains any Cards.
func (s Set) IsEmpty() bool {
	return s == 0
}

// Contains returns whether the Set contains the given Card.
func (s Set) Contains(card Card) bool {
	return s&(1<<card) != 0
}

// Len gets the number of Cards in the Set.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// CountSuit returns the number of cards of the given suit in the Set.
func (s Set) CountSuit(suit Suit) int {
	n := 0
	s.Iter(func(card Card) {
		if card.Suit() == suit {
			n++
		}
	})
	return n
}

// Iter calls cb for each Card in the Set, in increasing encoded order.
func (s Set) Iter(cb func(card Card)) {
	for s != 0 {
		card := Card(bits.TrailingZeros64(uint64(s)))
		cb(card)
		s &= s - 1
	}
}

// AsSlice returns the Cards in the Set as a slice.
func (s Set) AsSlice() []Card {
	result := make([]Card, 0, s.Len())
	s.Iter(func(card Card) {
		result = append(result, card)
	})

	return result
}

// Add includes the given Card in the Set.
func (s *Set) Add(card Card) {
	*s |= 1 << card
}

// Remove removes the given Card from the Set.
// Remove panics if the card is not present in the Set.
func (s *Set) Remove(card Card) {
	if !s.Contains(card) {
		panic(fmt.Errorf("card %v not in set", card))
	}

	*s &^= 1 << card
}

// String implements Stringer.
func (s Set) String() string {
	result := make([]string, 0, s.Len())
	s.Iter(func(card Card) {
		result = append(result, card.String())
	})

	return "{" + strings.Join(result, ", ") + "}"
}
