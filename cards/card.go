package cards

import (
	"strings"

	"github.com/pkg/errors"
)

// Card represents one card from a standard 52-card deck, encoded in 0-51.
//
// The low 2 bits hold the suit, the remaining bits hold the rank offset:
// rank = card>>2 + 2. Packing both into a single byte keeps Card cheap to
// copy and lets Set use one bit per card.
type Card uint8

// NumCards is the number of distinct cards in the deck.
const NumCards = 52

// Suit represents one of the four suits.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

var suitStr = [...]string{"H", "D", "S", "C"}

// String implements Stringer.
func (s Suit) String() string {
	return suitStr[s]
}

// Color represents the color of a suit.
type Color uint8

const (
	Red Color = iota
	Black
)

var colorStr = [...]string{"Red", "Black"}

// String implements Stringer.
func (c Color) String() string {
	return colorStr[c]
}

// MinRank and MaxRank bound Card ranks. 11=Jack, 12=Queen, 13=King, 14=Ace.
const (
	MinRank = 2
	MaxRank = 14
)

var rankStr = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// NewCard builds the Card with the given rank (2-14) and suit.
func NewCard(rank uint8, suit Suit) Card {
	return Card((rank-MinRank)<<2) | Card(suit)
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return Suit(c & 0b11)
}

// Color returns the color of the card: Hearts and Diamonds are Red,
// Spades and Clubs are Black.
func (c Card) Color() Color {
	return Color((c & 0b10) >> 1)
}

// Rank returns the rank of the card, 2-14 with Ace high.
func (c Card) Rank() uint8 {
	return uint8(c>>2) + MinRank
}

// RankString returns the display form of a rank, e.g. "10", "Q", "A".
func RankString(rank uint8) string {
	return rankStr[rank-MinRank]
}

// String implements Stringer. Cards render as rank then suit, e.g.
// "2H", "10C", "QD", "AS".
func (c Card) String() string {
	return RankString(c.Rank()) + c.Suit().String()
}

// ParseCard parses the String form of a Card, case-insensitively.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for c := Card(0); c < NumCards; c++ {
		if c.String() == s {
			return c, nil
		}
	}

	return 0, errors.Errorf("invalid card: %q", s)
}
