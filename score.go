package ridethebus

import (
	"ridethebus/cards"
)

// Payout multipliers for a correct guess at each decision.
// Cumulatively: 1x -> 2x -> 3x -> 4x -> 10x.
const (
	colorPayout    = 2.0
	latitudePayout = 3.0 / 2.0
	boundsPayout   = 4.0 / 3.0
	suitPayout     = 10.0 / 4.0
)

// Score returns the payout multiplier for choosing choice when the
// extended history has the newly revealed card at the front. A score
// of 0 means the guess was wrong and the pot is lost.
//
// The clauses are mutually exclusive by construction: exactly one
// choice per decision scores nonzero for any given card.
func Score(choice Choice, extended History) float64 {
	switch choice {
	case Cashout:
		return 1.0

	case Red:
		if extended[0].Color() == cards.Red {
			return colorPayout
		}
	case Black:
		if extended[0].Color() == cards.Black {
			return colorPayout
		}

	case Higher:
		// Ties count as higher.
		if extended[0].Rank() >= extended[1].Rank() {
			return latitudePayout
		}
	case Lower:
		if extended[0].Rank() < extended[1].Rank() {
			return latitudePayout
		}

	case Inside:
		lo, hi := boundRanks(extended)
		if r := extended[0].Rank(); lo <= r && r <= hi {
			return boundsPayout
		}
	case Outside:
		lo, hi := boundRanks(extended)
		if r := extended[0].Rank(); r < lo || r > hi {
			return boundsPayout
		}

	case Hearts:
		if extended[0].Suit() == cards.Hearts {
			return suitPayout
		}
	case Diamonds:
		if extended[0].Suit() == cards.Diamonds {
			return suitPayout
		}
	case Spades:
		if extended[0].Suit() == cards.Spades {
			return suitPayout
		}
	case Clubs:
		if extended[0].Suit() == cards.Clubs {
			return suitPayout
		}
	}

	return 0
}

// boundRanks returns the inclusive rank bounds set by the two reference
// cards shown before the newest one.
func boundRanks(extended History) (lo, hi uint8) {
	r1, r2 := extended[1].Rank(), extended[2].Rank()
	if r1 <= r2 {
		return r1, r2
	}

	return r2, r1
}
