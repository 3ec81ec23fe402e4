package cards

import (
	"testing"
)

func TestFullDeck(t *testing.T) {
	deck := FullDeck()
	if deck.Len() != NumCards {
		t.Errorf("full deck has %d cards, expected %d", deck.Len(), NumCards)
	}

	for c := Card(0); c < NumCards; c++ {
		if !deck.Contains(c) {
			t.Errorf("full deck missing %v", c)
		}
	}

	for _, suit := range []Suit{Hearts, Diamonds, Spades, Clubs} {
		if n := deck.CountSuit(suit); n != 13 {
			t.Errorf("full deck has %d %v cards, expected 13", n, suit)
		}
	}
}

func TestNewSetFromCards(t *testing.T) {
	testCards := []Card{NewCard(5, Hearts), NewCard(13, Clubs), NewCard(14, Diamonds)}
	set := NewSetFromCards(testCards)
	if set.Len() != len(testCards) {
		t.Errorf("card set has len %d, expected %d", set.Len(), len(testCards))
	}

	for _, card := range testCards {
		if !set.Contains(card) {
			t.Errorf("card set is missing %v", card)
		}
	}

	if set.Contains(NewCard(5, Spades)) {
		t.Error("card set contains unexpected card")
	}
}

func TestRemaining(t *testing.T) {
	history := []Card{NewCard(14, Diamonds), NewCard(5, Hearts)}
	remaining := Remaining(history)
	if remaining.Len() != NumCards-len(history) {
		t.Errorf("remaining has %d cards, expected %d", remaining.Len(), NumCards-len(history))
	}

	for _, card := range history {
		if remaining.Contains(card) {
			t.Errorf("remaining contains drawn card %v", card)
		}
	}
}

func TestAddRemove(t *testing.T) {
	set := NewSet()
	card := NewCard(7, Spades)
	set.Add(card)
	if !set.Contains(card) || set.Len() != 1 {
		t.Errorf("got unexpected set: %v", set)
	}

	// Adding twice is a no-op for a distinct-card set.
	set.Add(card)
	if set.Len() != 1 {
		t.Errorf("got unexpected set: %v", set)
	}

	set.Remove(card)
	if !set.IsEmpty() {
		t.Errorf("got unexpected set: %v", set)
	}
}

func TestRemove_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic when removing non-existent card")
		}
	}()

	set := NewSetFromCards([]Card{NewCard(7, Spades)})
	set.Remove(NewCard(7, Clubs))
}

func TestIterOrdered(t *testing.T) {
	set := FullDeck()
	prev := -1
	set.Iter(func(card Card) {
		if int(card) <= prev {
			t.Errorf("iteration out of order: %d after %d", card, prev)
		}
		prev = int(card)
	})
}

func TestAsSlice(t *testing.T) {
	testCards := []Card{NewCard(2, Hearts), NewCard(9, Diamonds), NewCard(14, Clubs)}
	set := NewSetFromCards(testCards)
	slice := set.AsSlice()
	if len(slice) != len(testCards) {
		t.Fatalf("slice has %d cards, expected %d", len(slice), len(testCards))
	}

	for _, card := range testCards {
		found := false
		for _, got := range slice {
			if got == card {
				found = true
			}
		}
		if !found {
			t.Errorf("slice is missing %v", card)
		}
	}
}
