package ridethebus

import (
	"testing"

	"ridethebus/cards"
)

func TestInfoSetRoundtrip(t *testing.T) {
	is := &InfoSet{
		Decision: PickBounds,
		Pot:      3.0,
		History:  History{cards.NewCard(9, cards.Spades), cards.NewCard(2, cards.Hearts)},
	}

	buf, err := is.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	got := &InfoSet{}
	if err := got.UnmarshalBinary(buf); err != nil {
		t.Fatal(err)
	}

	if got.Decision != is.Decision || got.Pot != is.Pot {
		t.Errorf("roundtrip gave %+v, expected %+v", got, is)
	}
	if len(got.History) != len(is.History) {
		t.Fatalf("roundtrip gave %d history cards, expected %d", len(got.History), len(is.History))
	}
	for i, card := range is.History {
		if got.History[i] != card {
			t.Errorf("roundtrip history card %d is %v, expected %v", i, got.History[i], card)
		}
	}
}

func TestInfoSetKeyDistinguishesStates(t *testing.T) {
	a := &InfoSet{Decision: PickColor, Pot: 1.0}
	b := &InfoSet{Decision: PickLatitude, Pot: 1.0}
	c := &InfoSet{Decision: PickColor, Pot: 2.0}
	d := &InfoSet{Decision: PickColor, Pot: 1.0, History: History{cards.NewCard(2, cards.Hearts)}}

	keys := map[string]bool{}
	for _, is := range []*InfoSet{a, b, c, d} {
		keys[is.Key()] = true
	}

	if len(keys) != 4 {
		t.Errorf("got %d distinct keys for 4 distinct states", len(keys))
	}
}

func TestInfoSetUnmarshalShortBuffer(t *testing.T) {
	is := &InfoSet{}
	if err := is.UnmarshalBinary([]byte{1, 2, 3}); err == nil {
		t.Error("expected error unmarshaling short buffer")
	}
}
