package ridethebus

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"github.com/timpalpant/go-cfr"

	"ridethebus/cards"
)

// InfoSet identifies a decision state. The game is single-player with
// no hidden information, so the info set is the full public state.
type InfoSet struct {
	Decision Decision
	Pot      float64
	History  History
}

var _ cfr.InfoSet = &InfoSet{}

// Key implements cfr.InfoSet.
func (is *InfoSet) Key() string {
	buf, _ := is.MarshalBinary()
	return string(buf)
}

// MarshalBinary implements encoding.BinaryMarshaler. The layout is one
// byte of decision, eight bytes of pot, then one byte per history card.
func (is *InfoSet) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 1+8+len(is.History))
	buf = append(buf, byte(is.Decision))

	var potBuf [8]byte
	binary.LittleEndian.PutUint64(potBuf[:], math.Float64bits(is.Pot))
	buf = append(buf, potBuf[:]...)

	for _, card := range is.History {
		buf = append(buf, byte(card))
	}

	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (is *InfoSet) UnmarshalBinary(buf []byte) error {
	if len(buf) < 9 {
		return errors.Errorf("buffer with %d bytes is too short for info set", len(buf))
	}

	is.Decision = Decision(buf[0])
	is.Pot = math.Float64frombits(binary.LittleEndian.Uint64(buf[1:9]))

	is.History = is.History[:0]
	for _, b := range buf[9:] {
		is.History = append(is.History, cards.Card(b))
	}

	return nil
}
