package ridethebus

import (
	"math"
	"testing"

	"github.com/timpalpant/go-cfr"

	"ridethebus/cards"
)

func TestNewGameIsDecisionNode(t *testing.T) {
	game := NewGame(1.0)
	if game.Type() != cfr.PlayerNodeType {
		t.Errorf("root node has type %v, expected player node", game.Type())
	}
	if game.Player() != 0 {
		t.Errorf("root node belongs to player %d, expected 0", game.Player())
	}
}

func TestDecideChildren(t *testing.T) {
	game := NewGame(1.0)
	// Cashout plus one reveal per choice.
	if n := game.NumChildren(); n != len(PickColor.Choices())+1 {
		t.Fatalf("root has %d children, expected %d", n, len(PickColor.Choices())+1)
	}

	cashout := game.GetChild(0)
	if cashout.Type() != cfr.TerminalNodeType {
		t.Errorf("cashout child has type %v, expected terminal", cashout.Type())
	}
	if u := cashout.Utility(0); u != 1.0 {
		t.Errorf("cashout utility is %v, expected the unchanged pot", u)
	}

	for i := 1; i < game.NumChildren(); i++ {
		if child := game.GetChild(i); child.Type() != cfr.ChanceNodeType {
			t.Errorf("choice child %d has type %v, expected chance", i, child.Type())
		}
	}
}

func TestRevealChildren(t *testing.T) {
	history := History{cards.NewCard(14, cards.Diamonds)}
	game := NewGameAt(2.0, PickLatitude, history)

	reveal := game.GetChild(1).(*GameNode) // Higher
	if n := reveal.NumChildren(); n != cards.NumCards-len(history) {
		t.Fatalf("reveal node has %d children, expected %d", n, cards.NumCards-len(history))
	}

	total := 0.0
	for i := 0; i < reveal.NumChildren(); i++ {
		total += reveal.GetChildProbability(i)
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Errorf("chance probabilities sum to %v, expected 1", total)
	}

	for i := 0; i < reveal.NumChildren(); i++ {
		child := reveal.GetChild(i).(*GameNode)
		if len(child.GetHistory()) != len(history)+1 {
			t.Errorf("reveal child has history of %d cards, expected %d",
				len(child.GetHistory()), len(history)+1)
		}
		// Ace is the highest rank: Higher only survives on another ace.
		if child.Pot() > 0 && child.GetHistory()[0].Rank() != 14 {
			t.Errorf("Higher survived a %v after an ace", child.GetHistory()[0])
		}
	}
}

func TestBustIsTerminal(t *testing.T) {
	game := NewGame(1.0)
	reveal := game.GetChild(1).(*GameNode) // Red
	for i := 0; i < reveal.NumChildren(); i++ {
		child := reveal.GetChild(i).(*GameNode)
		if child.Pot() == 0 && child.Type() != cfr.TerminalNodeType {
			t.Errorf("busted child has type %v, expected terminal", child.Type())
		}
	}
}

func TestSampleChild(t *testing.T) {
	game := NewGame(1.0)
	reveal := game.GetChild(1).(*GameNode)
	child, p := reveal.SampleChild()
	if child == nil {
		t.Fatal("sampled nil child")
	}
	if expected := 1.0 / float64(cards.NumCards); math.Abs(p-expected) > 1e-9 {
		t.Errorf("sampled child with probability %v, expected %v", p, expected)
	}
}

// The terminal decision is small enough to check the full subtree value:
// at PickSuit every single-suit guess is dominated by cashing out.
func TestTerminalDecisionExpectimax(t *testing.T) {
	history := History{cards.NewCard(5, cards.Hearts), cards.NewCard(13, cards.Clubs)}
	game := NewGameAt(4.0, PickSuit, history)

	if ev := expectimax(game); math.Abs(ev-4.0) > 1e-9 {
		t.Errorf("PickSuit state has value %v, expected cashout value 4", ev)
	}
}

func expectimax(node cfr.GameTreeNode) float64 {
	switch node.Type() {
	case cfr.TerminalNodeType:
		return node.Utility(0)
	case cfr.ChanceNodeType:
		ev := 0.0
		for i := 0; i < node.NumChildren(); i++ {
			ev += node.GetChildProbability(i) * expectimax(node.GetChild(i))
		}
		return ev
	default:
		best := math.Inf(-1)
		for i := 0; i < node.NumChildren(); i++ {
			if v := expectimax(node.GetChild(i)); v > best {
				best = v
			}
		}
		return best
	}
}
