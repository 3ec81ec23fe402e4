package ridethebus

import (
	"expvar"
	"fmt"
	"math/rand"

	"github.com/timpalpant/go-cfr"

	"ridethebus/cards"
)

var (
	nodesVisited         = expvar.NewInt("nodes_visited")
	terminalNodesVisited = expvar.NewInt("nodes_visited/terminal")
	decisionNodesVisited = expvar.NewInt("nodes_visited/decision")
	chanceNodesVisited   = expvar.NewInt("nodes_visited/chance")
)

// turnType represents the kind of turn at a given point in the game.
type turnType uint8

const (
	_ turnType = iota
	// Decide: the player picks cashout or one of the decision's choices.
	Decide
	// Reveal: the dealer draws one of the remaining cards, uniformly.
	Reveal
	// GameOver: the pot is settled, by cashout, bust, or the last decision.
	GameOver
)

var turnTypeStr = [...]string{
	"Invalid",
	"Decide",
	"Reveal",
	"GameOver",
}

func (tt turnType) String() string {
	return turnTypeStr[tt]
}

// GameNode implements cfr.GameTreeNode for the four-stage guessing game.
// GameNode represents one state in the extensive-form game tree: decision
// states are player nodes, card reveals are uniform chance nodes, and the
// terminal utility is the final pot.
type GameNode struct {
	pot      float64
	history  History
	decision Decision
	// choice is the committed guess a Reveal node resolves.
	choice   Choice
	turnType turnType

	// children are the possible next states in the game.
	// Which child is realized depends on the player or on chance.
	children []GameNode
	parent   *GameNode

	rng *rand.Rand
}

// Verify that we implement the interface.
var _ cfr.GameTreeNode = &GameNode{}

// NewGame creates the root node for a fresh game: the given pot, an
// empty history, and the first decision in the chain.
func NewGame(pot float64) *GameNode {
	return NewGameAt(pot, PickColor, nil)
}

// NewGameAt creates a decision node for an arbitrary mid-game state.
func NewGameAt(pot float64, decision Decision, history History) *GameNode {
	return &GameNode{
		pot:      pot,
		history:  history,
		decision: decision,
		turnType: Decide,
		rng:      rand.New(rand.NewSource(rand.Int63())),
	}
}

// Type implements cfr.GameTreeNode.
func (gn *GameNode) Type() cfr.NodeType {
	switch gn.turnType {
	case Reveal:
		return cfr.ChanceNodeType
	case GameOver:
		return cfr.TerminalNodeType
	default:
		return cfr.PlayerNodeType
	}
}

// Player implements cfr.GameTreeNode. The game is single-player.
func (gn *GameNode) Player() int {
	return 0
}

// InfoSet implements cfr.GameTreeNode. The game has no hidden
// information, so the info set is the full state.
func (gn *GameNode) InfoSet(player int) cfr.InfoSet {
	return &InfoSet{
		Decision: gn.decision,
		Pot:      gn.pot,
		History:  gn.history,
	}
}

// Utility implements cfr.GameTreeNode: the pot the player walks away with.
func (gn *GameNode) Utility(player int) float64 {
	if gn.Type() != cfr.TerminalNodeType {
		panic("cannot get the utility of a non-terminal node")
	}

	return gn.pot
}

// Pot returns the accumulated wager multiple at this node.
func (gn *GameNode) Pot() float64 {
	return gn.pot
}

// GetHistory returns the cards revealed on the path to this node,
// most recent first.
func (gn *GameNode) GetHistory() History {
	return gn.history
}

// String implements fmt.Stringer.
func (gn *GameNode) String() string {
	return fmt.Sprintf("%v at %v: pot %.4f, %d cards seen: %v",
		gn.turnType, gn.decision, gn.pot, len(gn.history), gn.history.Set())
}

func (gn *GameNode) allocChildren(n int) {
	gn.children = allocGameNodeSlice(n)
	// Children start as a copy of the current node, without any
	// children of their own (each child's children must be built).
	childPrototype := *gn
	childPrototype.children = nil
	childPrototype.parent = gn
	for i := 0; i < n; i++ {
		gn.children = append(gn.children, childPrototype)
	}
}

func (gn *GameNode) buildChildren() {
	if len(gn.children) > 0 {
		return // Already built.
	}

	switch gn.turnType {
	case Decide:
		gn.buildDecideChildren()
	case Reveal:
		gn.buildRevealChildren()
	case GameOver:
	default:
		panic("unimplemented turn type!")
	}
}

// buildDecideChildren creates one terminal child for cashout and one
// Reveal child per choice in the catalog.
func (gn *GameNode) buildDecideChildren() {
	choices := gn.decision.Choices()
	gn.allocChildren(len(choices) + 1)

	cashout := &gn.children[0]
	cashout.choice = Cashout
	cashout.turnType = GameOver

	for i, choice := range choices {
		child := &gn.children[i+1]
		child.choice = choice
		child.turnType = Reveal
	}
}

// buildRevealChildren creates one child per card still in the deck:
// score the committed guess against the revealed card, then continue
// into the next decision, or settle the pot if the guess busted or the
// chain is exhausted.
func (gn *GameNode) buildRevealChildren() {
	remaining := cards.Remaining(gn.history)
	gn.allocChildren(remaining.Len())
	i := 0
	remaining.Iter(func(card cards.Card) {
		child := &gn.children[i]
		child.history = gn.history.Prepend(card)
		child.pot = gn.pot * Score(gn.choice, child.history)

		next, ok := gn.decision.Next()
		if child.pot == 0 || !ok {
			child.turnType = GameOver
		} else {
			child.decision = next
			child.turnType = Decide
		}

		i++
	})
}

// NumChildren implements cfr.GameTreeNode.
func (gn *GameNode) NumChildren() int {
	if gn.children == nil {
		gn.buildChildren()
	}

	return len(gn.children)
}

// GetChild implements cfr.GameTreeNode.
func (gn *GameNode) GetChild(i int) cfr.GameTreeNode {
	if gn.children == nil {
		gn.buildChildren()
	}

	return &gn.children[i]
}

// Parent implements cfr.GameTreeNode.
func (gn *GameNode) Parent() cfr.GameTreeNode {
	return gn.parent
}

// GetChildProbability implements cfr.GameTreeNode.
func (gn *GameNode) GetChildProbability(i int) float64 {
	if gn.Type() != cfr.ChanceNodeType {
		panic("cannot get the probability of a non-chance node")
	}

	// Uniform random over all remaining cards.
	return 1.0 / float64(gn.NumChildren())
}

// SampleChild implements cfr.GameTreeNode.
func (gn *GameNode) SampleChild() (cfr.GameTreeNode, float64) {
	selected := gn.rng.Intn(gn.NumChildren())
	return gn.GetChild(selected), gn.GetChildProbability(selected)
}

// Close implements cfr.GameTreeNode.
func (gn *GameNode) Close() {
	nodesVisited.Add(1)
	switch gn.Type() {
	case cfr.TerminalNodeType:
		terminalNodesVisited.Add(1)
	case cfr.PlayerNodeType:
		decisionNodesVisited.Add(1)
	case cfr.ChanceNodeType:
		chanceNodesVisited.Add(1)
	}

	freeGameNodeSlice(gn.children)
	gn.children = nil
}
