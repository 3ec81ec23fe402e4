// Package solver computes exact expected values for optimal play of the
// four-stage guessing game by exhaustively enumerating every remaining
// card at every decision.
package solver

import (
	"math"
	"runtime"
	"sync"

	"github.com/pkg/errors"

	"ridethebus"
	"ridethebus/cards"
)

// Result holds the optimal action at a decision node and its expected value.
type Result struct {
	Choice ridethebus.Choice
	EV     float64
}

// Outcome is the value realized when a specific card is revealed after
// committing to a choice.
type Outcome struct {
	Card  cards.Card
	Value float64
}

// memoKey identifies every state with the same optimal EV per unit pot.
// The drawn-card set is required because the chance node averages over
// the remaining deck; the ranks cover the positions the scoring rules
// read (PickLatitude: the last seen card, PickBounds: the last two).
type memoKey struct {
	decision ridethebus.Decision
	drawn    cards.Set
	rank0    uint8
	rank1    uint8
}

func newMemoKey(decision ridethebus.Decision, history ridethebus.History) memoKey {
	key := memoKey{decision: decision, drawn: history.Set()}
	if decision.MinHistory() >= 1 {
		key.rank0 = history[0].Rank()
	}
	if decision.MinHistory() >= 2 {
		key.rank1 = history[1].Rank()
	}

	return key
}

// Solver evaluates decision nodes (maximize over cashout and every
// choice) and chance nodes (average over every remaining card).
//
// EV is linear in pot, so the memo caches EV per unit pot and actual
// pots are applied at use time. The memo is safe for concurrent use;
// a Solver may be shared and reused across calls.
type Solver struct {
	mu      sync.RWMutex
	memo    map[memoKey]float64
	workers int
}

// New creates a Solver that fans out top-level chance evaluations
// across up to runtime.NumCPU() workers.
func New() *Solver {
	return &Solver{
		memo:    make(map[memoKey]float64),
		workers: runtime.NumCPU(),
	}
}

// Solve returns the optimal action and its EV for the given state.
// It is the root entry point and the same maximization applied
// recursively at every interior decision.
//
// Ties resolve deterministically: candidates are scanned cashout first,
// then in catalog order, and a candidate replaces the incumbent only on
// strictly greater EV. An exact tie therefore prefers cashout, then the
// earliest-declared choice.
func (s *Solver) Solve(pot float64, decision ridethebus.Decision, history ridethebus.History) (Result, error) {
	if err := validate(pot, history, decision); err != nil {
		return Result{}, err
	}

	best, unitEV := s.bestChoice(history, decision, true)
	return Result{Choice: best, EV: unitEV * pot}, nil
}

// Evaluate returns the EV of committing to one choice at one decision:
// the unweighted mean outcome over every card still in the deck.
// Evaluating Cashout ends the game, so its EV is the pot unchanged.
func (s *Solver) Evaluate(pot float64, history ridethebus.History, decision ridethebus.Decision, choice ridethebus.Choice) (float64, error) {
	if err := validateChoice(pot, history, decision, choice); err != nil {
		return 0, err
	}

	if choice == ridethebus.Cashout {
		return pot, nil
	}

	return pot * s.choiceUnitEV(history, decision, choice, true), nil
}

// Outcomes returns the per-card outcome values behind Evaluate, one per
// remaining card. Evaluate is exactly the mean of the returned values.
func (s *Solver) Outcomes(pot float64, history ridethebus.History, decision ridethebus.Decision, choice ridethebus.Choice) ([]Outcome, error) {
	if err := validateChoice(pot, history, decision, choice); err != nil {
		return nil, err
	}
	if choice == ridethebus.Cashout {
		return nil, errors.New("cashout does not reveal a card")
	}

	remaining := cards.Remaining(history)
	result := make([]Outcome, 0, remaining.Len())
	remaining.Iter(func(card cards.Card) {
		result = append(result, Outcome{
			Card:  card,
			Value: pot * s.unitOutcome(history, decision, choice, card),
		})
	})

	return result, nil
}

// bestChoice is the decision node: the maximum EV per unit pot over
// cashout (identity) and every choice in the catalog.
func (s *Solver) bestChoice(history ridethebus.History, decision ridethebus.Decision, parallel bool) (ridethebus.Choice, float64) {
	best, bestEV := ridethebus.Cashout, 1.0
	for _, choice := range decision.Choices() {
		if ev := s.choiceUnitEV(history, decision, choice, parallel); ev > bestEV {
			best, bestEV = choice, ev
		}
	}

	return best, bestEV
}

// bestUnitEV memoizes the decision-node value for the recursion.
func (s *Solver) bestUnitEV(history ridethebus.History, decision ridethebus.Decision) float64 {
	key := newMemoKey(decision, history)
	s.mu.RLock()
	ev, ok := s.memo[key]
	s.mu.RUnlock()
	if ok {
		return ev
	}

	_, ev = s.bestChoice(history, decision, false)

	s.mu.Lock()
	s.memo[key] = ev
	s.mu.Unlock()
	return ev
}

// choiceUnitEV is the chance node: the unweighted arithmetic mean of
// the outcome per unit pot over every remaining card. Each remaining
// card is equally likely, so a rank with more remaining suited cards
// carries proportionally more weight by natural count.
//
// When parallel, per-card outcomes fan out across a bounded worker
// set. Results land in a slice indexed by card order and are reduced
// serially, so the sum is bit-identical regardless of scheduling.
func (s *Solver) choiceUnitEV(history ridethebus.History, decision ridethebus.Decision, choice ridethebus.Choice, parallel bool) float64 {
	remaining := cards.Remaining(history)
	sum := 0.0
	if !parallel || s.workers < 2 {
		remaining.Iter(func(card cards.Card) {
			sum += s.unitOutcome(history, decision, choice, card)
		})
		return sum / float64(remaining.Len())
	}

	outcomes := make([]float64, remaining.Len())
	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup
	i := 0
	remaining.Iter(func(card cards.Card) {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i] = s.unitOutcome(history, decision, choice, card)
			<-sem
		}(i)
		i++
	})

	wg.Wait()
	for _, v := range outcomes {
		sum += v
	}

	return sum / float64(remaining.Len())
}

// unitOutcome resolves one chance event per unit pot: score the revealed
// card, then either stop (bust, or terminal decision) or continue
// optimally into the next decision with the scaled pot.
func (s *Solver) unitOutcome(history ridethebus.History, decision ridethebus.Decision, choice ridethebus.Choice, card cards.Card) float64 {
	extended := history.Prepend(card)
	score := ridethebus.Score(choice, extended)
	next, ok := decision.Next()
	if score == 0 || !ok {
		return score
	}

	return score * s.bestUnitEV(extended, next)
}

func validate(pot float64, history ridethebus.History, decision ridethebus.Decision) error {
	if pot <= 0 || math.IsNaN(pot) || math.IsInf(pot, 0) {
		return errors.Wrapf(ErrInvalidPot, "pot %v", pot)
	}

	if decision > ridethebus.PickSuit {
		return errors.Wrapf(ErrUnknownChoice, "no such decision %d", decision)
	}

	if history.HasDuplicate() {
		return errors.Wrap(ErrInvalidHistory, "duplicate card")
	}

	// Every remaining decision reveals one more card.
	decisionsLeft := int(ridethebus.NumDecisions - decision)
	if cards.NumCards-len(history) < decisionsLeft {
		return errors.Wrapf(ErrInvalidHistory,
			"%d cards remain for %d decisions", cards.NumCards-len(history), decisionsLeft)
	}

	if len(history) < decision.MinHistory() {
		return errors.Wrapf(ErrInsufficientHistory,
			"%v requires %d cards, got %d", decision, decision.MinHistory(), len(history))
	}

	return nil
}

func validateChoice(pot float64, history ridethebus.History, decision ridethebus.Decision, choice ridethebus.Choice) error {
	if err := validate(pot, history, decision); err != nil {
		return err
	}

	if !decision.HasChoice(choice) {
		return errors.Wrapf(ErrUnknownChoice, "%v at %v", choice, decision)
	}

	return nil
}
