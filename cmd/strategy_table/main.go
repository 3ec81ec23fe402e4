// Prints a cheat sheet of optimal play: the root expected values, the
// higher/lower break-even points for every first card, and the
// inside/outside grid for every pair of reference ranks.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/pterm/pterm"

	"ridethebus"
	"ridethebus/cards"
	"ridethebus/solver"
)

func main() {
	flag.Parse()

	s := solver.New()
	start := time.Now()
	printRoot(s)
	printLatitude(s)
	printBounds(s)
	printSuit()
	glog.Infof("built strategy tables in %v", time.Since(start))
}

// printRoot shows the EVs per unit pot for the opening color guess.
func printRoot(s *solver.Solver) {
	pterm.DefaultSection.Println("PickColor (per unit wagered)")

	data := pterm.TableData{{"Choice", "EV"}}
	data = append(data, []string{ridethebus.Cashout.String(), "1.0000"})
	for _, choice := range ridethebus.PickColor.Choices() {
		ev, err := s.Evaluate(1.0, nil, ridethebus.PickColor, choice)
		if err != nil {
			glog.Exitf("failed to evaluate %v: %v", choice, err)
		}
		data = append(data, []string{choice.String(), fmt.Sprintf("%.4f", ev)})
	}

	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printLatitude shows, for each possible first card rank, the EV of
// higher, lower, and cashing out. The suit of the first card does not
// change its rank comparisons, so one representative suit suffices.
func printLatitude(s *solver.Solver) {
	pterm.DefaultSection.Println("PickLatitude by first card rank (per unit wagered)")

	data := pterm.TableData{{"First card", "Higher", "Lower", "Best"}}
	for rank := uint8(cards.MinRank); rank <= cards.MaxRank; rank++ {
		history := ridethebus.History{cards.NewCard(rank, cards.Hearts)}

		higher, err := s.Evaluate(1.0, history, ridethebus.PickLatitude, ridethebus.Higher)
		if err != nil {
			glog.Exitf("failed to evaluate Higher: %v", err)
		}
		lower, err := s.Evaluate(1.0, history, ridethebus.PickLatitude, ridethebus.Lower)
		if err != nil {
			glog.Exitf("failed to evaluate Lower: %v", err)
		}
		best, err := s.Solve(1.0, ridethebus.PickLatitude, history)
		if err != nil {
			glog.Exitf("failed to solve PickLatitude: %v", err)
		}

		data = append(data, []string{
			history[0].String(),
			fmt.Sprintf("%.4f", higher),
			fmt.Sprintf("%.4f", lower),
			best.Choice.String(),
		})
	}

	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printBounds shows the optimal inside/outside/cashout action for every
// pair of reference ranks.
func printBounds(s *solver.Solver) {
	pterm.DefaultSection.Println("PickBounds best action by reference ranks (I=Inside, O=Outside, C=Cashout)")

	header := []string{""}
	for rank := uint8(cards.MinRank); rank <= cards.MaxRank; rank++ {
		header = append(header, cards.RankString(rank))
	}
	data := pterm.TableData{header}

	for r1 := uint8(cards.MinRank); r1 <= cards.MaxRank; r1++ {
		row := []string{cards.RankString(r1)}
		for r2 := uint8(cards.MinRank); r2 <= cards.MaxRank; r2++ {
			// Distinct suits keep the two reference cards distinct
			// when the ranks coincide.
			history := ridethebus.History{
				cards.NewCard(r1, cards.Hearts),
				cards.NewCard(r2, cards.Spades),
			}

			best, err := s.Solve(1.0, ridethebus.PickBounds, history)
			if err != nil {
				glog.Exitf("failed to solve PickBounds: %v", err)
			}
			row = append(row, best.Choice.String()[:1])
		}
		data = append(data, row)
	}

	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printSuit() {
	pterm.DefaultSection.Println("PickSuit")
	pterm.Info.Println("A correct suit pays 10/4, but at most 13 of the ~49 remaining cards " +
		"match any suit: always cash out at the final stage.")
}
