// Interactive advisor for playing Ride the Bus: shows the expected value
// of every available action at each stage and tracks the game as cards
// are revealed.
package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"ridethebus"
	"ridethebus/cards"
	"ridethebus/solver"
)

const (
	optionBack = "Back (undo last card)"
	optionQuit = "Quit"
)

func main() {
	pot := flag.Float64("pot", 1.0, "Initial wager multiple")
	flag.Parse()
	go http.ListenAndServe("localhost:4123", nil)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Ride", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("TheBus", pterm.FgDarkGray.ToStyle()),
	).Render()

	s := solver.New()
	start := time.Now()
	root, err := s.Solve(*pot, ridethebus.PickColor, nil)
	if err != nil {
		glog.Exitf("failed to solve game: %v", err)
	}
	glog.Infof("solved all games in %v", time.Since(start))
	pterm.Info.Printfln("Optimal play is worth %.4f per %.2f wagered", root.EV, *pot)

	for {
		playGame(s, *pot)
		pterm.Println()
	}
}

// gameStep is one decision point on the current play-out. Steps are kept
// in a stack so a mistyped card can be undone.
type gameStep struct {
	decision ridethebus.Decision
	history  ridethebus.History
	pot      float64
}

func playGame(s *solver.Solver, pot float64) {
	steps := []gameStep{{decision: ridethebus.PickColor, pot: pot}}

	for {
		cur := steps[len(steps)-1]
		renderChoices(s, cur)

		selected := promptChoice(cur)
		switch selected {
		case optionQuit:
			os.Exit(0)
		case optionBack:
			if len(steps) > 1 {
				steps = steps[:len(steps)-1]
			}
			continue
		case ridethebus.Cashout.String():
			pterm.Success.Printfln("Cashed out at %.4f", cur.pot)
			return
		}

		choice := choiceByName(cur.decision, selected)
		card := promptCard(cur.history)
		extended := cur.history.Prepend(card)
		newPot := cur.pot * ridethebus.Score(choice, extended)
		if newPot == 0 {
			pterm.Error.Printfln("%v busted on %v. Better luck next time.", choice, card)
			return
		}

		next, ok := cur.decision.Next()
		if !ok {
			pterm.Success.Printfln("%v hit on %v! You won %.4f", choice, card, newPot)
			return
		}

		steps = append(steps, gameStep{decision: next, history: extended, pot: newPot})
	}
}

// renderChoices prints the EV of cashing out and of every guess at the
// current decision, marking the optimal action.
func renderChoices(s *solver.Solver, step gameStep) {
	best, err := s.Solve(step.pot, step.decision, step.history)
	if err != nil {
		glog.Exitf("failed to solve %v: %v", step.decision, err)
	}

	data := pterm.TableData{{"Choice", "Expected Value", ""}}
	appendRow := func(choice ridethebus.Choice, ev float64) {
		marker := ""
		if choice == best.Choice {
			marker = "<---- optimal"
		}
		data = append(data, []string{choice.String(), fmt.Sprintf("%.4f", ev), marker})
	}

	appendRow(ridethebus.Cashout, step.pot)
	for _, choice := range step.decision.Choices() {
		ev, err := s.Evaluate(step.pot, step.history, step.decision, choice)
		if err != nil {
			glog.Exitf("failed to evaluate %v: %v", choice, err)
		}
		appendRow(choice, ev)
	}

	pterm.Println()
	pterm.DefaultSection.Printfln("%v (pot %.4f)", step.decision, step.pot)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func promptChoice(step gameStep) string {
	options := []string{ridethebus.Cashout.String()}
	for _, choice := range step.decision.Choices() {
		options = append(options, choice.String())
	}
	options = append(options, optionBack, optionQuit)

	selected, _ := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText("Pick your action").
		Show()
	return selected
}

func choiceByName(decision ridethebus.Decision, name string) ridethebus.Choice {
	for _, choice := range decision.Choices() {
		if choice.String() == name {
			return choice
		}
	}

	glog.Exitf("no choice %q at %v", name, decision)
	return ridethebus.Cashout
}

// promptCard reads the revealed card, e.g. "10C", "QD", "AS".
func promptCard(history ridethebus.History) cards.Card {
	for {
		input, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Card the dealer revealed (e.g. 10C, QD, AS)").
			Show()

		card, err := cards.ParseCard(input)
		if err != nil {
			pterm.Warning.Printfln("%v", err)
			continue
		}
		if history.Set().Contains(card) {
			pterm.Warning.Printfln("%v was already revealed", card)
			continue
		}

		return card
	}
}
