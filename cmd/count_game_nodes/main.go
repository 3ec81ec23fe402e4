// Script to count the nodes in the full extensive-form game tree.
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/golang/glog"
	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"

	"ridethebus"
)

func main() {
	pot := flag.Float64("pot", 1.0, "Initial wager multiple")
	flag.Parse()
	go http.ListenAndServe("localhost:4124", nil)

	game := ridethebus.NewGame(*pot)

	var total, terminal, decision, chance int
	start := time.Now()
	tree.Visit(game, func(node cfr.GameTreeNode) {
		total++
		switch node.Type() {
		case cfr.TerminalNodeType:
			terminal++
		case cfr.PlayerNodeType:
			decision++
		case cfr.ChanceNodeType:
			chance++
		}

		if total%10000000 == 0 {
			nps := float64(total) / time.Since(start).Seconds()
			glog.Infof("Visited %d nodes (%.1f nodes/sec)", total, nps)
		}
	})

	glog.Infof("%d nodes in game (%d decision, %d chance, %d terminal)",
		total, decision, chance, terminal)
}
