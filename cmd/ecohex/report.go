package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/fenwood/ecohex/internal/engine"
)

// printSnapshot prints a human-readable stats summary to stdout (spec
// §6 "stats()").
func printSnapshot(sim *engine.Simulation) {
	snap := sim.Stats()
	pop := snap.Population

	fmt.Printf("turn %s\n", humanize.Comma(int64(snap.Turn)))
	fmt.Printf("population: %s total (herbivores %s, carnivores %s, omnivores %s)\n",
		humanize.Comma(int64(pop.Total)),
		humanize.Comma(int64(pop.Herbivores)),
		humanize.Comma(int64(pop.Carnivores)),
		humanize.Comma(int64(pop.Omnivores)),
	)
	fmt.Printf("age bands: young %s, adult %s, old %s — average age %.1f, max generation %d\n",
		humanize.Comma(int64(pop.YoungAge)),
		humanize.Comma(int64(pop.Adult)),
		humanize.Comma(int64(pop.Old)),
		pop.AverageAge,
		pop.MaxGeneration,
	)
	fmt.Printf("this turn: %s moving, %s hungry, %s thirsty, %s mating\n",
		humanize.Comma(int64(snap.TurnState.Moving)),
		humanize.Comma(int64(snap.TurnState.Hungry)),
		humanize.Comma(int64(snap.TurnState.Thirsty)),
		humanize.Comma(int64(snap.TurnState.Mating)),
	)
	fmt.Printf("resources: average plant food %.1f, average meat %.1f, tiles with water %s\n",
		snap.Resources.AveragePlantFood,
		snap.Resources.AverageMeat,
		humanize.Comma(int64(snap.Resources.TilesWithWater)),
	)
	fmt.Printf("scents active: %s\n", humanize.Comma(int64(snap.TotalScents)))
}
