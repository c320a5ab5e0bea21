// Command ecohex runs the hex-grid ecological simulation from the
// command line (spec §6 "CLI/config surface").
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/fenwood/ecohex/internal/config"
	"github.com/fenwood/ecohex/internal/engine"
	"github.com/fenwood/ecohex/internal/worldgen"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: ecohex <run|step> [flags]")
		return 1
	}

	command := args[0]
	switch command {
	case "run":
		return runCommand(args[1:])
	case "step":
		return stepCommand(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", command)
		return 1
	}
}

func runCommand(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	seed := fs.Int64("seed", 0, "PRNG seed (0 = use config default)")
	radius := fs.Int("radius", 0, "hex grid radius (0 = use config default)")
	herbivores := fs.Int("herbivores", -1, "initial herbivore count (-1 = use config default)")
	carnivores := fs.Int("carnivores", -1, "initial carnivore count (-1 = use config default)")
	omnivores := fs.Int("omnivores", -1, "initial omnivore count (-1 = use config default)")
	turns := fs.Int("turns", -1, "number of turns to run (-1 = use config default)")
	watch := fs.Bool("watch", false, "launch the live TUI dashboard")
	configPath := fs.String("config", "", "path to a YAML config overriding the embedded defaults")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	applyOverrides(cfg, *seed, *radius, *herbivores, *carnivores, *omnivores, *turns)

	logger := newLogger(*watch)
	sim := engine.New(cfg.Seed, logger)
	gen := worldgen.NewGenerator(worldgen.Config{
		Radius:   cfg.MapRadius,
		Seed:     cfg.Seed,
		SeaLevel: 0.25,
	})
	if err := sim.Initialize(gen, cfg.Population.Herbivores, cfg.Population.Carnivores, cfg.Population.Omnivores); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *watch {
		return runTUI(sim, cfg.Turns)
	}

	sim.StepN(cfg.Turns)
	printSnapshot(sim)
	return 0
}

func stepCommand(args []string) int {
	fs := flag.NewFlagSet("step", flag.ContinueOnError)
	turns := fs.Int("turns", 1, "number of turns to advance")
	configPath := fs.String("config", "", "path to a YAML config overriding the embedded defaults")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *turns < 0 {
		fmt.Fprintln(os.Stderr, "turns must be non-negative")
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := newLogger(false)
	sim := engine.New(cfg.Seed, logger)
	gen := worldgen.NewGenerator(worldgen.Config{Radius: cfg.MapRadius, Seed: cfg.Seed, SeaLevel: 0.25})
	if err := sim.Initialize(gen, cfg.Population.Herbivores, cfg.Population.Carnivores, cfg.Population.Omnivores); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	sim.StepN(*turns)
	printSnapshot(sim)
	return 0
}

func applyOverrides(cfg *config.Config, seed int64, radius, herbivores, carnivores, omnivores, turns int) {
	if seed != 0 {
		cfg.Seed = seed
	}
	if radius != 0 {
		cfg.MapRadius = radius
	}
	if herbivores >= 0 {
		cfg.Population.Herbivores = herbivores
	}
	if carnivores >= 0 {
		cfg.Population.Carnivores = carnivores
	}
	if omnivores >= 0 {
		cfg.Population.Omnivores = omnivores
	}
	if turns >= 0 {
		cfg.Turns = turns
	}
}

func newLogger(watch bool) zerolog.Logger {
	if watch {
		// The TUI owns the terminal; route logs to a no-op sink.
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
