// Command battlesim runs deterministic tactical battles between two
// armies loaded from ASCII scenario files.
//
// Usage:
//
//	battlesim run --ticks N --general1 NAME --general2 NAME --army-file PATH --map-file PATH
//	battlesim plot AI PLOTTER SCENARIO TYPES RANGE [--repeat K] [--max-ticks T]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/nstehr/battlesim/army"
	"github.com/nstehr/battlesim/battle"
	"github.com/nstehr/battlesim/general"
	"github.com/nstehr/battlesim/loader"
	"github.com/nstehr/battlesim/model"
	"github.com/nstehr/battlesim/report"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var globals struct{}
	parser := flags.NewParser(&globals, flags.Default)
	parser.Name = "battlesim"
	parser.LongDescription = "A deterministic tactical battle simulator."

	addRunCommand(parser)
	addPlotCommand(parser)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			if flagsErr.Type == flags.ErrCommandRequired {
				parser.WriteHelp(os.Stderr)
				os.Exit(1)
			}
		}
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

type runCommand struct {
	Ticks     int    `long:"ticks" description:"maximum number of ticks to run" default:"1000"`
	General1  string `long:"general1" description:"strategic module for army A" default:"aggressive"`
	General2  string `long:"general2" description:"strategic module for army B" default:"aggressive"`
	ArmyFile  string `long:"army-file" description:"path to the army scenario file" required:"true"`
	MapFile   string `long:"map-file" description:"path to the map scenario file" required:"true"`
	Observer  string `long:"observer" description:"observer kind: terminal or headless" default:"terminal" choice:"terminal" choice:"headless"`
	ReportOut string `long:"report" description:"optional path to write an HTML battle summary"`
	Seed      int64  `long:"seed" description:"PRNG seed" default:"1"`
}

func addRunCommand(parser *flags.Parser) {
	var cmd runCommand
	_, err := parser.AddCommand("run",
		"Run a single battle to completion",
		"Loads a mirrored army file and a map file, runs the battle, and prints the outcome.",
		&cmd)
	if err != nil {
		slog.Error("failed to register run command", "error", err)
		os.Exit(1)
	}
}

func (c *runCommand) Execute(args []string) error {
	strategyA, err := general.New(c.General1)
	if err != nil {
		return fmt.Errorf("general1: %w", err)
	}
	strategyB, err := general.New(c.General2)
	if err != nil {
		return fmt.Errorf("general2: %w", err)
	}

	armyFile, err := os.Open(c.ArmyFile)
	if err != nil {
		return fmt.Errorf("opening army file: %w", err)
	}
	defer armyFile.Close()

	armyA, armyB, err := loader.LoadMirroredArmies(armyFile, strategyA, strategyB)
	if err != nil {
		return err
	}

	mapFile, err := os.Open(c.MapFile)
	if err != nil {
		return fmt.Errorf("opening map file: %w", err)
	}
	defer mapFile.Close()

	m, err := loader.LoadMap(mapFile)
	if err != nil {
		return err
	}

	var observer battle.Observer
	if c.Observer == "headless" {
		observer = battle.HeadlessObserver{}
	} else {
		observer = &battle.TerminalObserver{Out: os.Stdout}
	}

	rng := rand.New(rand.NewSource(c.Seed))
	bt := battle.New(m, armyA, armyB, rng, observer)

	slog.Info("starting battle", "general1", c.General1, "general2", c.General2, "maxTicks", c.Ticks)
	outcome, err := bt.Run(c.Ticks)
	if err != nil {
		return err
	}

	if outcome.Winner == "" {
		fmt.Println("Battle ended in a draw")
	} else {
		fmt.Printf("Army %s wins after %d ticks\n", outcome.Winner, outcome.Ticks)
	}

	if c.ReportOut != "" {
		f, err := os.Create(c.ReportOut)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()
		if err := report.RenderHTML(context.Background(), f, outcome, nil); err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
	}

	return nil
}

type plotCommand struct {
	Repeat   int    `long:"repeat" description:"number of battles per data point" default:"20"`
	MaxTicks int    `long:"max-ticks" description:"tick cap per battle" default:"500"`
	Graph    string `long:"graph" description:"unused placeholder (PNG plotting is out of scope); retained for CLI-surface parity"`
	NoGraph  bool   `long:"no-graph" description:"suppress graph output entirely"`
	Args     struct {
		AI       string `positional-arg-name:"AI" description:"strategic module under test"`
		Plotter  string `positional-arg-name:"PLOTTER" description:"opposing strategic module"`
		Scenario string `positional-arg-name:"SCENARIO" description:"army/map scenario name"`
		Types    string `positional-arg-name:"TYPES" description:"comma-separated unit kinds to vary"`
		Range    string `positional-arg-name:"RANGE" description:"count range to sweep, e.g. 1-10"`
	} `positional-args:"yes" required:"yes"`
}

func addPlotCommand(parser *flags.Parser) {
	var cmd plotCommand
	_, err := parser.AddCommand("plot",
		"Run a Lanchester-style parameter sweep",
		"Runs repeated headless battles across a unit-count range and prints a win-rate table.",
		&cmd)
	if err != nil {
		slog.Error("failed to register plot command", "error", err)
		os.Exit(1)
	}
}

// Execute runs a Lanchester-style sweep: for each unit type in TYPES and
// each N in RANGE, it fields an army of N units under AI against an army of
// 2N of the same type under PLOTTER (the N-vs-2N convention used by the
// original build_lanchester scenario generator), plays Repeat headless
// battles per data point, and prints AI's win rate as a plain-text table.
// No PNG is written: a non-empty --graph only prints a note saying so, and
// --no-graph suppresses that note.
func (c *plotCommand) Execute(args []string) error {
	if c.Args.Scenario != "lanchester" {
		return fmt.Errorf("SCENARIO: only %q is supported, got %q", "lanchester", c.Args.Scenario)
	}

	kinds, err := parseTypes(c.Args.Types)
	if err != nil {
		return fmt.Errorf("TYPES: %w", err)
	}
	lo, hi, err := parseRange(c.Args.Range)
	if err != nil {
		return fmt.Errorf("RANGE: %w", err)
	}

	fmt.Printf("%-12s %6s %10s %10s\n", "unit_type", "N", "win_rate", "avg_ticks")
	for _, kind := range kinds {
		for n := lo; n <= hi; n++ {
			wins, totalTicks := 0, 0
			for trial := 0; trial < c.Repeat; trial++ {
				strategyA, err := general.New(c.Args.AI)
				if err != nil {
					return fmt.Errorf("AI: %w", err)
				}
				strategyB, err := general.New(c.Args.Plotter)
				if err != nil {
					return fmt.Errorf("PLOTTER: %w", err)
				}

				m, a, b := buildLanchesterArmies(kind, n, strategyA, strategyB)
				rng := rand.New(rand.NewSource(int64(n*10_000 + trial)))
				bt := battle.New(m, a, b, rng, battle.HeadlessObserver{})
				outcome, err := bt.Run(c.MaxTicks)
				if err != nil {
					return err
				}
				if outcome.Winner == "A" {
					wins++
				}
				totalTicks += outcome.Ticks
			}
			winRate := float64(wins) / float64(c.Repeat)
			avgTicks := float64(totalTicks) / float64(c.Repeat)
			fmt.Printf("%-12s %6d %9.1f%% %10.1f\n", kind, n, winRate*100, avgTicks)
		}
	}

	if !c.NoGraph && c.Graph != "" {
		fmt.Printf("note: PNG graph output is out of scope; the table above is the only report for %s\n", c.Graph)
	}
	return nil
}

// buildLanchesterArmies fields an N-unit army of kind for side A and a
// 2N-unit army of the same kind for side B, each deployed in a vertical
// line on an 80x40 open map, mirroring build_lanchester's spacing and
// left/right origin placement.
func buildLanchesterArmies(kind model.Kind, n int, strategyA, strategyB general.StrategicModule) (*model.Map, *army.Army, *army.Army) {
	const width, height, spacing = 80, 40, 3.0
	m := &model.Map{Width: width, Height: height}

	a := army.New(0, strategyA)
	b := army.New(1, strategyB)
	nextID := 1

	spawnLine := func(side *army.Army, count int, x float64) {
		totalHeight := float64(count-1) * spacing
		startY := (float64(height) - totalHeight) / 2
		for i := 0; i < count; i++ {
			pos := model.Vec2{X: x, Y: startY + float64(i)*spacing}
			side.Add(model.NewUnit(nextID, kind, side.ID, pos))
			nextID++
		}
	}

	originLeft := float64(width / 3)
	originRight := float64(width) - originLeft
	spawnLine(a, n, originLeft)
	spawnLine(b, n*2, originRight)

	return m, a, b
}

// parseTypes splits a comma-separated TYPES argument into Kinds.
func parseTypes(s string) ([]model.Kind, error) {
	var kinds []model.Kind
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		kind, ok := model.KindFromName(name)
		if !ok {
			return nil, fmt.Errorf("unknown unit type %q", name)
		}
		kinds = append(kinds, kind)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("no unit types given")
	}
	return kinds, nil
}

// parseRange parses a "lo-hi" RANGE argument, e.g. "1-10".
func parseRange(s string) (lo, hi int, err error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want LO-HI, got %q", s)
	}
	lo, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid low bound %q: %w", parts[0], err)
	}
	hi, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid high bound %q: %w", parts[1], err)
	}
	if lo <= 0 || hi < lo {
		return 0, 0, fmt.Errorf("range must satisfy 0 < LO <= HI, got %q", s)
	}
	return lo, hi, nil
}
