// Command hexpath generates a terrain map from a scenario file and prints
// the cheapest route between its start and goal cells.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gravitas-015/hexmap/internal/scenario"
	"github.com/gravitas-015/hexmap/mapgen"
	"github.com/gravitas-015/hexmap/path"
)

func main() {
	scenarioPath := flag.String("scenario", os.Getenv("SCENARIO_PATH"),
		"path to a scenario YAML file (empty = built-in defaults)")
	flag.Parse()

	var (
		sc  *scenario.Scenario
		err error
	)
	if *scenarioPath == "" {
		log.Println("No scenario file given, using built-in defaults")
		sc = scenario.Default()
	} else {
		sc, err = scenario.Load(*scenarioPath)
		if err != nil {
			log.Fatalf("Failed to load scenario: %v", err)
		}
		log.Printf("Scenario loaded from %s", *scenarioPath)
	}

	orient, parity, err := sc.Frame()
	if err != nil {
		log.Fatalf("Bad scenario: %v", err)
	}
	start := sc.Search.Start.Offset().ToAxial(orient, parity)
	goal := sc.Search.Goal.Offset().ToAxial(orient, parity)

	m := mapgen.Generate(sc.Params())
	log.Printf("Generated map: radius %d, %d cells, seed %d", sc.Map.Radius, m.Len(), sc.Map.Seed)

	var opts []path.Option
	if sc.Search.MaxExpansions > 0 {
		opts = append(opts, path.WithMaxExpansions(sc.Search.MaxExpansions))
	}
	res := path.Find(m, start, goal, opts...)
	if !res.Found {
		if res.Bounded {
			log.Fatalf("Search hit the expansion ceiling (%d nodes) before reaching %v", res.Expanded, goal)
		}
		log.Fatalf("No path from %v to %v", start, goal)
	}

	log.Printf("Path found: %d cells, total cost %d, %d nodes expanded", len(res.Path), res.Cost, res.Expanded)
	for i, c := range res.Path {
		t, _ := m.Get(c)
		off := c.ToOffset(orient, parity)
		log.Printf("  %2d. axial %v  offset (%d, %d)  %s", i, c, off.Col, off.Row, t)
	}
}
