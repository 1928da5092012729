// Package scenario loads demo scenario files: terrain parameters plus a
// start/goal pair expressed in offset coordinates.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-015/hexmap/hex"
	"github.com/gravitas-015/hexmap/mapgen"
)

// Scenario describes a map to generate and a search to run over it.
type Scenario struct {
	Map    MapConfig    `yaml:"map"`
	Search SearchConfig `yaml:"search"`
}

// MapConfig holds terrain generation settings.
type MapConfig struct {
	Seed        int64   `yaml:"seed"`
	Radius      int     `yaml:"radius"`
	WaterLevel  float64 `yaml:"water_level"`
	HillLevel   float64 `yaml:"hill_level"`
	PeakLevel   float64 `yaml:"peak_level"`
	ForestLevel float64 `yaml:"forest_level"`
	Frequency   float64 `yaml:"frequency"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
}

// SearchConfig holds pathfinding settings. Start and goal are offset
// coordinates interpreted under Orientation and Parity.
type SearchConfig struct {
	Start         Cell   `yaml:"start"`
	Goal          Cell   `yaml:"goal"`
	Orientation   string `yaml:"orientation"` // "pointy" or "flat"
	Parity        string `yaml:"parity"`      // "odd" or "even"
	MaxExpansions int    `yaml:"max_expansions"`
}

// Cell is an offset coordinate in the scenario file.
type Cell struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Offset converts the cell to the hex package's offset type.
func (c Cell) Offset() hex.Offset {
	return hex.Offset{Col: c.Col, Row: c.Row}
}

// Default returns the scenario used when no file is supplied: the default
// map with a diagonal crossing.
func Default() *Scenario {
	p := mapgen.DefaultParams()
	return &Scenario{
		Map: MapConfig{
			Seed:        p.Seed,
			Radius:      p.Radius,
			WaterLevel:  p.WaterLevel,
			HillLevel:   p.HillLevel,
			PeakLevel:   p.PeakLevel,
			ForestLevel: p.ForestLevel,
			Frequency:   p.Frequency,
			Octaves:     p.Octaves,
			Persistence: p.Persistence,
		},
		Search: SearchConfig{
			Start:       Cell{Col: -8, Row: 0},
			Goal:        Cell{Col: 8, Row: 0},
			Orientation: "pointy",
			Parity:      "odd",
		},
	}
}

// Load reads a scenario from a YAML file, filling defaults for omitted map
// parameters.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	if s.Map.Radius <= 0 {
		s.Map.Radius = mapgen.DefaultParams().Radius
	}
	if s.Map.Octaves <= 0 {
		s.Map.Octaves = mapgen.DefaultParams().Octaves
	}
	return s, nil
}

// Params converts the map section to generator parameters.
func (s *Scenario) Params() mapgen.Params {
	return mapgen.Params{
		Seed:        s.Map.Seed,
		Radius:      s.Map.Radius,
		WaterLevel:  s.Map.WaterLevel,
		HillLevel:   s.Map.HillLevel,
		PeakLevel:   s.Map.PeakLevel,
		ForestLevel: s.Map.ForestLevel,
		Frequency:   s.Map.Frequency,
		Octaves:     s.Map.Octaves,
		Persistence: s.Map.Persistence,
	}
}

// Frame returns the offset interpretation parameters for the search section.
func (s *Scenario) Frame() (hex.Orientation, hex.Parity, error) {
	var o hex.Orientation
	switch s.Search.Orientation {
	case "", "pointy":
		o = hex.PointyTop
	case "flat":
		o = hex.FlatTop
	default:
		return 0, 0, fmt.Errorf("unknown orientation %q", s.Search.Orientation)
	}
	var p hex.Parity
	switch s.Search.Parity {
	case "", "odd":
		p = hex.OddShove
	case "even":
		p = hex.EvenShove
	default:
		return 0, 0, fmt.Errorf("unknown parity %q", s.Search.Parity)
	}
	return o, p, nil
}
