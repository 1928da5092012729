// Package mapgen generates terrain maps from layered simplex noise. Output
// is deterministic per seed, so chunks and tests can regenerate identical
// regions on demand.
package mapgen

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/gravitas-015/hexmap"
	"github.com/gravitas-015/hexmap/hex"
)

// Params holds terrain generation parameters.
type Params struct {
	Seed        int64
	Radius      int     // map radius in cells around the origin
	WaterLevel  float64 // elevation below this becomes water
	HillLevel   float64 // elevation above this becomes hills
	PeakLevel   float64 // elevation above this becomes mountains
	ForestLevel float64 // moisture above this turns plains into forest
	Frequency   float64 // base noise frequency
	Octaves     int
	Persistence float64
}

// DefaultParams returns a balanced mid-size map configuration.
func DefaultParams() Params {
	return Params{
		Seed:        42,
		Radius:      16,
		WaterLevel:  0.30,
		HillLevel:   0.62,
		PeakLevel:   0.80,
		ForestLevel: 0.55,
		Frequency:   0.12,
		Octaves:     4,
		Persistence: 0.5,
	}
}

// Generate builds a terrain map covering the disk of p.Radius around the
// origin.
func Generate(p Params) *hexmap.Map[hexmap.Terrain] {
	gen := TerrainAt(p)
	m := hexmap.New[hexmap.Terrain]()
	for _, c := range hex.Disk(hex.Axial{}, p.Radius) {
		m.Insert(c, gen(c))
	}
	return m
}

// TerrainAt returns a pure coordinate-to-terrain function for the given
// parameters, usable directly as a chunk generator.
func TerrainAt(p Params) func(hex.Axial) hexmap.Terrain {
	elevNoise := opensimplex.NewNormalized(p.Seed)
	moistNoise := opensimplex.NewNormalized(p.Seed + 1)
	return func(c hex.Axial) hexmap.Terrain {
		// Sample noise in continuous space so adjacent hexes get adjacent
		// samples regardless of the axial skew.
		x := float64(c.Q) + float64(c.R)*0.5
		y := float64(c.R) * sqrt3 / 2.0

		elev := octaveNoise(elevNoise, x, y, p.Octaves, p.Frequency, p.Persistence)
		moist := octaveNoise(moistNoise, x, y, p.Octaves, p.Frequency*0.75, p.Persistence)

		// Continental shaping: suppress elevation toward the map rim so the
		// disk ends in a water border rather than terrain cut mid-slope.
		if p.Radius > 0 {
			dist := math.Hypot(x, y) / float64(p.Radius)
			falloff := 1.0 - math.Pow(dist, 3.5)
			if falloff < 0 {
				falloff = 0
			}
			elev *= falloff
		}

		switch {
		case elev < p.WaterLevel:
			return hexmap.Water
		case elev >= p.PeakLevel:
			return hexmap.Mountain
		case elev >= p.HillLevel:
			return hexmap.Hills
		case moist >= p.ForestLevel:
			return hexmap.Forest
		default:
			return hexmap.Plains
		}
	}
}

const sqrt3 = 1.7320508075688772

// octaveNoise sums noise octaves with doubling frequency and decaying
// amplitude, normalized back into [0, 1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	total := 0.0
	amplitude := 1.0
	maxValue := 0.0
	freq := frequency
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*freq, y*freq) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		freq *= 2
	}
	if maxValue == 0 {
		return 0
	}
	return math.Min(1, math.Max(0, total/maxValue))
}
