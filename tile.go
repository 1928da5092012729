package hexmap

// Terrain is a ready-made Tile payload covering common ground types. It is
// what the bundled generator and demo produce; callers with richer per-cell
// data define their own Tile implementation instead.
type Terrain int

const (
	Plains Terrain = iota
	Forest
	Hills
	Water
	Mountain
)

var terrainNames = [...]string{"plains", "forest", "hills", "water", "mountain"}

// terrainCosts holds the movement cost of entering each terrain. Impassable
// terrains carry zero; MovementCost never reports it.
var terrainCosts = [...]int{1, 2, 3, 0, 0}

func (t Terrain) String() string {
	if t < 0 || int(t) >= len(terrainNames) {
		return "unknown"
	}
	return terrainNames[t]
}

// Cost returns the movement cost of entering the terrain.
func (t Terrain) Cost() int {
	if t < 0 || int(t) >= len(terrainCosts) {
		return 0
	}
	return terrainCosts[t]
}

// Passable reports whether units can enter the terrain.
func (t Terrain) Passable() bool {
	return t == Plains || t == Forest || t == Hills
}
