package path

import (
	"testing"

	"github.com/gravitas-015/hexmap"
	"github.com/gravitas-015/hexmap/hex"
)

func TestBFSShortestSteps(t *testing.T) {
	m := hexmap.New[hexmap.Terrain]()
	m.InsertDisk(hex.Axial{}, 3, hexmap.Plains)
	start := hex.Axial{Q: -3, R: 0}
	goal := hex.Axial{Q: 3, R: 0}
	got := BFS(start, goal, m.PassableNeighbors)
	if got == nil {
		t.Fatalf("expected a path")
	}
	if len(got) != hex.DistanceAxial(start, goal)+1 {
		t.Fatalf("bfs path length %d, want %d", len(got), hex.DistanceAxial(start, goal)+1)
	}
	if got[0] != start || got[len(got)-1] != goal {
		t.Fatalf("bfs endpoints wrong: %v", got)
	}
	for i := 1; i < len(got); i++ {
		if hex.DistanceAxial(got[i-1], got[i]) != 1 {
			t.Fatalf("bfs path not contiguous: %v", got)
		}
	}
}

func TestBFSStartEqualsGoal(t *testing.T) {
	got := BFS(hex.Axial{Q: 1, R: 1}, hex.Axial{Q: 1, R: 1}, func(hex.Axial) []hex.Axial { return nil })
	if len(got) != 1 || got[0] != (hex.Axial{Q: 1, R: 1}) {
		t.Fatalf("start==goal: got %v", got)
	}
}

func TestBFSUnreachable(t *testing.T) {
	m := hexmap.New[hexmap.Terrain]()
	m.Insert(hex.Axial{Q: 0, R: 0}, hexmap.Plains)
	m.Insert(hex.Axial{Q: 5, R: 5}, hexmap.Plains)
	if got := BFS(hex.Axial{Q: 0, R: 0}, hex.Axial{Q: 5, R: 5}, m.PassableNeighbors); got != nil {
		t.Fatalf("expected nil for unreachable goal, got %v", got)
	}
}
