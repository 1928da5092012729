package path

import "github.com/gravitas-015/hexmap/hex"

// BFS finds a path with the fewest steps from start to goal, ignoring per
// cell costs. Neighbors are visited in the order the neighbors function
// returns them, so results are deterministic. Returns nil when the goal is
// unreachable.
func BFS(start, goal hex.Axial, neighbors func(a hex.Axial) []hex.Axial) []hex.Axial {
	if start == goal {
		return []hex.Axial{start}
	}
	prev := map[hex.Axial]hex.Axial{}
	visited := map[hex.Axial]bool{start: true}
	queue := []hex.Axial{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nxt := range neighbors(cur) {
			if visited[nxt] {
				continue
			}
			visited[nxt] = true
			prev[nxt] = cur
			if nxt == goal {
				return reconstruct(prev, start, goal)
			}
			queue = append(queue, nxt)
		}
	}
	return nil
}
