package path

import "github.com/gravitas-015/hexmap/hex"

// pqItem is an open-set entry. seq is a monotone insertion counter so that
// nodes with equal f-scores pop in FIFO order, keeping searches
// deterministic.
type pqItem struct {
	coord hex.Axial
	f     int
	seq   int
	index int
}

type nodePQ []*pqItem

func (p nodePQ) Len() int { return len(p) }

func (p nodePQ) Less(i, j int) bool {
	if p[i].f != p[j].f {
		return p[i].f < p[j].f
	}
	return p[i].seq < p[j].seq
}

func (p nodePQ) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
	p[i].index = i
	p[j].index = j
}

func (p *nodePQ) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*p)
	*p = append(*p, item)
}

func (p *nodePQ) Pop() any {
	old := *p
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*p = old[:n-1]
	return item
}
