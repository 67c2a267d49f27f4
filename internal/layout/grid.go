package layout

import "sort"

// grid is a uniform spatial hash bucketing nodes by cell of side equal to
// the repulsion cutoff. Restricting pair checks to a cell and its forward
// neighbors keeps the repulsion pass near-linear for spread-out layouts
// while remaining exactly equivalent to the all-pairs check within the
// cutoff radius.
type grid struct {
	cellSize float64
	cells    map[cellKey][]int
	keys     []cellKey // sorted for deterministic traversal
}

type cellKey struct {
	x, y, z int
}

// forwardNeighbors lists the half-space of neighboring cell offsets, so each
// unordered cell pair is visited exactly once. Within a cell, index order
// handles pair uniqueness.
var forwardNeighbors = []cellKey{
	{1, -1, -1}, {1, -1, 0}, {1, -1, 1},
	{1, 0, -1}, {1, 0, 0}, {1, 0, 1},
	{1, 1, -1}, {1, 1, 0}, {1, 1, 1},
	{0, 1, -1}, {0, 1, 0}, {0, 1, 1},
	{0, 0, 1},
}

func newGrid(cellSize float64) *grid {
	return &grid{cellSize: cellSize, cells: make(map[cellKey][]int)}
}

func (g *grid) keyFor(p vec) cellKey {
	return cellKey{
		x: int(p.x / g.cellSize),
		y: int(p.y / g.cellSize),
		z: int(p.z / g.cellSize),
	}
}

// rebuild reindexes all positions. Buckets hold ascending node indices
// because positions are scanned in order.
func (g *grid) rebuild(pos []vec) {
	for k := range g.cells {
		delete(g.cells, k)
	}
	for i, p := range pos {
		k := g.keyFor(p)
		g.cells[k] = append(g.cells[k], i)
	}

	g.keys = g.keys[:0]
	for k := range g.cells {
		g.keys = append(g.keys, k)
	}
	sort.Slice(g.keys, func(a, b int) bool {
		ka, kb := g.keys[a], g.keys[b]
		if ka.x != kb.x {
			return ka.x < kb.x
		}
		if ka.y != kb.y {
			return ka.y < kb.y
		}
		return ka.z < kb.z
	})
}

// forEachPair invokes fn once per unordered pair of nodes that could be
// within one cell of each other, in a fixed deterministic order.
func (g *grid) forEachPair(pos []vec, fn func(i, j int)) {
	for _, key := range g.keys {
		bucket := g.cells[key]

		// Pairs within the cell.
		for a := 0; a < len(bucket); a++ {
			for b := a + 1; b < len(bucket); b++ {
				fn(bucket[a], bucket[b])
			}
		}

		// Pairs against forward neighbor cells.
		for _, off := range forwardNeighbors {
			neighbor := cellKey{x: key.x + off.x, y: key.y + off.y, z: key.z + off.z}
			other, ok := g.cells[neighbor]
			if !ok {
				continue
			}
			for _, a := range bucket {
				for _, b := range other {
					if a < b {
						fn(a, b)
					} else {
						fn(b, a)
					}
				}
			}
		}
	}
}
