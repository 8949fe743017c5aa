package level

import (
	"container/heap"
	"math"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// Unreachable is the distance of tiles that cannot be reached within the cutoff.
const Unreachable = math.MaxFloat64

// stepCost is the weight of every edge in the walkable-tile graph.
const stepCost = 1.0

// DistanceField holds the shortest walking distance from a set of source tiles
// to every tile of a grid. Edges join adjacent tiles only when both are Floor.
type DistanceField struct {
	grid      *Grid
	dist      []float64
	sources   []int
	maxDepth  float64
	diagonals bool
}

// NewDistanceField runs Dijkstra's algorithm from sources over g.
// Tiles farther than maxDepth keep the Unreachable distance. Out-of-range
// sources are ignored.
func NewDistanceField(g *Grid, sources []int, maxDepth float64, diagonals bool) *DistanceField {
	df := &DistanceField{
		grid:      g,
		dist:      make([]float64, g.Len()),
		maxDepth:  maxDepth,
		diagonals: diagonals,
	}
	for i := range df.dist {
		df.dist[i] = Unreachable
	}

	pq := &nodeQueue{}
	for _, src := range sources {
		if src < 0 || src >= g.Len() {
			continue
		}
		df.sources = append(df.sources, src)
		df.dist[src] = 0
		heap.Push(pq, node{idx: src, dist: 0})
	}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(node)
		if cur.dist > df.dist[cur.idx] {
			continue
		}
		if g.Tiles[cur.idx] != Floor {
			continue
		}
		p := g.PointOf(cur.idx)
		for _, off := range df.offsets() {
			n, ok := g.TryIndex(p.Add(off.X, off.Y))
			if !ok || g.Tiles[n] != Floor {
				continue
			}
			nd := cur.dist + stepCost
			if nd > maxDepth || nd >= df.dist[n] {
				continue
			}
			df.dist[n] = nd
			heap.Push(pq, node{idx: n, dist: nd})
		}
	}

	return df
}

// offsets returns the neighbour steps for this field.
func (df *DistanceField) offsets() []core.Point {
	if df.diagonals {
		return neighbors8[:]
	}
	return neighbors4[:]
}

// Distance returns the distance of the tile at idx, or Unreachable.
func (df *DistanceField) Distance(idx int) float64 {
	if idx < 0 || idx >= len(df.dist) {
		return Unreachable
	}
	return df.dist[idx]
}

// DistanceAt returns the distance of the tile at p.
// The second result is false when p is out of bounds or unreachable.
func (df *DistanceField) DistanceAt(p core.Point) (float64, bool) {
	idx, ok := df.grid.TryIndex(p)
	if !ok || df.dist[idx] == Unreachable {
		return Unreachable, false
	}
	return df.dist[idx], true
}

// Reachable reports whether the tile at idx has a finite distance.
func (df *DistanceField) Reachable(idx int) bool {
	return df.Distance(idx) != Unreachable
}

// ReachableCount returns the number of tiles with a finite distance, sources included.
func (df *DistanceField) ReachableCount() int {
	n := 0
	for _, d := range df.dist {
		if d != Unreachable {
			n++
		}
	}
	return n
}

// MostDistant returns the reachable tile with the greatest distance.
// Ties go to the first such tile in row-major order (lowest index).
// ok is false when nothing beyond the sources is reachable.
func (df *DistanceField) MostDistant() (idx int, dist float64, ok bool) {
	idx = -1
	for i, d := range df.dist {
		if d == Unreachable {
			continue
		}
		if idx == -1 || d > dist {
			idx, dist = i, d
		}
	}
	if idx == -1 || dist <= 0 {
		return 0, 0, false
	}
	return idx, dist, true
}

// Path returns a shortest path from a source to idx, both ends included.
// Returns nil when idx is unreachable.
func (df *DistanceField) Path(idx int) []int {
	if !df.Reachable(idx) {
		return nil
	}
	path := []int{idx}
	cur := idx
	for df.dist[cur] > 0 {
		p := df.grid.PointOf(cur)
		next := -1
		for _, off := range df.offsets() {
			n, ok := df.grid.TryIndex(p.Add(off.X, off.Y))
			if !ok || df.dist[n] == Unreachable {
				continue
			}
			if df.dist[n]+stepCost == df.dist[cur] {
				next = n
				break
			}
		}
		if next == -1 {
			return nil
		}
		path = append(path, next)
		cur = next
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// cullUnreachable turns every floor tile the field cannot reach into wall.
// Returns the number of tiles changed.
func (df *DistanceField) cullUnreachable() int {
	n := 0
	for i, t := range df.grid.Tiles {
		if t == Floor && df.dist[i] == Unreachable {
			df.grid.Tiles[i] = Wall
			n++
		}
	}
	return n
}

type node struct {
	idx  int
	dist float64
}

// nodeQueue is a min-heap of nodes ordered by distance, then index.
type nodeQueue []node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].idx < q[j].idx
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(node)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
