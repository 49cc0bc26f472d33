package engine

import (
	"cmp"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/parameter"
)

// Neighbor is a spatial query result
type Neighbor struct {
	Entity core.Entity
	Pos    mgl64.Vec2
	DistSq float64
}

type cellKey struct {
	x, y int32
}

type spatialEntry struct {
	entity core.Entity
	pos    mgl64.Vec2
}

// SpatialIndex is a uniform hash grid rebuilt from scratch every tick
// It is derived state: positions are those seen at the last Rebuild, callers needing exact
// positions re-read TransformComponent
// Results are ordered by distance, ties broken by insertion order
type SpatialIndex struct {
	cellSize float64
	entries  []spatialEntry
	cells    map[cellKey][]int32

	minCell, maxCell cellKey
}

// NewSpatialIndex creates an empty index, cellSize <= 0 selects parameter.SpatialCellSize
func NewSpatialIndex(cellSize float64) *SpatialIndex {
	if cellSize <= 0 {
		cellSize = parameter.SpatialCellSize
	}
	return &SpatialIndex{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int32),
	}
}

func (s *SpatialIndex) cellOf(p mgl64.Vec2) cellKey {
	return cellKey{
		x: int32(math.Floor(p.X() / s.cellSize)),
		y: int32(math.Floor(p.Y() / s.cellSize)),
	}
}

// Clear drops every entry
func (s *SpatialIndex) Clear() {
	s.entries = s.entries[:0]
	clear(s.cells)
}

// Insert adds an entity at p, insertion order is the distance tie-break
func (s *SpatialIndex) Insert(e core.Entity, p mgl64.Vec2) {
	idx := int32(len(s.entries))
	s.entries = append(s.entries, spatialEntry{entity: e, pos: p})

	c := s.cellOf(p)
	s.cells[c] = append(s.cells[c], idx)

	if idx == 0 {
		s.minCell, s.maxCell = c, c
		return
	}
	s.minCell.x = min(s.minCell.x, c.x)
	s.minCell.y = min(s.minCell.y, c.y)
	s.maxCell.x = max(s.maxCell.x, c.x)
	s.maxCell.y = max(s.maxCell.y, c.y)
}

// Len returns the number of indexed entities
func (s *SpatialIndex) Len() int {
	return len(s.entries)
}

// Within returns every entity whose indexed position is within radius of p, nearest first
func (s *SpatialIndex) Within(p mgl64.Vec2, radius float64) []Neighbor {
	if len(s.entries) == 0 || radius < 0 {
		return nil
	}

	lo := s.cellOf(mgl64.Vec2{p.X() - radius, p.Y() - radius})
	hi := s.cellOf(mgl64.Vec2{p.X() + radius, p.Y() + radius})
	lo.x, lo.y = max(lo.x, s.minCell.x), max(lo.y, s.minCell.y)
	hi.x, hi.y = min(hi.x, s.maxCell.x), min(hi.y, s.maxCell.y)

	rSq := radius * radius
	var found []int32
	for cy := lo.y; cy <= hi.y; cy++ {
		for cx := lo.x; cx <= hi.x; cx++ {
			for _, idx := range s.cells[cellKey{cx, cy}] {
				d := s.entries[idx].pos.Sub(p)
				if d.Dot(d) <= rSq {
					found = append(found, idx)
				}
			}
		}
	}
	return s.sorted(p, found)
}

// Nearest returns up to k entities closest to p, nearest first
// The search expands ring by ring from p's cell and stops once no unvisited cell can beat the kth result
func (s *SpatialIndex) Nearest(p mgl64.Vec2, k int) []Neighbor {
	if k <= 0 || len(s.entries) == 0 {
		return nil
	}

	center := s.cellOf(p)
	maxRing := max(
		abs32(center.x-s.minCell.x), abs32(s.maxCell.x-center.x),
		abs32(center.y-s.minCell.y), abs32(s.maxCell.y-center.y),
	)

	var found []int32
	for ring := int32(0); ring <= maxRing; ring++ {
		s.collectRing(center, ring, &found)

		if len(found) >= k {
			// Points in ring+1 and beyond are at least ring*cellSize away
			result := s.sorted(p, found)
			bound := float64(ring) * s.cellSize
			if result[k-1].DistSq <= bound*bound {
				return result[:k]
			}
		}
	}

	result := s.sorted(p, found)
	if len(result) > k {
		result = result[:k]
	}
	return result
}

func (s *SpatialIndex) collectRing(center cellKey, ring int32, found *[]int32) {
	if ring == 0 {
		*found = append(*found, s.cells[center]...)
		return
	}
	for dx := -ring; dx <= ring; dx++ {
		*found = append(*found, s.cells[cellKey{center.x + dx, center.y - ring}]...)
		*found = append(*found, s.cells[cellKey{center.x + dx, center.y + ring}]...)
	}
	for dy := -ring + 1; dy <= ring-1; dy++ {
		*found = append(*found, s.cells[cellKey{center.x - ring, center.y + dy}]...)
		*found = append(*found, s.cells[cellKey{center.x + ring, center.y + dy}]...)
	}
}

func (s *SpatialIndex) sorted(p mgl64.Vec2, idxs []int32) []Neighbor {
	// Entry index is insertion order, a stable sort by distance keeps it as the tie-break
	slices.Sort(idxs)
	out := make([]Neighbor, len(idxs))
	for i, idx := range idxs {
		e := s.entries[idx]
		d := e.pos.Sub(p)
		out[i] = Neighbor{Entity: e.entity, Pos: e.pos, DistSq: d.Dot(d)}
	}
	slices.SortStableFunc(out, func(a, b Neighbor) int {
		return cmp.Compare(a.DistSq, b.DistSq)
	})
	return out
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
