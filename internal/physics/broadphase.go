package physics

import (
	"github.com/chewxy/math32"

	"ballmachine/internal/vecmath"
)

// Pair is an unordered pair of ball indices with I < J.
type Pair struct {
	I, J int
}

type cellKey struct {
	x, y, z int32
}

// Broadphase buckets balls into a uniform grid and reports pairs sharing a cell.
// Only same-cell pairs are reported; two balls touching across a cell boundary are
// missed for that substep.
type Broadphase struct {
	cellSize float32

	cells map[cellKey][]int
	order []cellKey
	pairs []Pair
}

// NewBroadphase returns a grid with cells 2.5 ball radii wide.
func NewBroadphase(ballRadius float32) *Broadphase {
	return &Broadphase{
		cellSize: 2.5 * ballRadius,
		cells:    make(map[cellKey][]int),
	}
}

// CellSize returns the grid spacing.
func (bp *Broadphase) CellSize() float32 {
	return bp.cellSize
}

func (bp *Broadphase) key(p vecmath.Vec3) cellKey {
	return cellKey{
		x: int32(math32.Floor(p[0] / bp.cellSize)),
		y: int32(math32.Floor(p[1] / bp.cellSize)),
		z: int32(math32.Floor(p[2] / bp.cellSize)),
	}
}

// Pairs returns every same-cell pair exactly once. Cells are visited in the order
// their first ball appears, and pairs within a cell in index order, so the result
// depends only on the ball positions. The returned slice is reused by the next call.
func (bp *Broadphase) Pairs(balls []*Ball) []Pair {
	for k, v := range bp.cells {
		bp.cells[k] = v[:0]
	}
	bp.order = bp.order[:0]
	bp.pairs = bp.pairs[:0]

	for i, b := range balls {
		k := bp.key(b.Pos)
		bucket := bp.cells[k]
		if len(bucket) == 0 {
			bp.order = append(bp.order, k)
		}
		bp.cells[k] = append(bucket, i)
	}

	for _, k := range bp.order {
		idx := bp.cells[k]
		for a := 0; a < len(idx); a++ {
			for b := a + 1; b < len(idx); b++ {
				bp.pairs = append(bp.pairs, Pair{I: idx[a], J: idx[b]})
			}
		}
	}

	// stale empty buckets would keep the map growing across a long session
	if len(bp.cells) > 4*len(bp.order)+64 {
		for k, v := range bp.cells {
			if len(v) == 0 {
				delete(bp.cells, k)
			}
		}
	}
	return bp.pairs
}
