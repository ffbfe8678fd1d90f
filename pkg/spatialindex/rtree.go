package spatialindex

import (
	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree indexes the cities of one region by their position in the region.
// every leaf is a degenerate box (min == max == city coordinate).
type Rtree struct {
	tr *rtree.RTreeG[int]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[int]
	return &Rtree{
		tr: &tr,
	}
}

func pointBox(p r2.Point) [2]float64 {
	return [2]float64{p.X, p.Y}
}

// Build. insert every city of the region, data is the city index in the region.
func (rt *Rtree) Build(cities []datastructure.City, log *zap.Logger) {
	log.Debug("Building R-tree spatial index...", zap.Int("cities", len(cities)))
	for i, c := range cities {
		box := pointBox(c.GetPoint())
		rt.tr.Insert(box, box, i)
	}
	log.Debug("R-tree spatial index built.")
}

// Remove deletes the city stored at region index idx.
func (rt *Rtree) Remove(idx int, c datastructure.City) {
	box := pointBox(c.GetPoint())
	rt.tr.Delete(box, box, idx)
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// Nearby visits indexed cities ordered by increasing distance to q until iter returns false.
// the order is by squared box distance, callers that need the rounded metric must recompute it.
func (rt *Rtree) Nearby(q r2.Point, iter func(idx int) bool) {
	rt.tr.Nearby(
		func(min, max [2]float64, data int, item bool) float64 {
			return squaredBoxDist(q, min, max)
		},
		func(min, max [2]float64, data int, dist float64) bool {
			return iter(data)
		},
	)
}

func squaredBoxDist(q r2.Point, min, max [2]float64) float64 {
	var dx, dy float64
	if q.X < min[0] {
		dx = min[0] - q.X
	} else if q.X > max[0] {
		dx = q.X - max[0]
	}
	if q.Y < min[1] {
		dy = min[1] - q.Y
	} else if q.Y > max[1] {
		dy = q.Y - max[1]
	}
	return dx*dx + dy*dy
}
