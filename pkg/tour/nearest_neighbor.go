package tour

import (
	"math"

	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/lintang-b-s/tourx/pkg/geo"
	"github.com/lintang-b-s/tourx/pkg/spatialindex"
	"go.uber.org/zap"
)

/*
NearestNeighbor. greedy nearest neighbor construction.

the tour starts at the first city of the region (region order, not the smallest id). at every step
we append the unvisited city with the minimum rounded distance to the last appended city.
ties go to the city with the smallest region index, that is the first one found when scanning the region.

time complexity: O(n^2)
*/
func NearestNeighbor(region datastructure.Region) *datastructure.Tour {
	n := region.Size()
	tour := datastructure.NewEmptyTour(n)
	if n == 0 {
		return tour
	}

	visited := make([]bool, n)
	last := region.GetCity(0)
	tour.Append(last)
	visited[0] = true

	for step := 1; step < n; step++ {
		var (
			nearest     = -1
			minDistance = math.Inf(1)
		)
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d := geo.CityDistance(last, region.GetCity(j))
			if d < minDistance {
				minDistance = d
				nearest = j
			}
		}

		last = region.GetCity(nearest)
		tour.Append(last)
		visited[nearest] = true
	}

	return tour
}

// candidates whose unrounded distance exceeds the best rounded distance by more than this
// can not round to the best distance anymore.
const nearbyCutoff = 1.0

/*
SpatialNearestNeighbor. same tour as NearestNeighbor, but candidates come from an r-tree in
increasing distance order and visited cities are removed from the tree.

the r-tree orders by unrounded distance, while the tour uses rounded distance, so we keep reading
candidates until their unrounded distance is beyond (best rounded distance + nearbyCutoff) and keep the
smallest (rounded distance, region index) pair. that reproduces the tie-break of the full scan.
*/
func SpatialNearestNeighbor(region datastructure.Region, log *zap.Logger) *datastructure.Tour {
	n := region.Size()
	tour := datastructure.NewEmptyTour(n)
	if n == 0 {
		return tour
	}

	cities := region.GetCities()
	rt := spatialindex.NewRtree()
	rt.Build(cities, log)

	last := cities[0]
	tour.Append(last)
	rt.Remove(0, last)

	for tour.Size() < n {
		var (
			nearest     = -1
			minDistance = math.Inf(1)
		)
		lastPoint := last.GetPoint()
		rt.Nearby(lastPoint, func(idx int) bool {
			delta := lastPoint.Sub(cities[idx].GetPoint())
			raw := math.Sqrt(delta.Dot(delta))
			if nearest >= 0 && raw > minDistance+nearbyCutoff {
				return false
			}
			d := geo.CityDistance(last, cities[idx])
			if d < minDistance || (d == minDistance && idx < nearest) {
				minDistance = d
				nearest = idx
			}
			return true
		})

		last = cities[nearest]
		tour.Append(last)
		rt.Remove(nearest, last)
	}

	return tour
}
