package geo

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/tourx/pkg/datastructure"
)

// CalculateEuclideanDistance. rounded euclidean distance between p and q.
// rounding is half away from zero (same as C round()), every tour length and 2-opt comparison
// goes through this function so the rounding rule stays consistent.
func CalculateEuclideanDistance(p, q r2.Point) float64 {
	d := p.Sub(q)
	return math.Round(math.Sqrt(d.Dot(d)))
}

// CityDistance rounded euclidean distance between two cities.
func CityDistance(a, b datastructure.City) float64 {
	return CalculateEuclideanDistance(a.GetPoint(), b.GetPoint())
}

// Bounds returns the bounding rectangle of cities. empty input gives an empty rect.
func Bounds(cities []datastructure.City) r2.Rect {
	rect := r2.EmptyRect()
	for _, c := range cities {
		rect = rect.AddPoint(c.GetPoint())
	}
	return rect
}
