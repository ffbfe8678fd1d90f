package geo

import (
	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/twpayne/go-polyline"
)

// PolylineFromCities encodes city coordinates as (y, x) pairs, closing the cycle back to the first city.
func PolylineFromCities(cities []datastructure.City) string {
	if len(cities) == 0 {
		return ""
	}
	coords := make([][]float64, 0, len(cities)+1)
	for _, c := range cities {
		coords = append(coords, []float64{c.GetY(), c.GetX()})
	}
	coords = append(coords, []float64{cities[0].GetY(), cities[0].GetX()})
	return string(polyline.EncodeCoords(coords))
}
