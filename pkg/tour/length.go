package tour

import (
	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/lintang-b-s/tourx/pkg/geo"
)

// Length returns the closed tour length, including the edge from the last city back to the first.
// empty and single-city tours have length 0.
func Length(t *datastructure.Tour) float64 {
	n := t.Size()
	if n < 2 {
		return 0
	}
	length := 0.0
	for i := 0; i < n-1; i++ {
		length += geo.CityDistance(t.GetCity(i), t.GetCity(i+1))
	}
	length += geo.CityDistance(t.GetCity(n-1), t.GetCity(0))
	return length
}
