package tour

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/tourx/pkg/datastructure"
)

var (
	ErrTourSizeMismatch   = errors.New("tour size differs from region size")
	ErrTourNotPermutation = errors.New("tour is not a permutation of the region")
)

// Validate checks that t visits exactly the cities of region, each one once.
func Validate(t *datastructure.Tour, region datastructure.Region) error {
	if t.Size() != region.Size() {
		return fmt.Errorf("%w: tour=%d region=%d", ErrTourSizeMismatch, t.Size(), region.Size())
	}

	remaining := make(map[datastructure.City]int, region.Size())
	region.ForEachCity(func(_ int, c datastructure.City) {
		remaining[c]++
	})
	for _, c := range t.GetCities() {
		if remaining[c] == 0 {
			return fmt.Errorf("%w: unexpected city %d", ErrTourNotPermutation, c.GetID())
		}
		remaining[c]--
	}
	return nil
}
