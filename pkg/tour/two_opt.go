package tour

import (
	"context"

	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/lintang-b-s/tourx/pkg/geo"
)

// Stats describes one 2-opt run.
type Stats struct {
	Passes int // number of full passes, including the last one that applied no move
	Moves  int // number of applied segment reversals
}

/*
TwoOpt. 2-opt local search, https://en.wikipedia.org/wiki/2-opt

for every pair of positions 1 <= i < j <= n-2 with j-i != 1:

	current   = d(t[i-1], t[i]) + d(t[j], t[j+1])
	candidate = d(t[i-1], t[j]) + d(t[i], t[j+1])

if candidate < current the segment t[i..j] is reversed in place and the scan continues with the
next pair of the same pass. passes repeat until a whole pass applies no move, so the result is a
2-opt local optimum. tours with less than 4 cities have no valid pair and are left unchanged.
*/
func TwoOpt(t *datastructure.Tour) Stats {
	stats, _ := TwoOptContext(context.Background(), t)
	return stats
}

// TwoOptContext is TwoOpt with a cancellation check between passes.
// on cancellation the tour is left as the last completed pass produced it.
func TwoOptContext(ctx context.Context, t *datastructure.Tour) (Stats, error) {
	var (
		stats    Stats
		cities   = t.GetCities()
		size     = len(cities)
		improved = true
	)

	for improved {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		improved = false
		stats.Passes++

		for i := 1; i < size-2; i++ {
			for j := i + 1; j < size-1; j++ {
				if j-i == 1 {
					continue
				}
				current := geo.CityDistance(cities[i-1], cities[i]) + geo.CityDistance(cities[j], cities[j+1])
				candidate := geo.CityDistance(cities[i-1], cities[j]) + geo.CityDistance(cities[i], cities[j+1])
				if candidate < current {
					t.Reverse(i, j)
					stats.Moves++
					improved = true
				}
			}
		}
	}

	return stats, nil
}
