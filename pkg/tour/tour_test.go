package tour

import (
	"context"
	"testing"

	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func newRegion(coords ...[3]float64) datastructure.Region {
	cities := make([]datastructure.City, len(coords))
	for i, c := range coords {
		cities[i] = datastructure.NewCity(int(c[0]), c[1], c[2])
	}
	return datastructure.NewRegion(cities)
}

// randomRegion builds n cities on a small integer grid, so that equal rounded distances and
// duplicated coordinates are frequent.
func randomRegion(seed uint64, n int, gridSize int) datastructure.Region {
	rng := rand.New(rand.NewSource(seed))
	cities := make([]datastructure.City, n)
	for i := range cities {
		cities[i] = datastructure.NewCity(i+1, float64(rng.Intn(gridSize)), float64(rng.Intn(gridSize)))
	}
	return datastructure.NewRegion(cities)
}

func squareRegion() datastructure.Region {
	return newRegion(
		[3]float64{1, 0, 0},
		[3]float64{2, 0, 3},
		[3]float64{3, 4, 0},
		[3]float64{4, 4, 3},
	)
}

func TestLength(t *testing.T) {
	testCases := []struct {
		name string
		tour *datastructure.Tour
		want float64
	}{
		{name: "empty tour", tour: datastructure.NewTour(nil), want: 0},
		{name: "single city", tour: datastructure.NewTour(squareRegion().GetCities()[:1]), want: 0},
		{name: "two cities go and return", tour: datastructure.NewTour(squareRegion().GetCities()[:2]), want: 6},
		{name: "square in nearest neighbor order", tour: NearestNeighbor(squareRegion()), want: 14},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Length(tt.tour))
		})
	}
}

func TestNearestNeighbor(t *testing.T) {
	testCases := []struct {
		name   string
		region datastructure.Region
		want   []int
	}{
		{name: "empty region", region: datastructure.NewRegion(nil), want: []int{}},
		{name: "single city", region: newRegion([3]float64{7, 1, 1}), want: []int{7}},
		{name: "square", region: squareRegion(), want: []int{1, 2, 4, 3}},
		{
			name: "ties go to the earliest region index",
			region: newRegion(
				[3]float64{1, 0, 0},
				[3]float64{2, 0, 2},
				[3]float64{3, 1, 0},
				[3]float64{4, -1, 0},
			),
			want: []int{1, 3, 2, 4},
		},
		{
			name: "start is the first region city, not the smallest id",
			region: newRegion(
				[3]float64{9, 10, 10},
				[3]float64{1, 0, 0},
				[3]float64{5, 9, 9},
			),
			want: []int{9, 5, 1},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := NearestNeighbor(tt.region)
			assert.Equal(t, tt.want, got.GetIDs())
			require.NoError(t, Validate(got, tt.region))

			spatial := SpatialNearestNeighbor(tt.region, zap.NewNop())
			assert.Equal(t, tt.want, spatial.GetIDs())
		})
	}
}

func TestSpatialNearestNeighborMatchesScan(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		region := randomRegion(seed, 120, 25)
		want := NearestNeighbor(region)
		got := SpatialNearestNeighbor(region, zap.NewNop())
		require.Equal(t, want.GetIDs(), got.GetIDs(), "seed %d", seed)
	}
}

func TestTwoOptRemovesCrossing(t *testing.T) {
	tour := datastructure.NewTour(newRegion(
		[3]float64{1, 0, 0},
		[3]float64{2, 10, 10},
		[3]float64{3, 5, 12},
		[3]float64{4, 0, 10},
		[3]float64{5, 10, 0},
	).GetCities())
	require.Equal(t, 48.0, Length(tour))

	stats := TwoOpt(tour)

	assert.Equal(t, []int{1, 4, 3, 2, 5}, tour.GetIDs())
	assert.Equal(t, 40.0, Length(tour))
	assert.Equal(t, Stats{Passes: 2, Moves: 1}, stats)
}

func TestTwoOptSmallToursUnchanged(t *testing.T) {
	for n := 0; n <= 4; n++ {
		region := randomRegion(uint64(n+100), n, 50)
		tour := datastructure.NewTour(region.GetCities())
		before := tour.GetIDs()

		stats := TwoOpt(tour)

		assert.Equal(t, before, tour.GetIDs(), "size %d", n)
		assert.Equal(t, 0, stats.Moves)
		assert.Equal(t, 1, stats.Passes)
	}
}

func TestTwoOptSquareAlreadyOptimal(t *testing.T) {
	tour := NearestNeighbor(squareRegion())
	TwoOpt(tour)
	assert.Equal(t, []int{1, 2, 4, 3}, tour.GetIDs())
	assert.Equal(t, 14.0, Length(tour))
}

func TestTwoOptProperties(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		region := randomRegion(seed, 60, 100)

		tour := NearestNeighbor(region)
		before := Length(tour)

		TwoOpt(tour)
		after := Length(tour)

		require.NoError(t, Validate(tour, region), "seed %d", seed)
		assert.LessOrEqual(t, after, before, "2-opt must never increase the length, seed %d", seed)

		again := TwoOpt(tour)
		assert.Equal(t, after, Length(tour), "seed %d", seed)
		assert.Equal(t, 0, again.Moves, "a converged tour admits no improving move, seed %d", seed)
	}
}

func TestTwoOptDeterministic(t *testing.T) {
	region := randomRegion(7, 80, 40)

	first := NearestNeighbor(region)
	TwoOpt(first)
	second := NearestNeighbor(region)
	TwoOpt(second)

	assert.Equal(t, first.GetIDs(), second.GetIDs())
}

func TestTwoOptContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tour := NearestNeighbor(randomRegion(3, 30, 100))
	before := tour.GetIDs()

	stats, err := TwoOptContext(ctx, tour)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Stats{}, stats)
	assert.Equal(t, before, tour.GetIDs())
}

func TestValidate(t *testing.T) {
	region := squareRegion()
	cities := region.GetCities()

	assert.NoError(t, Validate(datastructure.NewTour([]datastructure.City{cities[3], cities[1], cities[0], cities[2]}), region))

	err := Validate(datastructure.NewTour(cities[:3]), region)
	assert.ErrorIs(t, err, ErrTourSizeMismatch)

	err = Validate(datastructure.NewTour([]datastructure.City{cities[0], cities[0], cities[1], cities[2]}), region)
	assert.ErrorIs(t, err, ErrTourNotPermutation)
}
