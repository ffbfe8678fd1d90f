package partitioner

import (
	"math"

	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/lintang-b-s/tourx/pkg/geo"
	"go.uber.org/zap"
)

// PivotSelector returns the x coordinate used to split cities, cities is never empty.
type PivotSelector func(cities []datastructure.City) float64

// MiddleIndexPivot. x of the city at index len/2 in input order. this is not a sorted median.
func MiddleIndexPivot(cities []datastructure.City) float64 {
	return cities[len(cities)/2].GetX()
}

// MiddleIndexTruncatedPivot is MiddleIndexPivot truncated toward zero, for outputs compatible with
// solvers that store the pivot in an integer.
func MiddleIndexTruncatedPivot(cities []datastructure.City) float64 {
	return math.Trunc(MiddleIndexPivot(cities))
}

// Split assigns every city with x <= pivot to the first region and the rest to the second one.
// input order is preserved inside both regions. empty input gives two empty regions.
func Split(cities []datastructure.City, pivotSelector PivotSelector) (datastructure.Region, datastructure.Region) {
	if len(cities) == 0 {
		return datastructure.NewRegion([]datastructure.City{}), datastructure.NewRegion([]datastructure.City{})
	}

	pivot := pivotSelector(cities)
	regionOne := make([]datastructure.City, 0, len(cities)/2+1)
	regionTwo := make([]datastructure.City, 0, len(cities)/2+1)
	for _, c := range cities {
		if c.GetX() <= pivot {
			regionOne = append(regionOne, c)
		} else {
			regionTwo = append(regionTwo, c)
		}
	}
	return datastructure.NewRegion(regionOne), datastructure.NewRegion(regionTwo)
}

// AxisPartitioner splits cities into two regions along the x axis.
// one static split, there is no centroid update or balancing.
type AxisPartitioner struct {
	pivotSelector PivotSelector
	logger        *zap.Logger
}

func NewAxisPartitioner(pivotSelector PivotSelector, logger *zap.Logger) *AxisPartitioner {
	if pivotSelector == nil {
		pivotSelector = MiddleIndexPivot
	}
	return &AxisPartitioner{
		pivotSelector: pivotSelector,
		logger:        logger,
	}
}

func (ap *AxisPartitioner) Partition(cities []datastructure.City) (datastructure.Region, datastructure.Region) {
	regionOne, regionTwo := Split(cities, ap.pivotSelector)

	boundsOne := geo.Bounds(regionOne.GetCities())
	boundsTwo := geo.Bounds(regionTwo.GetCities())
	ap.logger.Info("cities partitioned",
		zap.Int("cities", len(cities)),
		zap.Int("region_one", regionOne.Size()),
		zap.Int("region_two", regionTwo.Size()),
		zap.String("region_one_bounds", boundsOne.String()),
		zap.String("region_two_bounds", boundsTwo.String()),
	)
	return regionOne, regionTwo
}
