package solver

import (
	"context"
	"math"
	"time"

	"github.com/lintang-b-s/tourx/pkg/concurrent"
	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/lintang-b-s/tourx/pkg/partitioner"
	"github.com/lintang-b-s/tourx/pkg/tour"
	"go.uber.org/zap"
)

const NumRegions = 2

// Solution holds the two regions and their optimized tours.
type Solution struct {
	regions [NumRegions]datastructure.Region
	tours   [NumRegions]*datastructure.Tour
	lengths [NumRegions]float64
	stats   [NumRegions]tour.Stats
}

func (s *Solution) GetRegion(i int) datastructure.Region {
	return s.regions[i]
}

func (s *Solution) GetTour(i int) *datastructure.Tour {
	return s.tours[i]
}

func (s *Solution) GetLength(i int) float64 {
	return s.lengths[i]
}

func (s *Solution) GetStats(i int) tour.Stats {
	return s.stats[i]
}

// GetTotal. round(length one) + round(length two).
func (s *Solution) GetTotal() float64 {
	total := 0.0
	for _, l := range s.lengths {
		total += math.Round(l)
	}
	return total
}

type regionResult struct {
	tour   *datastructure.Tour
	length float64
	stats  tour.Stats
}

type Solver struct {
	opts        Options
	partitioner *partitioner.AxisPartitioner
	logger      *zap.Logger
}

func NewSolver(opts Options, logger *zap.Logger) (*Solver, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Solver{
		opts:        opts,
		partitioner: partitioner.NewAxisPartitioner(opts.pivotSelector(), logger),
		logger:      logger,
	}, nil
}

// Solve partitions cities into two regions, then builds and 2-opt optimizes one tour per region.
// the input slice is only read.
func (s *Solver) Solve(ctx context.Context, cities []datastructure.City) (*Solution, error) {
	start := time.Now()
	regionOne, regionTwo := s.partitioner.Partition(cities)
	regions := []datastructure.Region{regionOne, regionTwo}

	var (
		results []regionResult
		err     error
	)
	if s.opts.Parallel {
		wp := concurrent.NewWorkerPool[datastructure.Region, regionResult](NumRegions)
		results, err = wp.Run(ctx, regions, s.solveRegion)
	} else {
		results = make([]regionResult, 0, NumRegions)
		for _, region := range regions {
			res, rerr := s.solveRegion(ctx, region)
			if rerr != nil {
				err = rerr
				break
			}
			results = append(results, res)
		}
	}
	if err != nil {
		return nil, err
	}

	solution := &Solution{}
	for i := range NumRegions {
		solution.regions[i] = regions[i]
		solution.tours[i] = results[i].tour
		solution.lengths[i] = results[i].length
		solution.stats[i] = results[i].stats
	}

	s.logger.Info("two tours computed",
		zap.Float64("total", solution.GetTotal()),
		zap.Float64("length_one", solution.lengths[0]),
		zap.Float64("length_two", solution.lengths[1]),
		zap.Duration("elapsed", time.Since(start)),
	)
	return solution, nil
}

func (s *Solver) construct(region datastructure.Region) *datastructure.Tour {
	if s.opts.Construction == ConstructionIndexed {
		return tour.SpatialNearestNeighbor(region, s.logger)
	}
	return tour.NearestNeighbor(region)
}

func (s *Solver) solveRegion(ctx context.Context, region datastructure.Region) (regionResult, error) {
	t := s.construct(region)
	initialLength := tour.Length(t)

	stats, err := tour.TwoOptContext(ctx, t)
	if err != nil {
		return regionResult{}, err
	}
	length := tour.Length(t)

	if s.logger.Core().Enabled(zap.DebugLevel) {
		if err := tour.Validate(t, region); err != nil {
			return regionResult{}, err
		}
	}

	s.logger.Debug("region tour optimized",
		zap.Int("cities", region.Size()),
		zap.Float64("nearest_neighbor_length", initialLength),
		zap.Float64("two_opt_length", length),
		zap.Int("passes", stats.Passes),
		zap.Int("moves", stats.Moves),
	)
	return regionResult{tour: t, length: length, stats: stats}, nil
}
