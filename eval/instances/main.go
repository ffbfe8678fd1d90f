package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/lintang-b-s/tourx/pkg/cityio"
	"github.com/lintang-b-s/tourx/pkg/logger"
	"github.com/lintang-b-s/tourx/pkg/solver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	dir          = flag.String("dir", "./data/instances", "directory with *.txt / *.txt.bz2 instances")
	limit        = flag.Int("limit", runtime.NumCPU(), "maximum number of instances solved at once")
	construction = flag.String("construction", solver.ConstructionScan, "scan or indexed")
)

type instanceResult struct {
	name    string
	cities  int
	sizes   [solver.NumRegions]int
	total   float64
	moves   int
	elapsed time.Duration
}

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	paths, err := instanceFiles(*dir)
	if err != nil {
		logger.Fatal("failed to list instances", zap.Error(err))
	}

	opts := solver.DefaultOptions()
	opts.Construction = *construction
	results, err := solveAll(context.Background(), paths, opts, *limit, logger)
	if err != nil {
		logger.Fatal("failed to solve instances", zap.Error(err))
	}

	for _, res := range results {
		fmt.Printf("%s cities=%d region1=%d region2=%d total=%.0f moves=%d elapsed=%s\n",
			res.name, res.cities, res.sizes[0], res.sizes[1], res.total, res.moves, res.elapsed)
	}
}

func instanceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".txt") || strings.HasSuffix(e.Name(), ".txt.bz2") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// solveAll solves every instance with at most limit running at once. results follow the order of paths.
func solveAll(ctx context.Context, paths []string, opts solver.Options, limit int,
	log *zap.Logger) ([]instanceResult, error) {
	s, err := solver.NewSolver(opts, log)
	if err != nil {
		return nil, err
	}
	parser := cityio.NewParser(cityio.DefaultMaxRecords, log)

	results := make([]instanceResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))
	for i, path := range paths {
		g.Go(func() error {
			start := time.Now()
			cities, err := parser.Parse(path)
			if err != nil {
				return err
			}
			solution, err := s.Solve(ctx, cities)
			if err != nil {
				return err
			}

			res := instanceResult{
				name:    filepath.Base(path),
				cities:  len(cities),
				total:   solution.GetTotal(),
				elapsed: time.Since(start),
			}
			for r := range solver.NumRegions {
				res.sizes[r] = solution.GetTour(r).Size()
				res.moves += solution.GetStats(r).Moves
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
