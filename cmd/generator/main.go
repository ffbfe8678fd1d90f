package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/lintang-b-s/tourx/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	numCities = flag.Int("n", 1000, "number of cities")
	seed      = flag.Uint64("seed", 1, "random seed")
	width     = flag.Float64("width", 10000, "maximum x coordinate")
	height    = flag.Float64("height", 10000, "maximum y coordinate")
	output    = flag.String("output", "test-input-4.txt", "instance file")
	integral  = flag.Bool("integral", true, "round coordinates to integers")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := generate(*output, *numCities, *seed, *width, *height, *integral); err != nil {
		logger.Fatal("failed to generate instance", zap.Error(err))
	}
	logger.Info("instance generated", zap.String("output", *output), zap.Int("cities", *numCities),
		zap.Uint64("seed", *seed))
}

func generate(path string, n int, seed uint64, width, height float64, integral bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(seed))
	w := bufio.NewWriter(f)
	for id := 1; id <= n; id++ {
		x, y := rng.Float64()*width, rng.Float64()*height
		if integral {
			fmt.Fprintf(w, "%d %.0f %.0f\n", id, x, y)
		} else {
			fmt.Fprintf(w, "%d %f %f\n", id, x, y)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
