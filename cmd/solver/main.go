package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lintang-b-s/tourx/pkg/cityio"
	"github.com/lintang-b-s/tourx/pkg/logger"
	"github.com/lintang-b-s/tourx/pkg/solver"
	"github.com/lintang-b-s/tourx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	exitInputFailure  = 1
	exitOutputFailure = 2
)

var (
	inputPath  = flag.String("input", "", "city records file (.bz2 is decompressed), overrides INPUT_PATH")
	outputPath = flag.String("output", "", "solution file (.bz2 is compressed), overrides OUTPUT_PATH")
	configFile = flag.String("config", "", "config file, default ./data/config.*")
)

func main() {
	flag.Parse()

	if err := util.ReadConfig(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitInputFailure)
	}
	viper.SetDefault("INPUT_PATH", "test-input-4.txt")
	viper.SetDefault("OUTPUT_PATH", "test-output-4.txt")
	viper.SetDefault("MAX_RECORDS", cityio.DefaultMaxRecords)
	if *inputPath != "" {
		viper.Set("INPUT_PATH", *inputPath)
	}
	if *outputPath != "" {
		viper.Set("OUTPUT_PATH", *outputPath)
	}

	log, err := logger.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitInputFailure)
	}

	code := run(context.Background(), log)
	_ = log.Sync()
	os.Exit(code)
}

func run(ctx context.Context, log *zap.Logger) int {
	parser := cityio.NewParser(viper.GetInt("MAX_RECORDS"), log)
	cities, err := parser.Parse(viper.GetString("INPUT_PATH"))
	if err != nil {
		log.Error("failed to read cities", zap.Error(err))
		return exitInputFailure
	}

	s, err := solver.NewSolver(solver.OptionsFromConfig(), log)
	if err != nil {
		log.Error("invalid solver options", zap.Error(err))
		return exitInputFailure
	}

	solution, err := s.Solve(ctx, cities)
	if err != nil {
		log.Error("failed to solve", zap.Error(err))
		return exitInputFailure
	}

	out := viper.GetString("OUTPUT_PATH")
	if err := cityio.WriteSolution(out, solution.GetTour(0), solution.GetTour(1)); err != nil {
		log.Error("failed to write solution", zap.Error(err))
		return exitOutputFailure
	}

	log.Info("solution written",
		zap.String("output", out),
		zap.Int("cities", len(cities)),
		zap.Float64("total", solution.GetTotal()),
	)
	return 0
}
