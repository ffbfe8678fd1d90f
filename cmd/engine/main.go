package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/lintang-b-s/tourx/pkg/http"
	"github.com/lintang-b-s/tourx/pkg/http/usecases"
	"github.com/lintang-b-s/tourx/pkg/logger"
	"github.com/lintang-b-s/tourx/pkg/solver"
	"github.com/lintang-b-s/tourx/pkg/util"
	"go.uber.org/zap"
)

var (
	configFile   = flag.String("config", "", "config file, default ./data/config.*")
	useRateLimit = flag.Bool("rate_limit", false, "per client ip rate limit (RATE_LIMIT_RPS, RATE_LIMIT_BURST)")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configFile); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	tourEngine, err := solver.NewSolver(solver.OptionsFromConfig(), logger)
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)

	tourService := usecases.NewTourService(logger, tourEngine)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	if _, err := api.Use(ctx, *useRateLimit, tourService); err != nil {
		panic(err)
	}

	signal, err := http.GracefulShutdown(api.Done())
	cleanup()
	if signal == nil {
		logger.Error("tourx engine server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	logger.Info("tourx engine server stopped", zap.String("signal", signal.String()))
	if err := <-api.Done(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
