package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/tourx/pkg/http/router"
	"github.com/lintang-b-s/tourx/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/tourx/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log  *zap.Logger
	g    *errgroup.Group
	done chan error
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use starts the API in the background. Done reports when it stops.
func (s *Server) Use(
	ctx context.Context,
	useRateLimit bool,
	tourService controllers.TourService,
) (*Server, error) {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	api := http_router.NewAPI(s.Log)

	s.g = &errgroup.Group{}
	s.g.Go(func() error {
		return api.Run(ctx, config, useRateLimit, tourService)
	})
	s.done = make(chan error, 1)
	go func() {
		s.done <- s.g.Wait()
	}()

	return s, nil
}

// Done receives the API result once it stops. nil channel before Use.
func (s *Server) Done() <-chan error {
	return s.done
}

// GracefulShutdown blocks until SIGINT or SIGTERM, or until the server stops on its own (done).
// the signal is nil when the server stopped first.
func GracefulShutdown(done <-chan error) (os.Signal, error) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	return waitForShutdown(quit, done)
}

func waitForShutdown(quit <-chan os.Signal, done <-chan error) (os.Signal, error) {
	select {
	case sig := <-quit:
		return sig, nil
	case err := <-done:
		return nil, err
	}
}
