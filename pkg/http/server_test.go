package http

import (
	"context"
	"errors"
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/lintang-b-s/tourx/pkg/http/usecases"
	"github.com/lintang-b-s/tourx/pkg/solver"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWaitForShutdown(t *testing.T) {
	quit := make(chan os.Signal, 1)
	done := make(chan error, 1)

	quit <- syscall.SIGTERM
	sig, err := waitForShutdown(quit, done)
	assert.Equal(t, syscall.SIGTERM, sig)
	assert.NoError(t, err)

	errStopped := errors.New("listen failed")
	done <- errStopped
	sig, err = waitForShutdown(quit, done)
	assert.Nil(t, sig)
	assert.ErrorIs(t, err, errStopped)
}

func TestUsePortInUse(t *testing.T) {
	t.Cleanup(viper.Reset)

	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()
	viper.Set("API_PORT", ln.Addr().(*net.TCPAddr).Port)

	s, err := solver.NewSolver(solver.DefaultOptions(), zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	api, err := NewServer(zap.NewNop()).Use(ctx, false, usecases.NewTourService(zap.NewNop(), s))
	require.NoError(t, err)

	select {
	case err := <-api.Done():
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not report the listen failure")
	}
}
