package usecases

import (
	"context"
	"testing"

	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/lintang-b-s/tourx/pkg/solver"
	"github.com/lintang-b-s/tourx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *TourService {
	t.Helper()
	s, err := solver.NewSolver(solver.DefaultOptions(), zap.NewNop())
	require.NoError(t, err)
	return NewTourService(zap.NewNop(), s)
}

func TestComputeTours(t *testing.T) {
	cities := []datastructure.City{
		datastructure.NewCity(1, 0, 0),
		datastructure.NewCity(2, 0, 3),
		datastructure.NewCity(3, 4, 0),
		datastructure.NewCity(4, 4, 3),
	}

	solution, err := newTestService(t).ComputeTours(context.Background(), cities)
	require.NoError(t, err)
	assert.Equal(t, 14.0, solution.GetTotal())
}

func TestComputeToursDuplicateID(t *testing.T) {
	cities := []datastructure.City{
		datastructure.NewCity(1, 0, 0),
		datastructure.NewCity(1, 0, 3),
	}

	_, err := newTestService(t).ComputeTours(context.Background(), cities)
	assert.ErrorIs(t, err, ErrDuplicateCityID)
	assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))
}

func TestComputeToursEngineError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService(t).ComputeTours(ctx, []datastructure.City{datastructure.NewCity(1, 0, 0)})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, util.ErrInternalServerError, util.ErrorCode(err))
}
