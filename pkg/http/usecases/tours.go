package usecases

import (
	"context"

	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/lintang-b-s/tourx/pkg/solver"
	"github.com/lintang-b-s/tourx/pkg/util"
	"go.uber.org/zap"
)

type TourService struct {
	log    *zap.Logger
	engine TourEngine
}

func NewTourService(log *zap.Logger, engine TourEngine) *TourService {
	return &TourService{
		log:    log,
		engine: engine,
	}
}

// ComputeTours solves the two-region problem for cities. city ids must be unique.
func (ts *TourService) ComputeTours(ctx context.Context, cities []datastructure.City) (*solver.Solution, error) {
	seen := make(map[int]struct{}, len(cities))
	for _, c := range cities {
		if _, ok := seen[c.GetID()]; ok {
			return nil, util.WrapErrorf(ErrDuplicateCityID, util.ErrBadParamInput, "duplicate city id %d", c.GetID())
		}
		seen[c.GetID()] = struct{}{}
	}

	solution, err := ts.engine.Solve(ctx, cities)
	if err != nil {
		ts.log.Error("failed to compute tours", zap.Error(err))
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "%s", util.MessageInternalServerError)
	}
	return solution, nil
}
