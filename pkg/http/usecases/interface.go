package usecases

import (
	"context"

	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/lintang-b-s/tourx/pkg/solver"
)

type TourEngine interface {
	Solve(ctx context.Context, cities []datastructure.City) (*solver.Solution, error)
}
