package controllers

import (
	"context"

	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/lintang-b-s/tourx/pkg/solver"
)

type TourService interface {
	ComputeTours(ctx context.Context, cities []datastructure.City) (*solver.Solution, error)
}
