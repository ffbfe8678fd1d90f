package controllers

import (
	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/lintang-b-s/tourx/pkg/geo"
	"github.com/lintang-b-s/tourx/pkg/solver"
)

type cityRequest struct {
	ID int      `json:"id"`
	X  *float64 `json:"x" validate:"required,gte=-1e12,lte=1e12"`
	Y  *float64 `json:"y" validate:"required,gte=-1e12,lte=1e12"`
}

type computeToursRequest struct {
	Cities []cityRequest `json:"cities" validate:"required,min=1,max=50000,dive"`
}

func (r computeToursRequest) ToCities() []datastructure.City {
	cities := make([]datastructure.City, len(r.Cities))
	for i, c := range r.Cities {
		cities[i] = datastructure.NewCity(c.ID, *c.X, *c.Y)
	}
	return cities
}

type tourResponse struct {
	Length   float64 `json:"length"`
	Size     int     `json:"size"`
	CityIDs  []int   `json:"city_ids"`
	Polyline string  `json:"polyline"`
}

type computeToursResponse struct {
	Total float64        `json:"total"`
	Tours []tourResponse `json:"tours"`
}

func NewComputeToursResponse(solution *solver.Solution) computeToursResponse {
	tours := make([]tourResponse, 0, solver.NumRegions)
	for i := range solver.NumRegions {
		t := solution.GetTour(i)
		tours = append(tours, tourResponse{
			Length:   solution.GetLength(i),
			Size:     t.Size(),
			CityIDs:  t.GetIDs(),
			Polyline: geo.PolylineFromCities(t.GetCities()),
		})
	}
	return computeToursResponse{
		Total: solution.GetTotal(),
		Tours: tours,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
