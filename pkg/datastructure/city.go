package datastructure

import "github.com/golang/geo/r2"

// City is one input point. cities are created by the parser and never mutated afterwards.
type City struct {
	id    int
	coord r2.Point
}

func NewCity(id int, x, y float64) City {
	return City{
		id:    id,
		coord: r2.Point{X: x, Y: y},
	}
}

func (c City) GetID() int {
	return c.id
}

func (c City) GetX() float64 {
	return c.coord.X
}

func (c City) GetY() float64 {
	return c.coord.Y
}

func (c City) GetPoint() r2.Point {
	return c.coord
}

// Region is a group of cities assigned together by the partitioner, in input order.
type Region struct {
	cities []City
}

func NewRegion(cities []City) Region {
	return Region{cities: cities}
}

func (r Region) Size() int {
	return len(r.cities)
}

func (r Region) GetCity(i int) City {
	return r.cities[i]
}

// GetCities returns a copy of the region cities, regions are immutable once built.
func (r Region) GetCities() []City {
	cities := make([]City, len(r.cities))
	copy(cities, r.cities)
	return cities
}

func (r Region) GetIDs() []int {
	ids := make([]int, len(r.cities))
	for i, c := range r.cities {
		ids[i] = c.id
	}
	return ids
}

func (r Region) ForEachCity(handle func(i int, c City)) {
	for i, c := range r.cities {
		handle(i, c)
	}
}
