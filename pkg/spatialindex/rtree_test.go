package spatialindex

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/lintang-b-s/tourx/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildTestTree(t *testing.T) (*Rtree, []datastructure.City) {
	t.Helper()
	cities := []datastructure.City{
		datastructure.NewCity(10, 0, 0),
		datastructure.NewCity(11, 10, 0),
		datastructure.NewCity(12, 1, 1),
		datastructure.NewCity(13, 5, 5),
		datastructure.NewCity(14, -3, 0),
	}
	rt := NewRtree()
	rt.Build(cities, zap.NewNop())
	require.Equal(t, len(cities), rt.Len())
	return rt, cities
}

func TestRtreeNearbyOrder(t *testing.T) {
	rt, _ := buildTestTree(t)

	got := make([]int, 0)
	rt.Nearby(r2.Point{X: 0, Y: 0}, func(idx int) bool {
		got = append(got, idx)
		return true
	})

	assert.Equal(t, []int{0, 2, 4, 3, 1}, got)
}

func TestRtreeNearbyStop(t *testing.T) {
	rt, _ := buildTestTree(t)

	visited := 0
	rt.Nearby(r2.Point{X: 10, Y: 0}, func(idx int) bool {
		visited++
		assert.Equal(t, 1, idx)
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestRtreeRemove(t *testing.T) {
	rt, cities := buildTestTree(t)

	rt.Remove(0, cities[0])
	rt.Remove(2, cities[2])
	assert.Equal(t, 3, rt.Len())

	first := -1
	rt.Nearby(r2.Point{X: 0, Y: 0}, func(idx int) bool {
		first = idx
		return false
	})
	assert.Equal(t, 4, first)
}
