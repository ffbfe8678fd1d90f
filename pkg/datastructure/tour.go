package datastructure

// Tour is a closed cycle over the cities of one region: cities[i] is connected to cities[i+1]
// and the last city is connected back to cities[0].
// a tour never changes size after construction, the optimizer only permutes it.
type Tour struct {
	cities []City
}

func NewTour(cities []City) *Tour {
	return &Tour{cities: cities}
}

func NewEmptyTour(capacity int) *Tour {
	return &Tour{cities: make([]City, 0, capacity)}
}

func (t *Tour) Size() int {
	return len(t.cities)
}

func (t *Tour) GetCity(i int) City {
	return t.cities[i]
}

// GetCities returns the backing slice. callers must not append to it.
func (t *Tour) GetCities() []City {
	return t.cities
}

func (t *Tour) GetIDs() []int {
	ids := make([]int, len(t.cities))
	for i, c := range t.cities {
		ids[i] = c.id
	}
	return ids
}

func (t *Tour) Append(c City) {
	t.cities = append(t.cities, c)
}

// Reverse reverses the segment cities[i..j] (inclusive) in place.
func (t *Tour) Reverse(i, j int) {
	for ; i < j; i, j = i+1, j-1 {
		t.cities[i], t.cities[j] = t.cities[j], t.cities[i]
	}
}

func (t *Tour) Clone() *Tour {
	cities := make([]City, len(t.cities))
	copy(cities, t.cities)
	return &Tour{cities: cities}
}
