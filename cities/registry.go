// Package cities holds the fixed, ordered set of cities offered in the menu.
package cities

import (
	"errors"
	"fmt"

	"weather-cli/models"
)

// ErrSelectionOutOfRange is returned by Resolve for a menu index outside [1, Len()].
var ErrSelectionOutOfRange = errors.New("selection out of range")

// City is a display name with its coordinates
type City struct {
	Name        string
	Coordinates models.Coordinates
}

// Registry is an immutable ordered list of cities. Menu numbering is 1-based
// and follows the order the cities were given in.
type Registry struct {
	cities []City
	byName map[string]int
}

// New builds a registry from the given cities. Names must be unique.
func New(cities ...City) (*Registry, error) {
	r := &Registry{
		cities: make([]City, 0, len(cities)),
		byName: make(map[string]int, len(cities)),
	}
	for _, c := range cities {
		if c.Name == "" {
			return nil, errors.New("city name must not be empty")
		}
		if _, exists := r.byName[c.Name]; exists {
			return nil, fmt.Errorf("duplicate city name: %s", c.Name)
		}
		r.byName[c.Name] = len(r.cities)
		r.cities = append(r.cities, c)
	}
	return r, nil
}

// Default returns the registry the console menu is built from.
func Default() *Registry {
	r, err := New(
		City{Name: "Dubna", Coordinates: models.NewCoordinates(56.736343, 37.162177)},
		City{Name: "Moscow", Coordinates: models.NewCoordinates(55.755864, 37.617698)},
		// TODO: Kazan's pair looks transposed (49.106414 is its longitude). Kept
		// as recorded until the fixture data is confirmed against the API.
		City{Name: "Kazan", Coordinates: models.NewCoordinates(49.106414, 55.796127)},
		City{Name: "Saint Petersburg", Coordinates: models.NewCoordinates(59.938784, 30.314997)},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of cities
func (r *Registry) Len() int {
	return len(r.cities)
}

// Cities returns a copy of the cities in menu order
func (r *Registry) Cities() []City {
	out := make([]City, len(r.cities))
	copy(out, r.cities)
	return out
}

// Resolve maps a 1-based menu position to its city.
func (r *Registry) Resolve(index int) (City, error) {
	if index < 1 || index > len(r.cities) {
		return City{}, fmt.Errorf("%w: %d not in [1, %d]", ErrSelectionOutOfRange, index, len(r.cities))
	}
	return r.cities[index-1], nil
}

// Lookup finds a city by its display name
func (r *Registry) Lookup(name string) (City, bool) {
	i, ok := r.byName[name]
	if !ok {
		return City{}, false
	}
	return r.cities[i], true
}
