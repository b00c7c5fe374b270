package geo

import (
	"errors"
	"fmt"
)

// Unit is an output unit for a distance value.
type Unit string

// The four supported output units, matching the reference tables used
// throughout this package.
const (
	Kilometers Unit = "km"
	Meters     Unit = "m"
	Miles      Unit = "mi"
	Feet       Unit = "ft"
)

// ErrUnknownUnit indicates a Unit outside {km, m, mi, ft}.
var ErrUnknownUnit = errors.New("geo: unknown unit")

// kmPerUnit holds how many of each unit make up one kilometer, i.e.
// distance_in_km = distance_in_unit / kmPerUnit[unit].
var kmPerUnit = map[Unit]float64{
	Kilometers: 1,
	Meters:     1000,
	Miles:      0.621371,
	Feet:       3280.84,
}

// Valid reports whether u is one of the four supported units.
func (u Unit) Valid() bool {
	_, ok := kmPerUnit[u]

	return ok
}

// ConvertDistance converts a distance from one unit to another.
func ConvertDistance(distance float64, from, to Unit) (float64, error) {
	fromFactor, ok := kmPerUnit[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, from)
	}
	toFactor, ok := kmPerUnit[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, to)
	}

	return (distance / fromFactor) * toFactor, nil
}
