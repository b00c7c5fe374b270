package lineutil

import "errors"

// ErrEmptyPath indicates a GeoPathResult with no coordinate segments was
// passed to a function that requires at least one point.
var ErrEmptyPath = errors.New("lineutil: coordinate path is empty")
