package gridgraph

import "errors"

var (
	// ErrInvalidSize indicates xSize or ySize was not a positive integer.
	ErrInvalidSize = errors.New("gridgraph: xSize and ySize must be positive")
	// ErrInvalidCell indicates a cell coordinate was outside [0,xSize)×[0,ySize).
	ErrInvalidCell = errors.New("gridgraph: cell coordinate out of bounds")
)
