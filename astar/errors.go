package astar

import "errors"

// ErrUnroutable indicates a sub-search exhausted its open set before
// reaching any remaining target pin. The caller (routerall) treats this
// as a recoverable per-net failure.
var ErrUnroutable = errors.New("astar: net is unroutable with the current grid occupancy")
