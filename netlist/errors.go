package netlist

import "errors"

// Sentinel errors for netlist construction.
var (
	// ErrEmptyName indicates a net was constructed with an empty name.
	ErrEmptyName = errors.New("netlist: net name is empty")
	// ErrNoPins indicates a net was constructed with zero pins.
	ErrNoPins = errors.New("netlist: net must have at least one pin")
)
