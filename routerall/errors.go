package routerall

import "errors"

// ErrAllAttemptsFailed indicates every attempt up to Options.MaxAttempts
// abandoned due to an unroutable net. The last-attempted Grid/net state
// is left in memory (for a caller that wants to inspect or write the
// partial result) but contains fewer routed nets than the input netlist.
var ErrAllAttemptsFailed = errors.New("routerall: exhausted max attempts without routing every net")

// ErrNoNets indicates RouteAll was called with an empty netlist.
var ErrNoNets = errors.New("routerall: netlist is empty")

// ErrBadMaxAttempts indicates Options.MaxAttempts was not positive.
var ErrBadMaxAttempts = errors.New("routerall: MaxAttempts must be positive")
