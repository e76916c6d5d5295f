package routerall

import "github.com/arrakis-eda/gridrouter/netlist"

// Options configures a RouteAll run.
//
// MaxAttempts – upper bound on the number of full reset-shuffle-route
// cycles attempted before giving up. Must be >= 1. Default is 100.
//
// Seed – base seed for the deterministic per-attempt PRNG. Two calls
// with identical inputs and the same Seed produce identical net
// orderings, and therefore identical outputs, across platforms.
type Options struct {
	MaxAttempts int
	Seed        int64

	onEvent func(Event)
}

// Option is a functional option for configuring RouteAll.
type Option func(*Options)

// WithMaxAttempts overrides the number of attempts RouteAll will try
// before reporting failure. Panics if n is not positive.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxAttempts.Error())
		}
		o.MaxAttempts = n
	}
}

// WithSeed sets the base seed used to derive each attempt's shuffle
// PRNG. The zero seed is a valid, deterministic choice.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithProgress registers a callback invoked for every Event RouteAll
// emits. Passing a nil fn disables progress reporting (the default).
func WithProgress(fn func(Event)) Option {
	return func(o *Options) {
		o.onEvent = fn
	}
}

// DefaultOptions returns the default RouteAll configuration: 100
// attempts, seed 0, no progress callback.
func DefaultOptions() Options {
	return Options{
		MaxAttempts: 100,
		Seed:        0,
	}
}

// EventKind classifies an Event emitted during RouteAll.
type EventKind int

const (
	// AttemptStarted fires once at the beginning of every attempt, before
	// any net in that attempt is routed.
	AttemptStarted EventKind = iota
	// NetRouted fires after a single net routes successfully.
	NetRouted
	// NetFailed fires when a single net fails to route, immediately
	// before the attempt is abandoned.
	NetFailed
	// AttemptSucceeded fires once, when every net in an attempt routes.
	AttemptSucceeded
	// AttemptFailed fires once per abandoned attempt, after NetFailed.
	AttemptFailed
)

// Event reports a single state transition during RouteAll, for a
// caller-supplied progress callback (see WithProgress). Not every field
// is meaningful for every Kind: NetName and Net are set only for
// NetRouted and NetFailed.
type Event struct {
	Kind    EventKind
	Attempt int
	NetName string
	Net     *netlist.Net
}

func (o *Options) emit(ev Event) {
	if o.onEvent != nil {
		o.onEvent(ev)
	}
}
