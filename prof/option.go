package prof

import "github.com/ardnew/tictoc/log"

// config holds the settings shared by every operation of a [Profiler].
type config struct {
	clock  Clock
	logger log.Logger
	policy OpenPolicy
}

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}

// makeConfig returns the default configuration overridden by opts.
func makeConfig(opts ...Option) config {
	return apply(config{clock: Monotonic, policy: DefaultOpenPolicy}, opts...)
}

// WithClock returns a functional option that sets the time source.
// A nil clock restores [Monotonic].
func WithClock(clock Clock) Option {
	return func(c config) config {
		if clock == nil {
			clock = Monotonic
		}

		c.clock = clock

		return c
	}
}

// WithLogger returns a functional option that sets the logger used for gate
// transitions (Debug) and region boundaries (Trace). The zero [log.Logger]
// discards everything and is the default.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}

// WithOpenPolicy returns a functional option that sets the default treatment
// of regions still running at report time.
func WithOpenPolicy(policy OpenPolicy) Option {
	return func(c config) config {
		c.policy = policy

		return c
	}
}
