package eytzmap

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

// Options configure how a Map builds its layout. They are retained by the map
// and re-applied by every Assign.
type Options struct {
	// log, when set, receives a line per build
	log logger.Logger

	duplicates DuplicatePolicy
}

type Option func(*Options)

// NewOptions applies opts over the defaults
func NewOptions(opts ...Option) Options {
	var options Options
	for _, o := range opts {
		o(&options)
	}
	return options
}

// WithLogger logs a debug line for every build
func WithLogger(log logger.Logger) Option {
	return func(opts *Options) {
		opts.log = log
	}
}

// WithDuplicates selects the duplicate key policy. The default is KeepFirst.
func WithDuplicates(policy DuplicatePolicy) Option {
	return func(opts *Options) {
		opts.duplicates = policy
	}
}
