// SPDX-License-Identifier: MIT

package debye

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/lvscatter"
)

// DefaultMaxTableBytes bounds the distance table when WithMaxTableBytes is
// not given: 4 GiB, i.e. about 32 700 points.
const DefaultMaxTableBytes int64 = 4 << 30

const (
	panicWorkersInvalid  = "debye: WithWorkers: n must be ≥ 1"
	panicMaxBytesInvalid = "debye: WithMaxTableBytes: limit must be > 0"
)

// Option configures a single Compute / ComputeRange call.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; build one
// with Option setters.
type Options struct {
	workers       int          // ≥ 1; default runtime.GOMAXPROCS(0)
	maxTableBytes int64        // > 0; default DefaultMaxTableBytes
	logger        *slog.Logger // nil ⇒ lvscatter.Logger() at call time
}

// WithWorkers sets the number of goroutines used for the table build and
// the per-q phase. WithWorkers(1) runs everything on the calling goroutine's
// single worker and is the sequential reference.
//
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// WithMaxTableBytes sets the byte budget for the distance table. Calls whose
// table would exceed it fail with ErrTableTooLarge before allocating.
//
// Panics if limit ≤ 0.
func WithMaxTableBytes(limit int64) Option {
	if limit <= 0 {
		panic(panicMaxBytesInvalid)
	}
	return func(o *Options) { o.maxTableBytes = limit }
}

// WithLogger overrides the package logger for one call. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user setters on top of defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:       runtime.GOMAXPROCS(0),
		maxTableBytes: DefaultMaxTableBytes,
	}
	for _, set := range user {
		set(&o)
	}
	if o.workers < 1 {
		o.workers = 1
	}
	if o.logger == nil {
		o.logger = lvscatter.Logger()
	}
	return o
}
