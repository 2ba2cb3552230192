// Package grpcmw provides a gRPC server interceptor that records one log
// line per unary call through a linelog Logger. The interceptor is only
// active when the module is built with the 'grpc' build tag; without it a
// stub is compiled in.
package grpcmw

import "time"

// Option defines a configuration option for the gRPC middleware.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock overrides the time source used to measure call duration.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if o == nil || clock == nil {
			return
		}

		o.clock = clock
	}
}
