//go:build grpc

package grpcmw

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/hyp3rd/linelog"
)

func actualOptions(opts ...Option) options {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.clock == nil {
		cfg.clock = time.Now
	}

	return cfg
}

// UnaryServerInterceptor logs every unary call with its method, duration,
// and outcome. Successful calls log at info level, failed calls at error
// level with the error appended.
func UnaryServerInterceptor(logger *linelog.Logger, opts ...Option) grpc.UnaryServerInterceptor {
	cfg := actualOptions(opts...)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := cfg.clock()
		resp, err := handler(ctx, req)
		elapsed := cfg.clock().Sub(start)

		if logger != nil {
			if err != nil {
				logger.Error(info.FullMethod, elapsed, err)
			} else {
				logger.Info(info.FullMethod, elapsed)
			}
		}

		return resp, err
	}
}
