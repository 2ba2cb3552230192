//go:build !grpc

package grpcmw

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnaryServerInterceptorStub(t *testing.T) {
	interceptor := UnaryServerInterceptor(nil)
	require.NotNil(t, interceptor)

	_, err := interceptor(context.Background(), nil, nil, nil)
	require.ErrorIs(t, err, ErrGRPCNotEnabled)
}
